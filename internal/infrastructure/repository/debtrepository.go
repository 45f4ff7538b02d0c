package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"escala/internal/domain/swap"
	"escala/internal/infrastructure/persistence/mappers"
	"escala/internal/infrastructure/persistence/models"
	"escala/internal/shared/db"
	apperrors "escala/internal/shared/errors"
)

type DebtRepository struct {
	db     *gorm.DB
	mapper mappers.DebtMapper
}

func NewDebtRepository(database *gorm.DB) *DebtRepository {
	return &DebtRepository{
		db:     database,
		mapper: mappers.NewDebtMapper(),
	}
}

func (r *DebtRepository) GetByID(ctx context.Context, id string) (*swap.Debt, error) {
	var model models.DebtEntryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find debt: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *DebtRepository) ListByDebtor(ctx context.Context, debtorID string) ([]*swap.Debt, error) {
	return r.list(ctx, "debtor_id = ?", debtorID)
}

func (r *DebtRepository) ListPending(ctx context.Context) ([]*swap.Debt, error) {
	return r.list(ctx, "status = ?", string(swap.DebtPending))
}

func (r *DebtRepository) list(ctx context.Context, query string, args ...interface{}) ([]*swap.Debt, error) {
	var rows []models.DebtEntryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where(query, args...).Order("created_at").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}

	debts := make([]*swap.Debt, 0, len(rows))
	for i := range rows {
		d, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		debts = append(debts, d)
	}
	return debts, nil
}

func (r *DebtRepository) Save(ctx context.Context, d *swap.Debt) error {
	model := r.mapper.ToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("debt already exists", d.ID())
		}
		return fmt.Errorf("failed to save debt: %w", err)
	}
	return nil
}

func (r *DebtRepository) Update(ctx context.Context, d *swap.Debt) error {
	model := r.mapper.ToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.DebtEntryModel{}).
		Where("id = ?", model.ID).
		Select("status", "paid_at").
		Updates(model).Error
	if err != nil {
		return fmt.Errorf("failed to update debt: %w", err)
	}
	return nil
}
