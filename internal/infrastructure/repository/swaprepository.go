package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"escala/internal/domain/swap"
	swapvo "escala/internal/domain/swap/valueobjects"
	"escala/internal/infrastructure/persistence/mappers"
	"escala/internal/infrastructure/persistence/models"
	"escala/internal/shared/db"
	apperrors "escala/internal/shared/errors"
)

type SwapRepository struct {
	db     *gorm.DB
	mapper mappers.SwapMapper
}

func NewSwapRepository(database *gorm.DB) *SwapRepository {
	return &SwapRepository{
		db:     database,
		mapper: mappers.NewSwapMapper(),
	}
}

func (r *SwapRepository) GetByID(ctx context.Context, id string) (*swap.Swap, error) {
	var model models.SwapRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find swap: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *SwapRepository) ListPending(ctx context.Context) ([]*swap.Swap, error) {
	var rows []models.SwapRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("status = ?", string(swapvo.StatusPending)).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending swaps: %w", err)
	}

	swaps := make([]*swap.Swap, 0, len(rows))
	for i := range rows {
		s, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		swaps = append(swaps, s)
	}
	return swaps, nil
}

func (r *SwapRepository) Save(ctx context.Context, s *swap.Swap) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("swap already exists", s.ID())
		}
		return fmt.Errorf("failed to save swap: %w", err)
	}
	return nil
}

// Update persists a pending-to-terminal transition. Two approvers racing on
// the same request both load version v; only the first write with the v guard
// lands, the loser sees zero rows and gets a conflict.
func (r *SwapRepository) Update(ctx context.Context, s *swap.Swap) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.SwapRequestModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Select("status", "responder_id", "response_note", "responded_at", "version").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update swap: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConflictError("swap was modified concurrently", s.ID())
	}
	return nil
}
