package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"escala/internal/domain/roster"
	"escala/internal/infrastructure/persistence/mappers"
	"escala/internal/infrastructure/persistence/models"
	"escala/internal/shared/biztime"
	"escala/internal/shared/db"
	apperrors "escala/internal/shared/errors"
)

type AllocationRepository struct {
	db     *gorm.DB
	mapper mappers.AllocationMapper
}

func NewAllocationRepository(database *gorm.DB) *AllocationRepository {
	return &AllocationRepository{
		db:     database,
		mapper: mappers.NewAllocationMapper(),
	}
}

func (r *AllocationRepository) GetByID(ctx context.Context, id string) (*roster.Allocation, error) {
	var model models.AllocationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find allocation: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *AllocationRepository) FindByUserAndDate(ctx context.Context, userID string, date time.Time) (*roster.Allocation, error) {
	var model models.AllocationModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("user_id = ? AND duty_date = ?", userID, biztime.FormatDate(date)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find allocation: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *AllocationRepository) ListByDate(ctx context.Context, date time.Time) ([]*roster.Allocation, error) {
	var rows []models.AllocationModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("duty_date = ?", biztime.FormatDate(date)).
		Order("post_id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations: %w", err)
	}

	allocations := make([]*roster.Allocation, 0, len(rows))
	for i := range rows {
		a, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		allocations = append(allocations, a)
	}
	return allocations, nil
}

func (r *AllocationRepository) ExistsInRange(ctx context.Context, userID string, start, end time.Time) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.AllocationModel{}).
		Where("user_id = ? AND duty_date BETWEEN ? AND ?",
			userID, biztime.FormatDate(start), biztime.FormatDate(end)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count allocations: %w", err)
	}
	return count > 0, nil
}

// Save creates the allocation row. The (user_id, duty_date) unique index is
// the storage-level last defense of the one-per-day invariant; a violation
// surfaces as a conflict.
func (r *AllocationRepository) Save(ctx context.Context, a *roster.Allocation) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError(
				"user already holds an allocation on the date",
				fmt.Sprintf("user %s on %s", model.UserID, model.DutyDate))
		}
		return fmt.Errorf("failed to save allocation: %w", err)
	}
	return nil
}

// UpdateUser applies a swap transfer under the version guard: the entity
// bumped its version when the duty moved, so version-1 names the row state
// this transfer was decided on. Zero rows affected means a concurrent
// approval won.
func (r *AllocationRepository) UpdateUser(ctx context.Context, a *roster.Allocation) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.AllocationModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Select("user_id", "version").
		Updates(model)
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError(
				"user already holds an allocation on the date",
				fmt.Sprintf("user %s on %s", model.UserID, model.DutyDate))
		}
		return fmt.Errorf("failed to update allocation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConflictError("allocation was modified concurrently", a.ID())
	}
	return nil
}

func (r *AllocationRepository) Delete(ctx context.Context, id string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", id).Delete(&models.AllocationModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete allocation: %w", err)
	}
	return nil
}
