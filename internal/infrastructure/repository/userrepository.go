package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"escala/internal/domain/user"
	"escala/internal/infrastructure/persistence/mappers"
	"escala/internal/infrastructure/persistence/models"
	"escala/internal/shared/db"
	apperrors "escala/internal/shared/errors"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     database,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	var rows []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, 0, len(rows))
	for i := range rows {
		u, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("user already exists", u.ID())
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// Update persists counter and balance changes. The entity bumps its version
// once per mutation, so version-1 is the version the row was loaded at; the
// guard makes a lost update surface as a conflict instead of silently
// overwriting a concurrent writer.
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.UserModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Select("name", "cohort", "year", "course", "gender",
			"normal_count", "heightened_count", "punishment_balance",
			"version", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConflictError("user was modified concurrently", u.ID())
	}
	return nil
}

// Delete removes the user and everything hanging off them. Destructive; the
// cascade runs in one transaction.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.RoleGrantModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete role grants: %w", err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.UnavailabilityWindowModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete unavailability windows: %w", err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.AllocationModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete allocations: %w", err)
		}
		if err := tx.Where("id = ?", id).Delete(&models.UserModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
}
