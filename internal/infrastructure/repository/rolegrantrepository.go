package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"escala/internal/domain/user"
	"escala/internal/infrastructure/persistence/mappers"
	"escala/internal/infrastructure/persistence/models"
	"escala/internal/shared/db"
)

type RoleGrantRepository struct {
	db     *gorm.DB
	mapper mappers.RoleGrantMapper
}

func NewRoleGrantRepository(database *gorm.DB) *RoleGrantRepository {
	return &RoleGrantRepository{
		db:     database,
		mapper: mappers.NewRoleGrantMapper(),
	}
}

func (r *RoleGrantRepository) ListByUser(ctx context.Context, userID string) (user.RoleSet, error) {
	var rows []models.RoleGrantModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list role grants: %w", err)
	}

	grants := make(user.RoleSet, 0, len(rows))
	for i := range rows {
		grant, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		grants = append(grants, grant)
	}
	return grants, nil
}

func (r *RoleGrantRepository) SavePermanent(ctx context.Context, grant user.RoleGrant) error {
	return r.save(ctx, grant)
}

func (r *RoleGrantRepository) SaveTemporary(ctx context.Context, grant user.RoleGrant) error {
	return r.save(ctx, grant)
}

func (r *RoleGrantRepository) save(ctx context.Context, grant user.RoleGrant) error {
	model := r.mapper.ToModel(grant)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save role grant: %w", err)
	}
	return nil
}
