package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"escala/internal/domain/roster"
	"escala/internal/infrastructure/persistence/mappers"
	"escala/internal/infrastructure/persistence/models"
	"escala/internal/shared/db"
	apperrors "escala/internal/shared/errors"
)

type PostRepository struct {
	db     *gorm.DB
	mapper mappers.PostMapper
}

func NewPostRepository(database *gorm.DB) *PostRepository {
	return &PostRepository{
		db:     database,
		mapper: mappers.NewPostMapper(),
	}
}

func (r *PostRepository) GetByID(ctx context.Context, id uint) (*roster.Post, error) {
	var model models.PostModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *PostRepository) List(ctx context.Context) ([]*roster.Post, error) {
	var rows []models.PostModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	posts := make([]*roster.Post, 0, len(rows))
	for i := range rows {
		p, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func (r *PostRepository) Save(ctx context.Context, p *roster.Post) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("post name already exists", p.Name())
		}
		return fmt.Errorf("failed to save post: %w", err)
	}
	if p.ID() == 0 {
		return p.SetID(model.ID)
	}
	return nil
}
