package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"escala/internal/domain/roster"
	"escala/internal/infrastructure/persistence/mappers"
	"escala/internal/infrastructure/persistence/models"
	"escala/internal/shared/biztime"
	"escala/internal/shared/db"
)

type UnavailabilityRepository struct {
	db     *gorm.DB
	mapper mappers.UnavailabilityMapper
}

func NewUnavailabilityRepository(database *gorm.DB) *UnavailabilityRepository {
	return &UnavailabilityRepository{
		db:     database,
		mapper: mappers.NewUnavailabilityMapper(),
	}
}

func (r *UnavailabilityRepository) ListByUser(ctx context.Context, userID string) ([]*roster.UnavailabilityWindow, error) {
	return r.list(ctx, "user_id = ?", userID)
}

// ListCovering returns every window whose inclusive date range contains the
// given date.
func (r *UnavailabilityRepository) ListCovering(ctx context.Context, date time.Time) ([]*roster.UnavailabilityWindow, error) {
	day := biztime.FormatDate(date)
	return r.list(ctx, "start_date <= ? AND end_date >= ?", day, day)
}

func (r *UnavailabilityRepository) list(ctx context.Context, query string, args ...interface{}) ([]*roster.UnavailabilityWindow, error) {
	var rows []models.UnavailabilityWindowModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where(query, args...).Order("start_date").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list unavailability windows: %w", err)
	}

	windows := make([]*roster.UnavailabilityWindow, 0, len(rows))
	for i := range rows {
		w, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return windows, nil
}

func (r *UnavailabilityRepository) Save(ctx context.Context, w *roster.UnavailabilityWindow) error {
	model := r.mapper.ToModel(w)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save unavailability window: %w", err)
	}
	if w.ID() == 0 {
		return w.SetID(model.ID)
	}
	return nil
}
