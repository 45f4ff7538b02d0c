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

type DayRepository struct {
	db     *gorm.DB
	mapper mappers.RosterDayMapper
}

func NewDayRepository(database *gorm.DB) *DayRepository {
	return &DayRepository{
		db:     database,
		mapper: mappers.NewRosterDayMapper(),
	}
}

func (r *DayRepository) GetByDate(ctx context.Context, date time.Time) (*roster.RosterDay, error) {
	var model models.RosterDayModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("duty_date = ?", biztime.FormatDate(date)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find roster day: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// SaveIfAbsent creates the day when the date is still free and reports
// whether a row was created. A duplicate-key failure means another writer
// (or an earlier run) got there first, which is not an error here.
func (r *DayRepository) SaveIfAbsent(ctx context.Context, d *roster.RosterDay) (bool, error) {
	model := r.mapper.ToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to save roster day: %w", err)
	}
	return true, nil
}

func (r *DayRepository) Update(ctx context.Context, d *roster.RosterDay) error {
	model := r.mapper.ToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.RosterDayModel{}).
		Where("duty_date = ?", model.DutyDate).
		Select("routine", "status", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update roster day: %w", result.Error)
	}
	return nil
}

func (r *DayRepository) ListRange(ctx context.Context, start, end time.Time) ([]*roster.RosterDay, error) {
	var rows []models.RosterDayModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("duty_date BETWEEN ? AND ?", biztime.FormatDate(start), biztime.FormatDate(end)).
		Order("duty_date").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list roster days: %w", err)
	}

	days := make([]*roster.RosterDay, 0, len(rows))
	for i := range rows {
		d, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}
