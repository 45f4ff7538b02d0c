package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"escala/internal/domain/roster"
	vo "escala/internal/domain/roster/valueobjects"
	"escala/internal/infrastructure/persistence/models"
	"escala/internal/shared/biztime"
)

// PostMapper handles the conversion between Post entities and persistence
// models.
type PostMapper interface {
	ToModel(p *roster.Post) (*models.PostModel, error)
	ToDomain(model *models.PostModel) (*roster.Post, error)
}

type PostMapperImpl struct{}

func NewPostMapper() PostMapper {
	return &PostMapperImpl{}
}

func (m *PostMapperImpl) ToModel(p *roster.Post) (*models.PostModel, error) {
	years, err := json.Marshal(p.EligibleYears())
	if err != nil {
		return nil, fmt.Errorf("failed to encode eligible years: %w", err)
	}
	return &models.PostModel{
		ID:                p.ID(),
		Name:              p.Name(),
		GenderRestriction: p.GenderRestriction().String(),
		EligibleYears:     years,
		Heightened:        p.IsHeightened(),
		RequiredRole:      p.RequiredRole(),
	}, nil
}

func (m *PostMapperImpl) ToDomain(model *models.PostModel) (*roster.Post, error) {
	restriction, err := vo.NewGenderRestriction(model.GenderRestriction)
	if err != nil {
		return nil, err
	}
	var years []int64
	if err := json.Unmarshal(model.EligibleYears, &years); err != nil {
		return nil, fmt.Errorf("failed to decode eligible years for post %d: %w", model.ID, err)
	}
	return roster.ReconstructPost(
		model.ID,
		model.Name,
		restriction,
		years,
		model.Heightened,
		model.RequiredRole,
	)
}

// RosterDayMapper handles the conversion between RosterDay entities and
// persistence models.
type RosterDayMapper interface {
	ToModel(d *roster.RosterDay) *models.RosterDayModel
	ToDomain(model *models.RosterDayModel) (*roster.RosterDay, error)
}

type RosterDayMapperImpl struct{}

func NewRosterDayMapper() RosterDayMapper {
	return &RosterDayMapperImpl{}
}

func (m *RosterDayMapperImpl) ToModel(d *roster.RosterDay) *models.RosterDayModel {
	return &models.RosterDayModel{
		DutyDate: biztime.FormatDate(d.Date()),
		Routine:  d.Routine().String(),
		Status:   d.Status().String(),
	}
}

func (m *RosterDayMapperImpl) ToDomain(model *models.RosterDayModel) (*roster.RosterDay, error) {
	date, err := biztime.ParseDate(model.DutyDate)
	if err != nil {
		return nil, err
	}
	routine, err := vo.NewRoutineType(model.Routine)
	if err != nil {
		return nil, err
	}
	status, err := vo.NewDayStatus(model.Status)
	if err != nil {
		return nil, err
	}
	return roster.ReconstructRosterDay(date, routine, status)
}

// AllocationMapper handles the conversion between Allocation entities and
// persistence models.
type AllocationMapper interface {
	ToModel(a *roster.Allocation) *models.AllocationModel
	ToDomain(model *models.AllocationModel) (*roster.Allocation, error)
}

type AllocationMapperImpl struct{}

func NewAllocationMapper() AllocationMapper {
	return &AllocationMapperImpl{}
}

func (m *AllocationMapperImpl) ToModel(a *roster.Allocation) *models.AllocationModel {
	return &models.AllocationModel{
		ID:           a.ID(),
		UserID:       a.UserID(),
		DutyDate:     biztime.FormatDate(a.Date()),
		PostID:       a.PostID(),
		IsPunishment: a.IsPunishment(),
		Tag:          a.Tag(),
		Version:      a.Version(),
		CreatedAt:    a.CreatedAt().UnixMilli(),
	}
}

func (m *AllocationMapperImpl) ToDomain(model *models.AllocationModel) (*roster.Allocation, error) {
	date, err := biztime.ParseDate(model.DutyDate)
	if err != nil {
		return nil, err
	}
	return roster.ReconstructAllocation(
		model.ID,
		model.UserID,
		model.PostID,
		date,
		model.IsPunishment,
		model.Tag,
		model.Version,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}

// UnavailabilityMapper handles the conversion between UnavailabilityWindow
// entities and persistence models.
type UnavailabilityMapper interface {
	ToModel(w *roster.UnavailabilityWindow) *models.UnavailabilityWindowModel
	ToDomain(model *models.UnavailabilityWindowModel) (*roster.UnavailabilityWindow, error)
}

type UnavailabilityMapperImpl struct{}

func NewUnavailabilityMapper() UnavailabilityMapper {
	return &UnavailabilityMapperImpl{}
}

func (m *UnavailabilityMapperImpl) ToModel(w *roster.UnavailabilityWindow) *models.UnavailabilityWindowModel {
	return &models.UnavailabilityWindowModel{
		ID:        w.ID(),
		UserID:    w.UserID(),
		StartDate: biztime.FormatDate(w.StartDate()),
		EndDate:   biztime.FormatDate(w.EndDate()),
		Reason:    w.Reason(),
	}
}

func (m *UnavailabilityMapperImpl) ToDomain(model *models.UnavailabilityWindowModel) (*roster.UnavailabilityWindow, error) {
	start, err := biztime.ParseDate(model.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := biztime.ParseDate(model.EndDate)
	if err != nil {
		return nil, err
	}
	return roster.ReconstructUnavailabilityWindow(
		model.ID,
		model.UserID,
		start,
		end,
		model.Reason,
	)
}
