package mappers

import (
	"fmt"
	"time"

	"escala/internal/domain/swap"
	vo "escala/internal/domain/swap/valueobjects"
	"escala/internal/infrastructure/persistence/models"
)

// SwapMapper handles the conversion between Swap entities and persistence
// models.
type SwapMapper interface {
	ToModel(s *swap.Swap) *models.SwapRequestModel
	ToDomain(model *models.SwapRequestModel) (*swap.Swap, error)
}

type SwapMapperImpl struct{}

func NewSwapMapper() SwapMapper {
	return &SwapMapperImpl{}
}

func (m *SwapMapperImpl) ToModel(s *swap.Swap) *models.SwapRequestModel {
	model := &models.SwapRequestModel{
		ID:           s.ID(),
		RequesterID:  s.RequesterID(),
		SubstituteID: s.SubstituteID(),
		AllocationID: s.AllocationID(),
		Status:       s.Status().String(),
		Reason:       s.Reason(),
		ResponderID:  s.ResponderID(),
		ResponseNote: s.ResponseNote(),
		Version:      s.Version(),
		CreatedAt:    s.CreatedAt().UnixMilli(),
	}
	if s.RespondedAt() != nil {
		responded := s.RespondedAt().UnixMilli()
		model.RespondedAt = &responded
	}
	return model
}

func (m *SwapMapperImpl) ToDomain(model *models.SwapRequestModel) (*swap.Swap, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, err
	}
	var respondedAt *time.Time
	if model.RespondedAt != nil {
		t := time.UnixMilli(*model.RespondedAt).UTC()
		respondedAt = &t
	}
	return swap.ReconstructSwap(
		model.ID,
		model.RequesterID,
		model.SubstituteID,
		model.AllocationID,
		status,
		model.Reason,
		model.ResponderID,
		model.ResponseNote,
		model.Version,
		time.UnixMilli(model.CreatedAt).UTC(),
		respondedAt,
	)
}

// DebtMapper handles the conversion between Debt entities and persistence
// models.
type DebtMapper interface {
	ToModel(d *swap.Debt) *models.DebtEntryModel
	ToDomain(model *models.DebtEntryModel) (*swap.Debt, error)
}

type DebtMapperImpl struct{}

func NewDebtMapper() DebtMapper {
	return &DebtMapperImpl{}
}

func (m *DebtMapperImpl) ToModel(d *swap.Debt) *models.DebtEntryModel {
	model := &models.DebtEntryModel{
		ID:         d.ID(),
		DebtorID:   d.DebtorID(),
		CreditorID: d.CreditorID(),
		SwapID:     d.SwapID(),
		Status:     string(d.Status()),
		CreatedAt:  d.CreatedAt().UnixMilli(),
	}
	if d.PaidAt() != nil {
		paid := d.PaidAt().UnixMilli()
		model.PaidAt = &paid
	}
	return model
}

func (m *DebtMapperImpl) ToDomain(model *models.DebtEntryModel) (*swap.Debt, error) {
	status := swap.DebtStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid debt status %q", model.Status)
	}
	var paidAt *time.Time
	if model.PaidAt != nil {
		t := time.UnixMilli(*model.PaidAt).UTC()
		paidAt = &t
	}
	return swap.ReconstructDebt(
		model.ID,
		model.DebtorID,
		model.CreditorID,
		model.SwapID,
		status,
		time.UnixMilli(model.CreatedAt).UTC(),
		paidAt,
	)
}
