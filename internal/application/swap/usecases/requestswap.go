package usecases

import (
	"context"

	"escala/internal/domain/roster"
	"escala/internal/domain/swap"
	"escala/internal/domain/user"
	"escala/internal/shared/biztime"
	"escala/internal/shared/errors"
	"escala/internal/shared/logger"
)

type RequestSwapCommand struct {
	RequesterID  string
	SubstituteID string
	AllocationID string
	Reason       string
}

type RequestSwapResult struct {
	SwapID       string
	Status       string
	RequesterID  string
	SubstituteID string
	Date         string
}

// RequestSwapUseCase opens a pending exchange request: the requester asks a
// named substitute to take over one of their published-day allocations.
type RequestSwapUseCase struct {
	swapRepo  swap.Repository
	allocRepo roster.AllocationRepository
	dayRepo   roster.DayRepository
	userRepo  user.Repository
	logger    logger.Interface
}

func NewRequestSwapUseCase(
	swapRepo swap.Repository,
	allocRepo roster.AllocationRepository,
	dayRepo roster.DayRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *RequestSwapUseCase {
	return &RequestSwapUseCase{
		swapRepo:  swapRepo,
		allocRepo: allocRepo,
		dayRepo:   dayRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *RequestSwapUseCase) Execute(ctx context.Context, cmd RequestSwapCommand) (*RequestSwapResult, error) {
	uc.logger.Infow("executing request swap use case",
		"requester_id", cmd.RequesterID, "substitute_id", cmd.SubstituteID,
		"allocation_id", cmd.AllocationID)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	alloc, err := uc.allocRepo.GetByID(ctx, cmd.AllocationID)
	if err != nil {
		return nil, err
	}
	if alloc == nil {
		return nil, errors.NewNotFoundError("allocation not found", cmd.AllocationID)
	}
	if !alloc.IsOwnedBy(cmd.RequesterID) {
		return nil, errors.NewNotOwnerError(
			"only the allocation's owner may request a swap")
	}

	day, err := uc.dayRepo.GetByDate(ctx, alloc.Date())
	if err != nil {
		return nil, err
	}
	if day == nil {
		return nil, errors.NewNotFoundError("roster day not found",
			biztime.FormatDate(alloc.Date()))
	}
	if !day.IsPublished() {
		return nil, errors.NewInvalidStateError(
			"swaps are only accepted against published days")
	}

	substitute, err := uc.userRepo.GetByID(ctx, cmd.SubstituteID)
	if err != nil {
		return nil, err
	}
	if substitute == nil {
		return nil, errors.NewNotFoundError("substitute not found", cmd.SubstituteID)
	}

	held, err := uc.allocRepo.FindByUserAndDate(ctx, cmd.SubstituteID, alloc.Date())
	if err != nil {
		return nil, err
	}
	if held != nil {
		return nil, errors.NewIneligibleError(
			"substitute already holds an allocation on the date",
			[]string{"already allocated on " + biztime.FormatDate(alloc.Date())})
	}

	s, err := swap.NewSwap(cmd.RequesterID, cmd.SubstituteID, alloc.ID(), cmd.Reason)
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.swapRepo.Save(ctx, s); err != nil {
		uc.logger.Errorw("failed to save swap request", "error", err)
		return nil, err
	}

	uc.logger.Infow("swap requested",
		"swap_id", s.ID(), "requester_id", s.RequesterID(), "substitute_id", s.SubstituteID())

	return &RequestSwapResult{
		SwapID:       s.ID(),
		Status:       s.Status().String(),
		RequesterID:  s.RequesterID(),
		SubstituteID: s.SubstituteID(),
		Date:         biztime.FormatDate(alloc.Date()),
	}, nil
}

func (uc *RequestSwapUseCase) validateCommand(cmd RequestSwapCommand) error {
	if len(cmd.RequesterID) == 0 {
		return errors.NewValidationError("requester ID is required")
	}
	if len(cmd.SubstituteID) == 0 {
		return errors.NewValidationError("substitute ID is required")
	}
	if cmd.RequesterID == cmd.SubstituteID {
		return errors.NewSelfSwapError("requester and substitute must differ")
	}
	if len(cmd.AllocationID) == 0 {
		return errors.NewValidationError("allocation ID is required")
	}
	if len(cmd.Reason) == 0 {
		return errors.NewValidationError("reason is required")
	}
	return nil
}
