package usecases

import (
	"context"

	"escala/internal/domain/swap"
	"escala/internal/shared/errors"
	"escala/internal/shared/logger"
)

type RejectSwapCommand struct {
	SwapID      string
	ResponderID string
	Note        string
}

type RejectSwapResult struct {
	SwapID string
	Status string
}

// RejectSwapUseCase closes a pending swap without touching the allocation or
// the ledger.
type RejectSwapUseCase struct {
	swapRepo swap.Repository
	logger   logger.Interface
}

func NewRejectSwapUseCase(swapRepo swap.Repository, logger logger.Interface) *RejectSwapUseCase {
	return &RejectSwapUseCase{
		swapRepo: swapRepo,
		logger:   logger,
	}
}

func (uc *RejectSwapUseCase) Execute(ctx context.Context, cmd RejectSwapCommand) (*RejectSwapResult, error) {
	uc.logger.Infow("executing reject swap use case",
		"swap_id", cmd.SwapID, "responder_id", cmd.ResponderID)

	if len(cmd.SwapID) == 0 {
		return nil, errors.NewValidationError("swap ID is required")
	}
	if len(cmd.ResponderID) == 0 {
		return nil, errors.NewValidationError("responder ID is required")
	}

	s, err := uc.swapRepo.GetByID(ctx, cmd.SwapID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, errors.NewNotFoundError("swap not found", cmd.SwapID)
	}

	if err := s.Reject(cmd.ResponderID, cmd.Note); err != nil {
		return nil, err
	}
	if err := uc.swapRepo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to update swap", "swap_id", s.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("swap rejected", "swap_id", s.ID())

	return &RejectSwapResult{
		SwapID: s.ID(),
		Status: s.Status().String(),
	}, nil
}
