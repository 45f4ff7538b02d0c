package usecases

import (
	"context"

	"escala/internal/domain/roster"
	"escala/internal/domain/scheduling"
	"escala/internal/domain/user"
	"escala/internal/shared/biztime"
	"escala/internal/shared/errors"
	"escala/internal/shared/logger"
)

type UnassignUserCommand struct {
	AllocationID string
}

type UnassignUserResult struct {
	AllocationID string
	UserID       string
	Date         string
}

// UnassignUserUseCase removes an allocation and reverses its ledger effect.
type UnassignUserUseCase struct {
	userRepo  user.Repository
	dayRepo   roster.DayRepository
	allocRepo roster.AllocationRepository
	ledger    *scheduling.FairnessLedger
	txManager TransactionManager
	logger    logger.Interface
}

func NewUnassignUserUseCase(
	userRepo user.Repository,
	dayRepo roster.DayRepository,
	allocRepo roster.AllocationRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *UnassignUserUseCase {
	return &UnassignUserUseCase{
		userRepo:  userRepo,
		dayRepo:   dayRepo,
		allocRepo: allocRepo,
		ledger:    scheduling.NewFairnessLedger(),
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *UnassignUserUseCase) Execute(ctx context.Context, cmd UnassignUserCommand) (*UnassignUserResult, error) {
	uc.logger.Infow("executing unassign user use case", "allocation_id", cmd.AllocationID)

	if len(cmd.AllocationID) == 0 {
		return nil, errors.NewValidationError("allocation ID is required")
	}

	alloc, err := uc.allocRepo.GetByID(ctx, cmd.AllocationID)
	if err != nil {
		return nil, err
	}
	if alloc == nil {
		return nil, errors.NewNotFoundError("allocation not found", cmd.AllocationID)
	}

	day, err := uc.dayRepo.GetByDate(ctx, alloc.Date())
	if err != nil {
		return nil, err
	}
	if day == nil {
		return nil, errors.NewNotFoundError("roster day not found",
			biztime.FormatDate(alloc.Date()))
	}

	u, err := uc.userRepo.GetByID(ctx, alloc.UserID())
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found", alloc.UserID())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ledger.ReverseAssignment(u, day.Routine(), alloc.IsPunishment()); err != nil {
			return errors.NewInvalidStateError(err.Error())
		}
		if err := uc.allocRepo.Delete(txCtx, alloc.ID()); err != nil {
			return err
		}
		return uc.userRepo.Update(txCtx, u)
	})
	if err != nil {
		uc.logger.Errorw("failed to unassign user",
			"allocation_id", alloc.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("user unassigned",
		"allocation_id", alloc.ID(), "user_id", alloc.UserID())

	return &UnassignUserResult{
		AllocationID: alloc.ID(),
		UserID:       alloc.UserID(),
		Date:         biztime.FormatDate(alloc.Date()),
	}, nil
}
