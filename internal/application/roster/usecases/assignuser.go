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

type AssignUserCommand struct {
	UserID       string
	PostID       uint
	Date         string
	IsPunishment bool
	Tag          string
}

type AssignUserResult struct {
	AllocationID string
	UserID       string
	PostID       uint
	Date         string
	IsPunishment bool
	Tag          string
}

// AssignUserUseCase places one user on one post for one roster day, after
// the full eligibility gate, and records the assignment in the fairness
// ledger in the same transaction.
type AssignUserUseCase struct {
	userRepo  user.Repository
	postRepo  roster.PostRepository
	dayRepo   roster.DayRepository
	allocRepo roster.AllocationRepository
	gate      *eligibilityGate
	ledger    *scheduling.FairnessLedger
	txManager TransactionManager
	logger    logger.Interface
}

func NewAssignUserUseCase(
	userRepo user.Repository,
	roleGrantRepo user.RoleGrantRepository,
	postRepo roster.PostRepository,
	dayRepo roster.DayRepository,
	allocRepo roster.AllocationRepository,
	unavailRepo roster.UnavailabilityRepository,
	presenceProvider scheduling.PresenceProvider,
	txManager TransactionManager,
	restIntervalDays int,
	logger logger.Interface,
) *AssignUserUseCase {
	return &AssignUserUseCase{
		userRepo:  userRepo,
		postRepo:  postRepo,
		dayRepo:   dayRepo,
		allocRepo: allocRepo,
		gate: newEligibilityGate(userRepo, roleGrantRepo, allocRepo,
			unavailRepo, presenceProvider, restIntervalDays),
		ledger:    scheduling.NewFairnessLedger(),
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *AssignUserUseCase) Execute(ctx context.Context, cmd AssignUserCommand) (*AssignUserResult, error) {
	uc.logger.Infow("executing assign user use case",
		"user_id", cmd.UserID, "post_id", cmd.PostID, "date", cmd.Date)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	date, err := biztime.ParseDate(cmd.Date)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	day, err := uc.dayRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if day == nil {
		return nil, errors.NewNotFoundError("roster day not found", cmd.Date)
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found", cmd.UserID)
	}

	post, err := uc.postRepo.GetByID(ctx, cmd.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.NewNotFoundError("post not found")
	}

	verdict, err := uc.gate.check(ctx, u, post, date, "")
	if err != nil {
		return nil, errors.NewStorageError("failed to resolve eligibility", err.Error())
	}
	if !verdict.Eligible {
		uc.logger.Warnw("user ineligible for post",
			"user_id", u.ID(), "post", post.Name(), "reasons", verdict.ReasonMessages())
		return nil, errors.NewIneligibleError(
			"user is not eligible for the post on this date", verdict.ReasonMessages())
	}

	if cmd.IsPunishment && !u.OwesPunishment() {
		return nil, errors.NewValidationError("user has no punishment balance to pay")
	}

	alloc, err := roster.NewAllocation(u.ID(), post.ID(), date, cmd.IsPunishment, cmd.Tag)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ledger.RecordAssignment(u, day.Routine(), cmd.IsPunishment); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.allocRepo.Save(txCtx, alloc); err != nil {
			return err
		}
		return uc.userRepo.Update(txCtx, u)
	})
	if err != nil {
		uc.logger.Errorw("failed to assign user",
			"user_id", u.ID(), "post_id", post.ID(), "date", cmd.Date, "error", err)
		return nil, err
	}

	uc.logger.Infow("user assigned",
		"allocation_id", alloc.ID(), "user_id", u.ID(), "post_id", post.ID(), "date", cmd.Date)

	return &AssignUserResult{
		AllocationID: alloc.ID(),
		UserID:       alloc.UserID(),
		PostID:       alloc.PostID(),
		Date:         biztime.FormatDate(alloc.Date()),
		IsPunishment: alloc.IsPunishment(),
		Tag:          alloc.Tag(),
	}, nil
}

func (uc *AssignUserUseCase) validateCommand(cmd AssignUserCommand) error {
	if len(cmd.UserID) == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if cmd.PostID == 0 {
		return errors.NewValidationError("post ID is required")
	}
	if len(cmd.Date) == 0 {
		return errors.NewValidationError("date is required")
	}
	return nil
}
