package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"escala/internal/domain/roster"
	"escala/internal/domain/scheduling"
	"escala/internal/domain/swap"
	"escala/internal/domain/user"
	"escala/internal/shared/biztime"
	"escala/internal/shared/errors"
	"escala/internal/shared/logger"
)

type ApproveSwapCommand struct {
	SwapID     string
	ApproverID string
}

type ApproveSwapResult struct {
	SwapID string
	Status string
	// Reasons is populated when the substitute failed revalidation and the
	// swap was auto-rejected.
	Reasons []string
	DebtID  string
}

// ApproveSwapUseCase resolves a pending swap in one transaction: the
// substitute is re-validated at approval time; on success the allocation
// moves, the ledger transfers the duty's weight and opens the debt; on
// failure the swap is auto-rejected rather than left pending.
type ApproveSwapUseCase struct {
	swapRepo         swap.Repository
	debtRepo         swap.DebtRepository
	allocRepo        roster.AllocationRepository
	dayRepo          roster.DayRepository
	postRepo         roster.PostRepository
	userRepo         user.Repository
	roleGrantRepo    user.RoleGrantRepository
	unavailRepo      roster.UnavailabilityRepository
	presenceProvider scheduling.PresenceProvider
	resolver         *scheduling.Resolver
	ledger           *scheduling.FairnessLedger
	txManager        TransactionManager
	restIntervalDays int
	logger           logger.Interface
}

func NewApproveSwapUseCase(
	swapRepo swap.Repository,
	debtRepo swap.DebtRepository,
	allocRepo roster.AllocationRepository,
	dayRepo roster.DayRepository,
	postRepo roster.PostRepository,
	userRepo user.Repository,
	roleGrantRepo user.RoleGrantRepository,
	unavailRepo roster.UnavailabilityRepository,
	presenceProvider scheduling.PresenceProvider,
	txManager TransactionManager,
	restIntervalDays int,
	logger logger.Interface,
) *ApproveSwapUseCase {
	if restIntervalDays < 1 {
		restIntervalDays = 1
	}
	return &ApproveSwapUseCase{
		swapRepo:         swapRepo,
		debtRepo:         debtRepo,
		allocRepo:        allocRepo,
		dayRepo:          dayRepo,
		postRepo:         postRepo,
		userRepo:         userRepo,
		roleGrantRepo:    roleGrantRepo,
		unavailRepo:      unavailRepo,
		presenceProvider: presenceProvider,
		resolver:         scheduling.NewResolver(),
		ledger:           scheduling.NewFairnessLedger(),
		txManager:        txManager,
		restIntervalDays: restIntervalDays,
		logger:           logger,
	}
}

func (uc *ApproveSwapUseCase) Execute(ctx context.Context, cmd ApproveSwapCommand) (*ApproveSwapResult, error) {
	uc.logger.Infow("executing approve swap use case",
		"swap_id", cmd.SwapID, "approver_id", cmd.ApproverID)

	if len(cmd.SwapID) == 0 {
		return nil, errors.NewValidationError("swap ID is required")
	}
	if len(cmd.ApproverID) == 0 {
		return nil, errors.NewValidationError("approver ID is required")
	}

	var result *ApproveSwapResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		result, err = uc.resolve(txCtx, cmd)
		return err
	})
	if err != nil {
		uc.logger.Errorw("swap approval failed", "swap_id", cmd.SwapID, "error", err)
		return nil, err
	}

	uc.logger.Infow("swap resolved",
		"swap_id", result.SwapID, "status", result.Status, "debt_id", result.DebtID)
	return result, nil
}

func (uc *ApproveSwapUseCase) resolve(ctx context.Context, cmd ApproveSwapCommand) (*ApproveSwapResult, error) {
	s, err := uc.swapRepo.GetByID(ctx, cmd.SwapID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, errors.NewNotFoundError("swap not found", cmd.SwapID)
	}
	if !s.Status().IsPending() {
		return nil, errors.NewInvalidStateError(
			fmt.Sprintf("swap %s is already %s", s.ID(), s.Status()))
	}

	alloc, err := uc.allocRepo.GetByID(ctx, s.AllocationID())
	if err != nil {
		return nil, err
	}
	if alloc == nil {
		return nil, errors.NewNotFoundError("allocation not found", s.AllocationID())
	}
	if alloc.UserID() != s.RequesterID() {
		return uc.rejectStale(ctx, s, cmd.ApproverID)
	}

	day, err := uc.dayRepo.GetByDate(ctx, alloc.Date())
	if err != nil {
		return nil, err
	}
	if day == nil {
		return nil, errors.NewNotFoundError("roster day not found",
			biztime.FormatDate(alloc.Date()))
	}

	requester, err := uc.userRepo.GetByID(ctx, s.RequesterID())
	if err != nil {
		return nil, err
	}
	if requester == nil {
		return nil, errors.NewNotFoundError("requester not found", s.RequesterID())
	}

	substitute, err := uc.userRepo.GetByID(ctx, s.SubstituteID())
	if err != nil {
		return nil, err
	}
	if substitute == nil {
		return nil, errors.NewNotFoundError("substitute not found", s.SubstituteID())
	}

	verdict, err := uc.revalidateSubstitute(ctx, s, substitute, alloc)
	if err != nil {
		return nil, err
	}
	if !verdict.Eligible {
		return uc.autoReject(ctx, s, cmd.ApproverID, verdict)
	}

	if err := alloc.TransferTo(substitute.ID()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.ledger.TransferOnSwap(requester, substitute, day.Routine(), alloc.IsPunishment()); err != nil {
		return nil, errors.NewInvalidStateError(err.Error())
	}
	debt, err := uc.ledger.DebtOnSwap(s, alloc.IsPunishment())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := s.Approve(cmd.ApproverID); err != nil {
		return nil, err
	}

	if err := uc.allocRepo.UpdateUser(ctx, alloc); err != nil {
		return nil, err
	}
	if err := uc.userRepo.Update(ctx, requester); err != nil {
		return nil, err
	}
	if err := uc.userRepo.Update(ctx, substitute); err != nil {
		return nil, err
	}
	if debt != nil {
		if err := uc.debtRepo.Save(ctx, debt); err != nil {
			return nil, err
		}
	}
	if err := uc.swapRepo.Update(ctx, s); err != nil {
		return nil, err
	}

	result := &ApproveSwapResult{
		SwapID: s.ID(),
		Status: s.Status().String(),
	}
	if debt != nil {
		result.DebtID = debt.ID()
	}
	return result, nil
}

// revalidateSubstitute re-runs the eligibility rules for the substitute at
// approval time, excluding the moving allocation from the one-per-day check
// and adding the rest-interval guard.
func (uc *ApproveSwapUseCase) revalidateSubstitute(
	ctx context.Context,
	s *swap.Swap,
	substitute *user.User,
	alloc *roster.Allocation,
) (scheduling.Result, error) {
	post, err := uc.postRepo.GetByID(ctx, alloc.PostID())
	if err != nil {
		return scheduling.Result{}, err
	}
	if post == nil {
		return scheduling.Result{}, errors.NewNotFoundError("post not found")
	}

	roles, err := uc.roleGrantRepo.ListByUser(ctx, substitute.ID())
	if err != nil {
		return scheduling.Result{}, err
	}
	windows, err := uc.unavailRepo.ListByUser(ctx, substitute.ID())
	if err != nil {
		return scheduling.Result{}, err
	}
	presence, err := uc.presenceProvider.StatusFor(ctx, substitute.ID())
	if err != nil {
		return scheduling.Result{}, err
	}
	existing, err := uc.allocRepo.FindByUserAndDate(ctx, substitute.ID(), alloc.Date())
	if err != nil {
		return scheduling.Result{}, err
	}

	verdict := uc.resolver.Check(scheduling.CheckInput{
		User:                    substitute,
		Post:                    post,
		Date:                    alloc.Date(),
		Roles:                   roles,
		Unavailability:          windows,
		Presence:                presence,
		ExistingAllocation:      existing,
		RevalidatedAllocationID: alloc.ID(),
	})

	rested, err := uc.withinRestInterval(ctx, substitute.ID(), alloc.Date())
	if err != nil {
		return scheduling.Result{}, err
	}
	if rested {
		verdict.Eligible = false
		verdict.Reasons = append(verdict.Reasons, scheduling.Reason{
			Code: scheduling.ReasonRestInterval,
			Message: fmt.Sprintf("allocation within %d day(s) of the duty date",
				uc.restIntervalDays),
		})
	}
	return verdict, nil
}

func (uc *ApproveSwapUseCase) withinRestInterval(ctx context.Context, userID string, date time.Time) (bool, error) {
	before, err := uc.allocRepo.ExistsInRange(ctx, userID,
		date.AddDate(0, 0, -uc.restIntervalDays), date.AddDate(0, 0, -1))
	if err != nil {
		return false, err
	}
	if before {
		return true, nil
	}
	return uc.allocRepo.ExistsInRange(ctx, userID,
		date.AddDate(0, 0, 1), date.AddDate(0, 0, uc.restIntervalDays))
}

// rejectStale closes a swap whose allocation no longer belongs to the
// requester, typically because a competing swap on the same allocation was
// approved first. The allocation and the ledger stay untouched.
func (uc *ApproveSwapUseCase) rejectStale(
	ctx context.Context,
	s *swap.Swap,
	approverID string,
) (*ApproveSwapResult, error) {
	reason := fmt.Sprintf("requester %s no longer holds allocation %s",
		s.RequesterID(), s.AllocationID())

	if err := s.Reject(approverID, reason); err != nil {
		return nil, err
	}
	if err := uc.swapRepo.Update(ctx, s); err != nil {
		return nil, err
	}

	uc.logger.Warnw("swap auto-rejected", "swap_id", s.ID(), "reason", reason)

	return &ApproveSwapResult{
		SwapID:  s.ID(),
		Status:  s.Status().String(),
		Reasons: []string{reason},
	}, nil
}

// autoReject closes the swap when the substitute fails revalidation. The
// allocation and the ledger stay untouched; only the swap row changes.
func (uc *ApproveSwapUseCase) autoReject(
	ctx context.Context,
	s *swap.Swap,
	approverID string,
	verdict scheduling.Result,
) (*ApproveSwapResult, error) {
	reasons := verdict.ReasonMessages()
	note := "substitute failed revalidation: " + strings.Join(reasons, "; ")

	if err := s.Reject(approverID, note); err != nil {
		return nil, err
	}
	if err := uc.swapRepo.Update(ctx, s); err != nil {
		return nil, err
	}

	uc.logger.Warnw("swap auto-rejected",
		"swap_id", s.ID(), "reasons", reasons)

	return &ApproveSwapResult{
		SwapID:  s.ID(),
		Status:  s.Status().String(),
		Reasons: reasons,
	}, nil
}
