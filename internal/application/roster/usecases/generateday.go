package usecases

import (
	"context"
	"fmt"
	"sort"
	"time"

	"escala/internal/domain/roster"
	vo "escala/internal/domain/roster/valueobjects"
	"escala/internal/domain/scheduling"
	"escala/internal/domain/user"
	"escala/internal/shared/biztime"
	"escala/internal/shared/errors"
	"escala/internal/shared/logger"
)

type GenerateDayCommand struct {
	Date    string
	Routine string
}

type GeneratedSlot struct {
	AllocationID string
	PostID       uint
	PostName     string
	UserID       string
	IsPunishment bool
}

type GenerateDayResult struct {
	Date    string
	Routine string
	Created bool
	Slots   []GeneratedSlot
}

// GenerateDayUseCase fills every post for one roster day in a single
// transaction: candidates pass the eligibility gate, the fairness ledger
// ranks them, and the first one takes the slot. A post with no candidate
// aborts the whole day.
type GenerateDayUseCase struct {
	userRepo  user.Repository
	postRepo  roster.PostRepository
	dayRepo   roster.DayRepository
	allocRepo roster.AllocationRepository
	gate      *eligibilityGate
	ledger    *scheduling.FairnessLedger
	txManager TransactionManager
	logger    logger.Interface
}

func NewGenerateDayUseCase(
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
) *GenerateDayUseCase {
	return &GenerateDayUseCase{
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

func (uc *GenerateDayUseCase) Execute(ctx context.Context, cmd GenerateDayCommand) (*GenerateDayResult, error) {
	uc.logger.Infow("executing generate day use case",
		"date", cmd.Date, "routine", cmd.Routine)

	date, err := biztime.ParseDate(cmd.Date)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	routine, err := vo.NewRoutineType(cmd.Routine)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	result := &GenerateDayResult{
		Date:    cmd.Date,
		Routine: routine.String(),
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		day, created, err := uc.ensureDay(txCtx, date, routine)
		if err != nil {
			return err
		}
		result.Created = created

		posts, err := uc.postRepo.List(txCtx)
		if err != nil {
			return err
		}
		sort.Slice(posts, func(i, j int) bool { return posts[i].ID() < posts[j].ID() })

		users, err := uc.userRepo.List(txCtx)
		if err != nil {
			return err
		}

		taken, filled, err := uc.existingAllocations(txCtx, date)
		if err != nil {
			return err
		}

		for _, post := range posts {
			if filled[post.ID()] {
				continue
			}
			slot, err := uc.fillPost(txCtx, day, post, users, taken)
			if err != nil {
				return err
			}
			taken[slot.UserID] = true
			result.Slots = append(result.Slots, *slot)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("day generation failed", "date", cmd.Date, "error", err)
		return nil, err
	}

	uc.logger.Infow("day generated",
		"date", cmd.Date, "routine", routine.String(), "slots", len(result.Slots))
	return result, nil
}

// ensureDay creates the roster day when absent and reuses it otherwise,
// making repeated generation runs idempotent at the day level. A published
// day is closed to generation.
func (uc *GenerateDayUseCase) ensureDay(ctx context.Context, date time.Time, routine vo.RoutineType) (*roster.RosterDay, bool, error) {
	day, err := roster.NewRosterDay(date, routine)
	if err != nil {
		return nil, false, errors.NewValidationError(err.Error())
	}
	created, err := uc.dayRepo.SaveIfAbsent(ctx, day)
	if err != nil {
		return nil, false, err
	}
	if created {
		return day, true, nil
	}

	existing, err := uc.dayRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, errors.NewStorageError("roster day vanished during generation",
			biztime.FormatDate(date))
	}
	if existing.IsPublished() {
		return nil, false, errors.NewInvalidStateError(
			fmt.Sprintf("roster day %s is published and closed to generation",
				biztime.FormatDate(date)))
	}
	return existing, false, nil
}

// existingAllocations returns the users already holding a slot on the date
// and the posts already filled, so a re-run only fills the gaps.
func (uc *GenerateDayUseCase) existingAllocations(ctx context.Context, date time.Time) (map[string]bool, map[uint]bool, error) {
	existing, err := uc.allocRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, nil, err
	}
	taken := make(map[string]bool, len(existing))
	filled := make(map[uint]bool, len(existing))
	for _, a := range existing {
		taken[a.UserID()] = true
		filled[a.PostID()] = true
	}
	return taken, filled, nil
}

func (uc *GenerateDayUseCase) fillPost(
	ctx context.Context,
	day *roster.RosterDay,
	post *roster.Post,
	users []*user.User,
	taken map[string]bool,
) (*GeneratedSlot, error) {
	var eligible []*user.User
	for _, u := range users {
		if taken[u.ID()] {
			continue
		}
		verdict, err := uc.gate.check(ctx, u, post, day.Date(), "")
		if err != nil {
			return nil, errors.NewStorageError("failed to resolve eligibility", err.Error())
		}
		if verdict.Eligible {
			eligible = append(eligible, u)
		}
	}

	if len(eligible) == 0 {
		return nil, errors.NewIneligibleError(
			fmt.Sprintf("no eligible candidate for post %s (cohorts %v) on %s",
				post.Name(), post.EligibleYears(), biztime.FormatDate(day.Date())),
			nil)
	}

	ranked := uc.ledger.RankCandidates(eligible, day.Routine())
	chosen := ranked[0]
	isPunishment := chosen.OwesPunishment()

	alloc, err := roster.NewAllocation(chosen.ID(), post.ID(), day.Date(), isPunishment, "")
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.ledger.RecordAssignment(chosen, day.Routine(), isPunishment); err != nil {
		return nil, errors.NewInvalidStateError(err.Error())
	}
	if err := uc.allocRepo.Save(ctx, alloc); err != nil {
		return nil, err
	}
	if err := uc.userRepo.Update(ctx, chosen); err != nil {
		return nil, err
	}

	return &GeneratedSlot{
		AllocationID: alloc.ID(),
		PostID:       post.ID(),
		PostName:     post.Name(),
		UserID:       chosen.ID(),
		IsPunishment: isPunishment,
	}, nil
}
