package usecases

import (
	"context"
	"fmt"
	"time"

	"escala/internal/domain/roster"
	"escala/internal/domain/scheduling"
	"escala/internal/domain/user"
)

// eligibilityGate assembles the resolver's inputs from the repositories and
// applies the rest-interval rule, which is a generation/approval policy
// rather than one of the resolver's own checks.
type eligibilityGate struct {
	userRepo         user.Repository
	roleGrantRepo    user.RoleGrantRepository
	allocationRepo   roster.AllocationRepository
	unavailRepo      roster.UnavailabilityRepository
	presenceProvider scheduling.PresenceProvider
	resolver         *scheduling.Resolver
	restIntervalDays int
}

func newEligibilityGate(
	userRepo user.Repository,
	roleGrantRepo user.RoleGrantRepository,
	allocationRepo roster.AllocationRepository,
	unavailRepo roster.UnavailabilityRepository,
	presenceProvider scheduling.PresenceProvider,
	restIntervalDays int,
) *eligibilityGate {
	if restIntervalDays < 1 {
		restIntervalDays = 1
	}
	return &eligibilityGate{
		userRepo:         userRepo,
		roleGrantRepo:    roleGrantRepo,
		allocationRepo:   allocationRepo,
		unavailRepo:      unavailRepo,
		presenceProvider: presenceProvider,
		resolver:         scheduling.NewResolver(),
		restIntervalDays: restIntervalDays,
	}
}

// check runs the full eligibility gate for one user/post/date. When
// revalidatedAllocationID is non-empty the named allocation is exempt from
// the one-per-day check (it is the one being moved by a swap).
func (g *eligibilityGate) check(
	ctx context.Context,
	u *user.User,
	post *roster.Post,
	date time.Time,
	revalidatedAllocationID string,
) (scheduling.Result, error) {
	roles, err := g.roleGrantRepo.ListByUser(ctx, u.ID())
	if err != nil {
		return scheduling.Result{}, fmt.Errorf("list role grants: %w", err)
	}

	windows, err := g.unavailRepo.ListByUser(ctx, u.ID())
	if err != nil {
		return scheduling.Result{}, fmt.Errorf("list unavailability windows: %w", err)
	}

	presence, err := g.presenceProvider.StatusFor(ctx, u.ID())
	if err != nil {
		return scheduling.Result{}, fmt.Errorf("fetch presence status: %w", err)
	}

	existing, err := g.allocationRepo.FindByUserAndDate(ctx, u.ID(), date)
	if err != nil {
		return scheduling.Result{}, fmt.Errorf("find existing allocation: %w", err)
	}

	result := g.resolver.Check(scheduling.CheckInput{
		User:                    u,
		Post:                    post,
		Date:                    date,
		Roles:                   roles,
		Unavailability:          windows,
		Presence:                presence,
		ExistingAllocation:      existing,
		RevalidatedAllocationID: revalidatedAllocationID,
	})

	rested, err := g.withinRestInterval(ctx, u.ID(), date)
	if err != nil {
		return scheduling.Result{}, err
	}
	if rested {
		result.Eligible = false
		result.Reasons = append(result.Reasons, scheduling.Reason{
			Code: scheduling.ReasonRestInterval,
			Message: fmt.Sprintf("allocation within %d day(s) of the duty date",
				g.restIntervalDays),
		})
	}

	return result, nil
}

// withinRestInterval reports whether the user holds an allocation on an
// adjacent day. The duty date itself is excluded here: holding the date is
// the one-per-day check's business, and the revalidated allocation sits on
// that date.
func (g *eligibilityGate) withinRestInterval(ctx context.Context, userID string, date time.Time) (bool, error) {
	before, err := g.allocationRepo.ExistsInRange(ctx, userID,
		date.AddDate(0, 0, -g.restIntervalDays), date.AddDate(0, 0, -1))
	if err != nil {
		return false, fmt.Errorf("check rest interval: %w", err)
	}
	if before {
		return true, nil
	}
	after, err := g.allocationRepo.ExistsInRange(ctx, userID,
		date.AddDate(0, 0, 1), date.AddDate(0, 0, g.restIntervalDays))
	if err != nil {
		return false, fmt.Errorf("check rest interval: %w", err)
	}
	return after, nil
}
