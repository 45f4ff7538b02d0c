// Package scheduling holds the allocation engine's domain services: the
// eligibility resolver that decides whether a user may legally occupy a post
// on a date, and the fairness ledger that keeps long-run workload balanced.
package scheduling

import (
	"fmt"
	"time"

	"escala/internal/domain/roster"
	"escala/internal/domain/user"
	"escala/internal/shared/biztime"
)

// ReasonCode identifies one failed eligibility check.
type ReasonCode string

const (
	ReasonGenderRestricted ReasonCode = "gender_restricted"
	ReasonCohortMismatch   ReasonCode = "cohort_mismatch"
	ReasonMissingRole      ReasonCode = "missing_role"
	ReasonUnavailable      ReasonCode = "unavailable"
	ReasonAlreadyAllocated ReasonCode = "already_allocated"
	ReasonCurrentlyOut     ReasonCode = "currently_out"
	ReasonRestInterval     ReasonCode = "rest_interval"
)

// Reason explains one failed check so callers can report why a candidate was
// rejected instead of a bare boolean.
type Reason struct {
	Code    ReasonCode
	Message string
}

func (r Reason) String() string {
	return r.Message
}

// Result is the resolver's verdict with every failing reason collected.
type Result struct {
	Eligible bool
	Reasons  []Reason
}

// ReasonMessages flattens the reasons for error payloads.
func (r Result) ReasonMessages() []string {
	msgs := make([]string, len(r.Reasons))
	for i, reason := range r.Reasons {
		msgs[i] = reason.Message
	}
	return msgs
}

// CheckInput carries everything the resolver needs. The resolver is a pure
// function of these inputs: same input, same verdict and reason list.
type CheckInput struct {
	User *user.User
	Post *roster.Post
	// Date is the duty day as a canonical calendar date.
	Date time.Time
	// Roles is the user's full grant set; the effective subset at the duty
	// day's start instant is computed here, lazily.
	Roles user.RoleSet
	// Unavailability is the user's declared windows.
	Unavailability []*roster.UnavailabilityWindow
	// Presence is the tracker's current state for the user.
	Presence PresenceStatus
	// ExistingAllocation is the user's allocation on Date, if any.
	ExistingAllocation *roster.Allocation
	// RevalidatedAllocationID, when set, exempts that allocation from the
	// one-per-day check: a swap moves it, so holding it is not a conflict.
	RevalidatedAllocationID string
}

// Resolver decides whether an assignment is legal. It is read-only and
// side-effect free.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// Check runs every eligibility rule and collects all failures.
func (r *Resolver) Check(in CheckInput) Result {
	var reasons []Reason

	if !in.Post.GenderRestriction().Accepts(in.User.Gender()) {
		reasons = append(reasons, Reason{
			Code: ReasonGenderRestricted,
			Message: fmt.Sprintf("post %s is restricted to gender %s",
				in.Post.Name(), in.Post.GenderRestriction()),
		})
	}

	if !in.Post.AcceptsYear(in.User.Year()) {
		reasons = append(reasons, Reason{
			Code: ReasonCohortMismatch,
			Message: fmt.Sprintf("cohort mismatch: post %s does not accept year %d",
				in.Post.Name(), in.User.Year()),
		})
	}

	if in.Post.RequiresRole() {
		at := biztime.StartOfDayUTC(in.Date)
		if !in.Roles.Contains(in.Post.RequiredRole(), at) {
			reasons = append(reasons, Reason{
				Code: ReasonMissingRole,
				Message: fmt.Sprintf("missing required role %q at %s",
					in.Post.RequiredRole(), biztime.FormatDate(in.Date)),
			})
		}
	}

	for _, w := range in.Unavailability {
		if w.Contains(in.Date) {
			reasons = append(reasons, Reason{
				Code: ReasonUnavailable,
				Message: fmt.Sprintf("unavailable on %s: %s",
					biztime.FormatDate(in.Date), w.Reason()),
			})
			break
		}
	}

	if in.ExistingAllocation != nil &&
		in.ExistingAllocation.ID() != in.RevalidatedAllocationID {
		reasons = append(reasons, Reason{
			Code: ReasonAlreadyAllocated,
			Message: fmt.Sprintf("already allocated on %s",
				biztime.FormatDate(in.Date)),
		})
	}

	if in.Presence.IsOut() {
		reasons = append(reasons, Reason{
			Code:    ReasonCurrentlyOut,
			Message: "currently out of the unit with no recorded return",
		})
	}

	return Result{
		Eligible: len(reasons) == 0,
		Reasons:  reasons,
	}
}
