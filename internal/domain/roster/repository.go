package roster

import (
	"context"
	"time"
)

// PostRepository provides access to duty posts.
type PostRepository interface {
	GetByID(ctx context.Context, id uint) (*Post, error)
	List(ctx context.Context) ([]*Post, error)
	Save(ctx context.Context, p *Post) error
}

// DayRepository provides access to roster days.
type DayRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*RosterDay, error)
	// SaveIfAbsent creates the day when no row for the date exists yet and
	// reports whether a row was created, making batch generation idempotent.
	SaveIfAbsent(ctx context.Context, d *RosterDay) (bool, error)
	Update(ctx context.Context, d *RosterDay) error
	ListRange(ctx context.Context, start, end time.Time) ([]*RosterDay, error)
}

// AllocationRepository provides access to allocations. Save surfaces the
// (user, date) unique-index violation as a conflict error; UpdateUser applies
// a version-guarded user change and reports a conflict when the guard fails.
type AllocationRepository interface {
	GetByID(ctx context.Context, id string) (*Allocation, error)
	FindByUserAndDate(ctx context.Context, userID string, date time.Time) (*Allocation, error)
	ListByDate(ctx context.Context, date time.Time) ([]*Allocation, error)
	// ExistsInRange reports whether the user holds any allocation whose
	// date falls in [start, end]; used by the rest-interval rule.
	ExistsInRange(ctx context.Context, userID string, start, end time.Time) (bool, error)
	Save(ctx context.Context, a *Allocation) error
	UpdateUser(ctx context.Context, a *Allocation) error
	Delete(ctx context.Context, id string) error
}

// UnavailabilityRepository provides access to unavailability windows.
type UnavailabilityRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*UnavailabilityWindow, error)
	ListCovering(ctx context.Context, date time.Time) ([]*UnavailabilityWindow, error)
	Save(ctx context.Context, w *UnavailabilityWindow) error
}
