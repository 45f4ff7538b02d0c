package roster

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Allocation binds one user to one post on one roster day. The storage layer
// enforces at most one allocation per (user, date) with a unique index; the
// version field guards concurrent swap approvals touching the same row.
type Allocation struct {
	id           string
	userID       string
	postID       uint
	date         time.Time
	isPunishment bool
	tag          string
	version      int
	createdAt    time.Time
}

func NewAllocation(userID string, postID uint, date time.Time, isPunishment bool, tag string) (*Allocation, error) {
	if len(userID) == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if postID == 0 {
		return nil, fmt.Errorf("post ID is required")
	}
	if date.IsZero() {
		return nil, fmt.Errorf("date is required")
	}

	return &Allocation{
		id:           uuid.NewString(),
		userID:       userID,
		postID:       postID,
		date:         date,
		isPunishment: isPunishment,
		tag:          tag,
		version:      1,
		createdAt:    time.Now().UTC(),
	}, nil
}

func ReconstructAllocation(
	id string,
	userID string,
	postID uint,
	date time.Time,
	isPunishment bool,
	tag string,
	version int,
	createdAt time.Time,
) (*Allocation, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("allocation ID is required")
	}
	if len(userID) == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if postID == 0 {
		return nil, fmt.Errorf("post ID is required")
	}
	if date.IsZero() {
		return nil, fmt.Errorf("date is required")
	}

	return &Allocation{
		id:           id,
		userID:       userID,
		postID:       postID,
		date:         date,
		isPunishment: isPunishment,
		tag:          tag,
		version:      version,
		createdAt:    createdAt,
	}, nil
}

func (a *Allocation) ID() string {
	return a.id
}

func (a *Allocation) UserID() string {
	return a.userID
}

func (a *Allocation) PostID() uint {
	return a.postID
}

func (a *Allocation) Date() time.Time {
	return a.date
}

func (a *Allocation) IsPunishment() bool {
	return a.isPunishment
}

func (a *Allocation) Tag() string {
	return a.tag
}

func (a *Allocation) Version() int {
	return a.version
}

func (a *Allocation) CreatedAt() time.Time {
	return a.createdAt
}

// IsOwnedBy reports whether the allocation currently belongs to the user.
func (a *Allocation) IsOwnedBy(userID string) bool {
	return a.userID == userID
}

// TransferTo moves the duty to another user as part of an approved swap.
// The punishment flag and tag travel with the duty.
func (a *Allocation) TransferTo(userID string) error {
	if len(userID) == 0 {
		return fmt.Errorf("user ID is required")
	}
	if a.userID == userID {
		return fmt.Errorf("allocation already belongs to user %s", userID)
	}
	a.userID = userID
	a.version++
	return nil
}
