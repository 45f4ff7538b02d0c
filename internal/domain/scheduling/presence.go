package scheduling

import (
	"context"
	"time"
)

// PresenceStatus is the read-only in/out state the presence tracker reports
// for one user: the last recorded exit and return transitions, if any.
type PresenceStatus struct {
	LastExit   *time.Time
	LastReturn *time.Time
}

// IsOut reports whether the user is currently outside the unit: an exit was
// recorded and no return has been recorded since.
func (p PresenceStatus) IsOut() bool {
	if p.LastExit == nil {
		return false
	}
	if p.LastReturn == nil {
		return true
	}
	return p.LastExit.After(*p.LastReturn)
}

// PresenceProvider supplies current presence state per user. The tracker
// itself (check-in/out recording) is an external collaborator; this engine
// only reads it.
type PresenceProvider interface {
	StatusFor(ctx context.Context, userID string) (PresenceStatus, error)
}
