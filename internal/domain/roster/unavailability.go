package roster

import (
	"fmt"
	"time"
)

// UnavailabilityWindow blocks a user from all posts on every calendar date it
// covers (medical leave, dispensation). Bounds are inclusive.
type UnavailabilityWindow struct {
	id        uint
	userID    string
	startDate time.Time
	endDate   time.Time
	reason    string
}

func NewUnavailabilityWindow(userID string, startDate, endDate time.Time, reason string) (*UnavailabilityWindow, error) {
	if len(userID) == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if startDate.IsZero() || endDate.IsZero() {
		return nil, fmt.Errorf("start and end dates are required")
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("end date cannot precede start date")
	}

	return &UnavailabilityWindow{
		userID:    userID,
		startDate: startDate,
		endDate:   endDate,
		reason:    reason,
	}, nil
}

func ReconstructUnavailabilityWindow(
	id uint,
	userID string,
	startDate, endDate time.Time,
	reason string,
) (*UnavailabilityWindow, error) {
	if id == 0 {
		return nil, fmt.Errorf("window ID cannot be zero")
	}
	w, err := NewUnavailabilityWindow(userID, startDate, endDate, reason)
	if err != nil {
		return nil, err
	}
	w.id = id
	return w, nil
}

func (w *UnavailabilityWindow) ID() uint {
	return w.id
}

func (w *UnavailabilityWindow) UserID() string {
	return w.userID
}

func (w *UnavailabilityWindow) StartDate() time.Time {
	return w.startDate
}

func (w *UnavailabilityWindow) EndDate() time.Time {
	return w.endDate
}

func (w *UnavailabilityWindow) Reason() string {
	return w.reason
}

// Contains reports whether the calendar date falls inside the window.
func (w *UnavailabilityWindow) Contains(date time.Time) bool {
	return !date.Before(w.startDate) && !date.After(w.endDate)
}

func (w *UnavailabilityWindow) SetID(id uint) error {
	if w.id != 0 {
		return fmt.Errorf("window ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("window ID cannot be zero")
	}
	w.id = id
	return nil
}
