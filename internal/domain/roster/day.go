package roster

import (
	"fmt"
	"time"

	vo "escala/internal/domain/roster/valueobjects"
)

// RosterDay is one calendar day of the roster. Dates are calendar dates
// normalized to midnight UTC.
type RosterDay struct {
	date    time.Time
	routine vo.RoutineType
	status  vo.DayStatus
}

func NewRosterDay(date time.Time, routine vo.RoutineType) (*RosterDay, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("date is required")
	}
	if !routine.IsValid() {
		return nil, fmt.Errorf("invalid routine type")
	}
	return &RosterDay{
		date:    date,
		routine: routine,
		status:  vo.StatusDraft,
	}, nil
}

func ReconstructRosterDay(date time.Time, routine vo.RoutineType, status vo.DayStatus) (*RosterDay, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("date is required")
	}
	if !routine.IsValid() {
		return nil, fmt.Errorf("invalid routine type")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid day status")
	}
	return &RosterDay{
		date:    date,
		routine: routine,
		status:  status,
	}, nil
}

func (d *RosterDay) Date() time.Time {
	return d.date
}

func (d *RosterDay) Routine() vo.RoutineType {
	return d.routine
}

func (d *RosterDay) Status() vo.DayStatus {
	return d.status
}

func (d *RosterDay) IsPublished() bool {
	return d.status.IsPublished()
}

// Publish moves the day from draft to published. The transition is one-way;
// republishing requires a correction, which is outside this engine.
func (d *RosterDay) Publish() error {
	if d.status.IsPublished() {
		return fmt.Errorf("roster day %s is already published", d.date.Format("2006-01-02"))
	}
	d.status = vo.StatusPublished
	return nil
}
