package valueobjects

import "fmt"

// DayStatus is the lifecycle state of a roster day. Days start as drafts and
// move one-way to published; corrections after publish are out of scope.
type DayStatus string

const (
	StatusDraft     DayStatus = "draft"
	StatusPublished DayStatus = "published"
)

func NewDayStatus(value string) (DayStatus, error) {
	s := DayStatus(value)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid day status: %q", value)
	}
	return s, nil
}

func (s DayStatus) IsValid() bool {
	return s == StatusDraft || s == StatusPublished
}

func (s DayStatus) IsPublished() bool {
	return s == StatusPublished
}

func (s DayStatus) String() string {
	return string(s)
}
