package valueobjects

import "fmt"

// RoutineType classifies a duty day's weight for fairness accounting.
// RN is the normal weekday routine; RD is the heightened Sunday/holiday
// routine tracked on a separate counter.
type RoutineType string

const (
	RoutineNormal     RoutineType = "RN"
	RoutineHeightened RoutineType = "RD"
)

func NewRoutineType(value string) (RoutineType, error) {
	r := RoutineType(value)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid routine type: %q", value)
	}
	return r, nil
}

func (r RoutineType) IsValid() bool {
	return r == RoutineNormal || r == RoutineHeightened
}

func (r RoutineType) IsHeightened() bool {
	return r == RoutineHeightened
}

func (r RoutineType) String() string {
	return string(r)
}
