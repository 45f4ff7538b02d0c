package valueobjects

import (
	"fmt"

	uservo "escala/internal/domain/user/valueobjects"
)

// GenderRestriction limits who may occupy a post. "Misto" (mixed) accepts
// anyone, matching the original roster's convention.
type GenderRestriction string

const (
	RestrictionNone   GenderRestriction = "Misto"
	RestrictionMale   GenderRestriction = "M"
	RestrictionFemale GenderRestriction = "F"
)

func NewGenderRestriction(value string) (GenderRestriction, error) {
	r := GenderRestriction(value)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid gender restriction: %q", value)
	}
	return r, nil
}

func (r GenderRestriction) IsValid() bool {
	switch r {
	case RestrictionNone, RestrictionMale, RestrictionFemale:
		return true
	}
	return false
}

// Accepts reports whether a user of the given gender may occupy the post.
func (r GenderRestriction) Accepts(g uservo.Gender) bool {
	if r == RestrictionNone {
		return true
	}
	return string(r) == g.String()
}

func (r GenderRestriction) String() string {
	return string(r)
}
