package valueobjects

import "fmt"

// Gender identifies a user's gender as stored on the roster ("M" or "F").
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

func NewGender(value string) (Gender, error) {
	g := Gender(value)
	if !g.IsValid() {
		return "", fmt.Errorf("invalid gender: %q", value)
	}
	return g, nil
}

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

func (g Gender) String() string {
	return string(g)
}
