package roster

import (
	"fmt"

	vo "escala/internal/domain/roster/valueobjects"
)

// Post is a duty post filled by exactly one user per roster day.
type Post struct {
	id            uint
	name          string
	genderRule    vo.GenderRestriction
	eligibleYears []int64
	heightened    bool
	requiredRole  string
}

func NewPost(
	name string,
	genderRule vo.GenderRestriction,
	eligibleYears []int64,
	heightened bool,
	requiredRole string,
) (*Post, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("post name is required")
	}
	if !genderRule.IsValid() {
		return nil, fmt.Errorf("invalid gender restriction")
	}
	if len(eligibleYears) == 0 {
		return nil, fmt.Errorf("at least one eligible cohort year is required")
	}
	for _, y := range eligibleYears {
		if y <= 0 {
			return nil, fmt.Errorf("eligible cohort year must be positive")
		}
	}

	return &Post{
		name:          name,
		genderRule:    genderRule,
		eligibleYears: append([]int64(nil), eligibleYears...),
		heightened:    heightened,
		requiredRole:  requiredRole,
	}, nil
}

func ReconstructPost(
	id uint,
	name string,
	genderRule vo.GenderRestriction,
	eligibleYears []int64,
	heightened bool,
	requiredRole string,
) (*Post, error) {
	if id == 0 {
		return nil, fmt.Errorf("post ID cannot be zero")
	}
	p, err := NewPost(name, genderRule, eligibleYears, heightened, requiredRole)
	if err != nil {
		return nil, err
	}
	p.id = id
	return p, nil
}

func (p *Post) ID() uint {
	return p.id
}

func (p *Post) Name() string {
	return p.name
}

func (p *Post) GenderRestriction() vo.GenderRestriction {
	return p.genderRule
}

func (p *Post) EligibleYears() []int64 {
	years := make([]int64, len(p.eligibleYears))
	copy(years, p.eligibleYears)
	return years
}

// IsHeightened reports the post's weight class; informative input to the
// fairness ledger.
func (p *Post) IsHeightened() bool {
	return p.heightened
}

func (p *Post) RequiredRole() string {
	return p.requiredRole
}

func (p *Post) RequiresRole() bool {
	return len(p.requiredRole) > 0
}

// AcceptsYear reports whether the cohort year may occupy the post.
func (p *Post) AcceptsYear(year int64) bool {
	for _, y := range p.eligibleYears {
		if y == year {
			return true
		}
	}
	return false
}

func (p *Post) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("post ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("post ID cannot be zero")
	}
	p.id = id
	return nil
}
