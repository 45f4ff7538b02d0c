package user

import (
	"fmt"
	"time"

	vo "escala/internal/domain/user/valueobjects"
)

// User is a roster member. IDs are service numbers assigned by the
// organization, not generated here.
//
// The workload counters (normal/heightened routine) and the punishment
// balance are owned by the fairness ledger: nothing outside
// internal/domain/scheduling may call the mutator methods.
type User struct {
	id            string
	name          string
	cohort        string
	year          int64
	course        string
	gender        vo.Gender
	normalCount   int64
	heightenedCnt int64
	punishBalance int64
	version       int
	createdAt     time.Time
	updatedAt     time.Time
}

func NewUser(
	id string,
	name string,
	cohort string,
	year int64,
	course string,
	gender vo.Gender,
) (*User, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(cohort) == 0 {
		return nil, fmt.Errorf("cohort is required")
	}
	if year <= 0 {
		return nil, fmt.Errorf("year must be positive")
	}
	if !gender.IsValid() {
		return nil, fmt.Errorf("invalid gender")
	}

	now := time.Now().UTC()
	return &User{
		id:        id,
		name:      name,
		cohort:    cohort,
		year:      year,
		course:    course,
		gender:    gender,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructUser(
	id string,
	name string,
	cohort string,
	year int64,
	course string,
	gender vo.Gender,
	normalCount int64,
	heightenedCount int64,
	punishmentBalance int64,
	version int,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !gender.IsValid() {
		return nil, fmt.Errorf("invalid gender")
	}
	if normalCount < 0 || heightenedCount < 0 {
		return nil, fmt.Errorf("service counters cannot be negative")
	}
	if punishmentBalance < 0 {
		return nil, fmt.Errorf("punishment balance cannot be negative")
	}

	return &User{
		id:            id,
		name:          name,
		cohort:        cohort,
		year:          year,
		course:        course,
		gender:        gender,
		normalCount:   normalCount,
		heightenedCnt: heightenedCount,
		punishBalance: punishmentBalance,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (u *User) ID() string {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Cohort() string {
	return u.cohort
}

func (u *User) Year() int64 {
	return u.year
}

func (u *User) Course() string {
	return u.course
}

func (u *User) Gender() vo.Gender {
	return u.gender
}

func (u *User) NormalCount() int64 {
	return u.normalCount
}

func (u *User) HeightenedCount() int64 {
	return u.heightenedCnt
}

func (u *User) PunishmentBalance() int64 {
	return u.punishBalance
}

func (u *User) OwesPunishment() bool {
	return u.punishBalance > 0
}

func (u *User) Version() int {
	return u.version
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// AddNormalService increments the normal-routine counter.
// Ledger use only.
func (u *User) AddNormalService() {
	u.normalCount++
	u.touch()
}

// AddHeightenedService increments the heightened-routine counter.
// Ledger use only.
func (u *User) AddHeightenedService() {
	u.heightenedCnt++
	u.touch()
}

// RemoveNormalService decrements the normal-routine counter when a duty moves
// away from this user through a swap. Ledger use only.
func (u *User) RemoveNormalService() error {
	if u.normalCount == 0 {
		return fmt.Errorf("normal-routine counter already zero for user %s", u.id)
	}
	u.normalCount--
	u.touch()
	return nil
}

// RemoveHeightenedService decrements the heightened-routine counter when a
// duty moves away from this user through a swap. Ledger use only.
func (u *User) RemoveHeightenedService() error {
	if u.heightenedCnt == 0 {
		return fmt.Errorf("heightened-routine counter already zero for user %s", u.id)
	}
	u.heightenedCnt--
	u.touch()
	return nil
}

// PayPunishment decrements the punishment balance after a punishment-flagged
// assignment. Decrementing below zero is a programming error, not a
// user-facing condition. Ledger use only.
func (u *User) PayPunishment() error {
	if u.punishBalance == 0 {
		return fmt.Errorf("punishment balance already zero for user %s", u.id)
	}
	u.punishBalance--
	u.touch()
	return nil
}

func (u *User) touch() {
	u.updatedAt = time.Now().UTC()
	u.version++
}
