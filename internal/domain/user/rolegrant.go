package user

import (
	"fmt"
	"strings"
	"time"
)

// RoleGrant gives a user a role either permanently or within a validity
// window. Role names compare case-insensitively, matching the original
// roster's collation.
type RoleGrant struct {
	userID    string
	role      string
	permanent bool
	validFrom time.Time
	validTo   time.Time
}

func NewPermanentRoleGrant(userID, role string) (RoleGrant, error) {
	if len(userID) == 0 {
		return RoleGrant{}, fmt.Errorf("user ID is required")
	}
	if len(strings.TrimSpace(role)) == 0 {
		return RoleGrant{}, fmt.Errorf("role name is required")
	}
	return RoleGrant{
		userID:    userID,
		role:      role,
		permanent: true,
	}, nil
}

func NewTemporaryRoleGrant(userID, role string, validFrom, validTo time.Time) (RoleGrant, error) {
	if len(userID) == 0 {
		return RoleGrant{}, fmt.Errorf("user ID is required")
	}
	if len(strings.TrimSpace(role)) == 0 {
		return RoleGrant{}, fmt.Errorf("role name is required")
	}
	if !validTo.After(validFrom) {
		return RoleGrant{}, fmt.Errorf("validity window end must be after start")
	}
	return RoleGrant{
		userID:    userID,
		role:      role,
		validFrom: validFrom,
		validTo:   validTo,
	}, nil
}

func (g RoleGrant) UserID() string {
	return g.userID
}

func (g RoleGrant) Role() string {
	return g.role
}

func (g RoleGrant) IsPermanent() bool {
	return g.permanent
}

func (g RoleGrant) ValidFrom() time.Time {
	return g.validFrom
}

func (g RoleGrant) ValidTo() time.Time {
	return g.validTo
}

// ActiveAt reports whether the grant confers its role at instant t.
// Temporary windows are half-open: [validFrom, validTo).
func (g RoleGrant) ActiveAt(t time.Time) bool {
	if g.permanent {
		return true
	}
	return !t.Before(g.validFrom) && t.Before(g.validTo)
}

// RoleSet is a user's effective role set at some instant, computed lazily
// from the grants rather than kept as a denormalized aggregate.
type RoleSet []RoleGrant

// EffectiveAt filters the set down to grants active at t.
func (s RoleSet) EffectiveAt(t time.Time) RoleSet {
	var active RoleSet
	for _, g := range s {
		if g.ActiveAt(t) {
			active = append(active, g)
		}
	}
	return active
}

// Contains reports whether any grant active at t confers the named role.
func (s RoleSet) Contains(role string, t time.Time) bool {
	for _, g := range s {
		if g.ActiveAt(t) && strings.EqualFold(g.role, role) {
			return true
		}
	}
	return false
}
