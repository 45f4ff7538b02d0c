package user

import "context"

// Repository provides access to users.
type Repository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Save(ctx context.Context, u *User) error
	// Update persists counter and balance changes under an optimistic
	// version guard; a stale version surfaces as a conflict.
	Update(ctx context.Context, u *User) error
	// Delete removes the user. Role grants, unavailability windows and
	// allocations cascade at the storage layer; this is destructive,
	// not a soft delete.
	Delete(ctx context.Context, id string) error
}

// RoleGrantRepository provides access to permanent and temporary role grants.
type RoleGrantRepository interface {
	ListByUser(ctx context.Context, userID string) (RoleSet, error)
	SavePermanent(ctx context.Context, grant RoleGrant) error
	SaveTemporary(ctx context.Context, grant RoleGrant) error
}
