package swap

import "context"

// Repository provides access to swap requests.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Swap, error)
	ListPending(ctx context.Context) ([]*Swap, error)
	Save(ctx context.Context, s *Swap) error
	// Update persists a status transition under a version guard; a stale
	// version surfaces as a conflict so a losing concurrent approver can
	// refetch and retry.
	Update(ctx context.Context, s *Swap) error
}

// DebtRepository provides access to the debt sub-ledger.
type DebtRepository interface {
	GetByID(ctx context.Context, id string) (*Debt, error)
	ListByDebtor(ctx context.Context, debtorID string) ([]*Debt, error)
	ListPending(ctx context.Context) ([]*Debt, error)
	Save(ctx context.Context, d *Debt) error
	Update(ctx context.Context, d *Debt) error
}
