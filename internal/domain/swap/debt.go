package swap

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "escala/internal/shared/errors"
)

// DebtStatus tracks whether a swap-originated obligation has been repaid.
type DebtStatus string

const (
	DebtPending DebtStatus = "pending"
	DebtPaid    DebtStatus = "paid"
)

func (s DebtStatus) IsValid() bool {
	return s == DebtPending || s == DebtPaid
}

// Debt records that the debtor owes the creditor a service after a swap
// moved a duty without immediate reciprocity. Debts are informational: they
// never block eligibility, only surface as outstanding balances.
type Debt struct {
	id         string
	debtorID   string
	creditorID string
	swapID     string
	status     DebtStatus
	createdAt  time.Time
	paidAt     *time.Time
}

func NewDebt(debtorID, creditorID, swapID string) (*Debt, error) {
	if len(debtorID) == 0 {
		return nil, fmt.Errorf("debtor ID is required")
	}
	if len(creditorID) == 0 {
		return nil, fmt.Errorf("creditor ID is required")
	}
	if debtorID == creditorID {
		return nil, fmt.Errorf("debtor and creditor must differ")
	}
	if len(swapID) == 0 {
		return nil, fmt.Errorf("swap ID is required")
	}

	return &Debt{
		id:         uuid.NewString(),
		debtorID:   debtorID,
		creditorID: creditorID,
		swapID:     swapID,
		status:     DebtPending,
		createdAt:  time.Now().UTC(),
	}, nil
}

func ReconstructDebt(
	id string,
	debtorID string,
	creditorID string,
	swapID string,
	status DebtStatus,
	createdAt time.Time,
	paidAt *time.Time,
) (*Debt, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("debt ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid debt status")
	}
	return &Debt{
		id:         id,
		debtorID:   debtorID,
		creditorID: creditorID,
		swapID:     swapID,
		status:     status,
		createdAt:  createdAt,
		paidAt:     paidAt,
	}, nil
}

func (d *Debt) ID() string {
	return d.id
}

func (d *Debt) DebtorID() string {
	return d.debtorID
}

func (d *Debt) CreditorID() string {
	return d.creditorID
}

func (d *Debt) SwapID() string {
	return d.swapID
}

func (d *Debt) Status() DebtStatus {
	return d.status
}

func (d *Debt) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Debt) PaidAt() *time.Time {
	return d.paidAt
}

// Settle marks the debt paid and stamps the payment time.
func (d *Debt) Settle() error {
	if d.status == DebtPaid {
		return apperrors.NewInvalidStateError(
			fmt.Sprintf("debt %s is already paid", d.id))
	}
	now := time.Now().UTC()
	d.status = DebtPaid
	d.paidAt = &now
	return nil
}
