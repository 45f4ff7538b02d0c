// Package swap holds the shift-exchange aggregate: a peer-to-peer request to
// move one allocation from its owner to a substitute, resolved by an
// operator, plus the debt entries such exchanges leave behind.
package swap

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	vo "escala/internal/domain/swap/valueobjects"
	apperrors "escala/internal/shared/errors"
)

// Swap is a pending-then-resolved exchange request. Approve and Reject guard
// against terminal states; resolving an already-resolved swap is an
// invalid-state error, never a silent success.
type Swap struct {
	id           string
	requesterID  string
	substituteID string
	allocationID string
	status       vo.Status
	reason       string
	responderID  string
	responseNote string
	version      int
	createdAt    time.Time
	respondedAt  *time.Time
}

func NewSwap(requesterID, substituteID, allocationID, reason string) (*Swap, error) {
	if len(requesterID) == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}
	if len(substituteID) == 0 {
		return nil, fmt.Errorf("substitute ID is required")
	}
	if requesterID == substituteID {
		return nil, apperrors.NewSelfSwapError("requester and substitute must differ")
	}
	if len(allocationID) == 0 {
		return nil, fmt.Errorf("allocation ID is required")
	}
	if len(reason) == 0 {
		return nil, fmt.Errorf("reason is required")
	}

	return &Swap{
		id:           uuid.NewString(),
		requesterID:  requesterID,
		substituteID: substituteID,
		allocationID: allocationID,
		status:       vo.StatusPending,
		reason:       reason,
		version:      1,
		createdAt:    time.Now().UTC(),
	}, nil
}

func ReconstructSwap(
	id string,
	requesterID string,
	substituteID string,
	allocationID string,
	status vo.Status,
	reason string,
	responderID string,
	responseNote string,
	version int,
	createdAt time.Time,
	respondedAt *time.Time,
) (*Swap, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("swap ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid swap status")
	}

	return &Swap{
		id:           id,
		requesterID:  requesterID,
		substituteID: substituteID,
		allocationID: allocationID,
		status:       status,
		reason:       reason,
		responderID:  responderID,
		responseNote: responseNote,
		version:      version,
		createdAt:    createdAt,
		respondedAt:  respondedAt,
	}, nil
}

func (s *Swap) ID() string {
	return s.id
}

func (s *Swap) RequesterID() string {
	return s.requesterID
}

func (s *Swap) SubstituteID() string {
	return s.substituteID
}

func (s *Swap) AllocationID() string {
	return s.allocationID
}

func (s *Swap) Status() vo.Status {
	return s.status
}

func (s *Swap) Reason() string {
	return s.reason
}

func (s *Swap) ResponderID() string {
	return s.responderID
}

func (s *Swap) ResponseNote() string {
	return s.responseNote
}

func (s *Swap) Version() int {
	return s.version
}

func (s *Swap) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Swap) RespondedAt() *time.Time {
	return s.respondedAt
}

// Approve marks the swap approved and stamps the responder. The caller is
// responsible for having re-validated the substitute and transferred the
// allocation in the same transaction.
func (s *Swap) Approve(responderID string) error {
	if err := s.ensurePending(); err != nil {
		return err
	}
	if len(responderID) == 0 {
		return fmt.Errorf("responder ID is required")
	}
	s.status = vo.StatusApproved
	s.resolve(responderID, "")
	return nil
}

// Reject marks the swap rejected with an optional note.
func (s *Swap) Reject(responderID, note string) error {
	if err := s.ensurePending(); err != nil {
		return err
	}
	if len(responderID) == 0 {
		return fmt.Errorf("responder ID is required")
	}
	s.status = vo.StatusRejected
	s.resolve(responderID, note)
	return nil
}

func (s *Swap) ensurePending() error {
	if !s.status.IsPending() {
		return apperrors.NewInvalidStateError(
			fmt.Sprintf("swap %s is already %s", s.id, s.status))
	}
	return nil
}

func (s *Swap) resolve(responderID, note string) {
	now := time.Now().UTC()
	s.responderID = responderID
	s.responseNote = note
	s.respondedAt = &now
	s.version++
}
