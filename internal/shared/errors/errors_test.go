package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIneligibleErrorCarriesReasons(t *testing.T) {
	err := NewIneligibleError("user not eligible", []string{"cohort mismatch", "unavailable"})

	assert.True(t, IsIneligibleError(err))
	assert.Contains(t, err.Error(), "cohort mismatch")
	assert.Contains(t, err.Error(), "unavailable")

	appErr := GetAppError(err)
	assert.Equal(t, []string{"cohort mismatch", "unavailable"}, appErr.Reasons)
}

func TestTypeCheckers(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		checker func(error) bool
	}{
		{"conflict", NewConflictError("already assigned"), IsConflictError},
		{"not owner", NewNotOwnerError("allocation belongs to another user"), IsNotOwnerError},
		{"self swap", NewSelfSwapError("cannot swap with yourself"), IsSelfSwapError},
		{"invalid state", NewInvalidStateError("swap already resolved"), IsInvalidStateError},
		{"not found", NewNotFoundError("swap not found"), IsNotFoundError},
		{"validation", NewValidationError("user ID is required"), IsValidationError},
		{"storage", NewStorageError("transaction failed"), IsStorageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.checker(tt.err))
			assert.False(t, tt.checker(errors.New("plain error")))
		})
	}
}

func TestTypeCheckersUnwrap(t *testing.T) {
	wrapped := fmt.Errorf("approve swap: %w", NewConflictError("version mismatch"))
	assert.True(t, IsConflictError(wrapped))
	assert.False(t, IsInvalidStateError(wrapped))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(errors.New("Error 1062: Duplicate entry '123-2025-10-22' for key 'idx_allocations_user_date'")))
	assert.True(t, IsDuplicateError(errors.New("UNIQUE constraint failed: allocations.user_id, allocations.duty_date")))
	assert.False(t, IsDuplicateError(errors.New("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}
