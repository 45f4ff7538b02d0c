// Package errors provides application-level error types and utilities.
// It defines the engine's typed errors: ineligible (with structured reasons),
// conflict, not-owner, self-swap, invalid-state, not-found, validation and
// storage errors.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeIneligible   ErrorType = "ineligible"
	ErrorTypeConflict     ErrorType = "conflict"
	ErrorTypeNotOwner     ErrorType = "not_owner"
	ErrorTypeSelfSwap     ErrorType = "self_swap"
	ErrorTypeInvalidState ErrorType = "invalid_state"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeValidation   ErrorType = "validation_error"
	ErrorTypeStorage      ErrorType = "storage_error"
)

// AppError represents an application error with additional context.
// Reasons is populated for ineligibility errors so callers can explain
// the rejection instead of receiving a bare boolean.
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Reasons []string  `json:"reasons,omitempty"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if len(e.Reasons) > 0 {
		return fmt.Sprintf("%s: %s [%s]", e.Type, e.Message, strings.Join(e.Reasons, "; "))
	}
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// NewIneligibleError creates an ineligibility error carrying the resolver's reasons
func NewIneligibleError(message string, reasons []string) *AppError {
	return &AppError{
		Type:    ErrorTypeIneligible,
		Message: message,
		Reasons: reasons,
	}
}

// NewConflictError creates a new conflict error
func NewConflictError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeConflict,
		Message: message,
		Details: firstDetail(details),
	}
}

// NewNotOwnerError creates a new not-owner error
func NewNotOwnerError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotOwner,
		Message: message,
		Details: firstDetail(details),
	}
}

// NewSelfSwapError creates a new self-swap error
func NewSelfSwapError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeSelfSwap,
		Message: message,
	}
}

// NewInvalidStateError creates a new invalid-state error
func NewInvalidStateError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidState,
		Message: message,
		Details: firstDetail(details),
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
		Details: firstDetail(details),
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Details: firstDetail(details),
	}
}

// NewStorageError creates a new storage error
func NewStorageError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Message: message,
		Details: firstDetail(details),
	}
}

func firstDetail(details []string) string {
	if len(details) > 0 {
		return details[0]
	}
	return ""
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

// IsIneligibleError checks if the error is an ineligibility error
func IsIneligibleError(err error) bool {
	return isType(err, ErrorTypeIneligible)
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	return isType(err, ErrorTypeConflict)
}

// IsNotOwnerError checks if the error is a not-owner error
func IsNotOwnerError(err error) bool {
	return isType(err, ErrorTypeNotOwner)
}

// IsSelfSwapError checks if the error is a self-swap error
func IsSelfSwapError(err error) bool {
	return isType(err, ErrorTypeSelfSwap)
}

// IsInvalidStateError checks if the error is an invalid-state error
func IsInvalidStateError(err error) bool {
	return isType(err, ErrorTypeInvalidState)
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsStorageError checks if the error is a storage error
func IsStorageError(err error) bool {
	return isType(err, ErrorTypeStorage)
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// MySQL duplicate entry error
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// SQLite unique violation
	if strings.Contains(errStr, "UNIQUE constraint failed") {
		return true
	}
	// PostgreSQL unique violation
	if strings.Contains(errStr, "unique constraint") || strings.Contains(errStr, "violates unique constraint") {
		return true
	}
	return false
}
