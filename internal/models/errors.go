package models

import "errors"

// ValidationError is a coded error for rejected configuration or data.
type ValidationError struct {
	Code    string
	Message string
}

// NewValidationError creates a coded validation error.
func NewValidationError(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Code + ": " + e.Message
}

// Custom errors
var (
	ErrHorseNameRequired = errors.New("horse name is required")
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateKey      = errors.New("duplicate key violation")
	ErrInvalidID         = errors.New("invalid ID format")
	ErrCareerComplete    = errors.New("career is complete")
	ErrRaceCompleted     = errors.New("race already completed")
)
