package usecase

import (
	"errors"

	"asset-registry/internal/data/entity"

	"github.com/google/uuid"
)

// Error kinds surfaced to handlers. The messages double as wire-level
// message codes.
var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrNotFound           = errors.New("no_data_found")
	ErrNotAuthenticated   = errors.New("user_not_found")
)

// ValidationError carries a field->message map for 400 responses.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "error_validation"
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Identity is the authenticated caller, resolved by the auth middleware and
// passed explicitly into every service call.
type Identity struct {
	UserID uuid.UUID
	Role   entity.Role
}

func (i Identity) IsAdministrator() bool {
	return i.Role.IsAdministrator()
}
