package service

import (
	"github.com/google/uuid"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/ledgerly/ledgerly-backend/internal/validation"
)

// requireOwner rejects requests that carry no resolved owner
func requireOwner(ownerID uuid.UUID) error {
	if ownerID == uuid.Nil {
		return domain.ErrUnauthorized
	}
	return nil
}

// validate runs the shared validator over an input struct pointer
func validate(input interface{}) error {
	return validation.Default().Validate(input)
}

// parseOptionalUUID returns nil for an empty string. Callers validate the format first.
func parseOptionalUUID(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

// optionalString returns nil for an empty string
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
