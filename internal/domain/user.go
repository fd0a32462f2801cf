package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User represents the owner of every scoped entity
type User struct {
	ID        uuid.UUID `json:"id"`
	Auth0ID   string    `json:"auth0Id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserRepository defines the interface for user persistence operations
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByAuth0ID(ctx context.Context, auth0ID string) (*User, error)
	// CreateOrGetByAuth0ID returns the user and whether it was created by this call
	CreateOrGetByAuth0ID(ctx context.Context, auth0ID, email string, name *string) (*User, bool, error)
}
