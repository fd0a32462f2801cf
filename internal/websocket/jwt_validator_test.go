package websocket

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type mockOwnerLookup struct {
	ownerID uuid.UUID
	err     error
}

func (m *mockOwnerLookup) OwnerIDByAuth0ID(ctx context.Context, auth0ID string) (uuid.UUID, error) {
	return m.ownerID, m.err
}

func TestOwnerLookup_Interface(t *testing.T) {
	var _ OwnerLookup = (*mockOwnerLookup)(nil)
}

func TestValidatorErrors(t *testing.T) {
	assert.Equal(t, "owner not found", ErrOwnerNotFound.Error())
	assert.Equal(t, "invalid token", ErrInvalidToken.Error())
}

func TestCustomClaims_Validate(t *testing.T) {
	claims := &CustomClaims{}
	assert.NoError(t, claims.Validate(context.Background()))
}

func TestNewAuth0JWTValidator_Success(t *testing.T) {
	lookup := &mockOwnerLookup{ownerID: uuid.New()}

	v, err := NewAuth0JWTValidator("test.auth0.com", "https://api.ledgerly.app", lookup)
	assert.NoError(t, err)
	assert.NotNil(t, v)
	assert.NotNil(t, v.validator)
	assert.Equal(t, lookup, v.ownerLookup)
}

func TestAuth0JWTValidator_ValidateToken_InvalidJWT(t *testing.T) {
	lookup := &mockOwnerLookup{ownerID: uuid.New()}

	v, err := NewAuth0JWTValidator("test.auth0.com", "https://api.ledgerly.app", lookup)
	assert.NoError(t, err)

	ownerID, err := v.ValidateToken(context.Background(), "invalid-token")
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, ownerID)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}
