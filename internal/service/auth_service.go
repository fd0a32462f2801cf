package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// AuthService handles authentication-related business logic
type AuthService struct {
	userRepo     domain.UserRepository
	categoryRepo domain.CategoryRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo domain.UserRepository, categoryRepo domain.CategoryRepository) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
	}
}

// AuthResult represents the result of an authentication operation
type AuthResult struct {
	User      *domain.User `json:"user"`
	IsNewUser bool         `json:"isNewUser"`
}

// AuthenticateUser handles the flow after the Auth0 callback.
// New users get the default categories seeded.
func (s *AuthService) AuthenticateUser(ctx context.Context, auth0ID, email string, name *string) (*AuthResult, error) {
	user, created, err := s.userRepo.CreateOrGetByAuth0ID(ctx, auth0ID, email, name)
	if err != nil {
		log.Error().Err(err).Str("auth0_id", auth0ID).Msg("Failed to create or get user")
		return nil, err
	}

	if created {
		if err := s.categoryRepo.CreateDefaults(ctx, user.ID, domain.DefaultCategories()); err != nil {
			log.Error().Err(err).Str("owner_id", user.ID.String()).Msg("Failed to seed default categories")
			return nil, err
		}
		log.Info().Str("owner_id", user.ID.String()).Msg("Created new user with default categories")
		return &AuthResult{User: user, IsNewUser: true}, nil
	}

	log.Info().Str("owner_id", user.ID.String()).Msg("Existing user authenticated")
	return &AuthResult{User: user}, nil
}

// GetUserByID retrieves a user by their ID
func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if id == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	return s.userRepo.GetByID(ctx, id)
}

// OwnerIDByAuth0ID resolves the owner id of an Auth0 subject
func (s *AuthService) OwnerIDByAuth0ID(ctx context.Context, auth0ID string) (uuid.UUID, error) {
	user, err := s.userRepo.GetByAuth0ID(ctx, auth0ID)
	if err != nil {
		return uuid.Nil, err
	}
	return user.ID, nil
}
