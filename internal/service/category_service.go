package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/ledgerly/ledgerly-backend/internal/websocket"
	"github.com/rs/zerolog/log"
)

// CategoryService handles category business logic
type CategoryService struct {
	categoryRepo   domain.CategoryRepository
	eventPublisher websocket.EventPublisher
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo domain.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *CategoryService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *CategoryService) publishEvent(ownerID uuid.UUID, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(ownerID, event)
	}
}

// List returns the owner's categories split by type, default-first then by name
func (s *CategoryService) List(ctx context.Context, ownerID uuid.UUID) (*domain.CategoryGroups, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	groups := &domain.CategoryGroups{
		Expense: make([]*domain.Category, 0),
		Income:  make([]*domain.Category, 0),
	}
	for _, c := range categories {
		switch c.Type {
		case domain.CategoryTypeExpense:
			groups.Expense = append(groups.Expense, c)
		case domain.CategoryTypeIncome:
			groups.Income = append(groups.Income, c)
		}
	}
	return groups, nil
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, ownerID uuid.UUID, input domain.CategoryInput) (*domain.Category, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if err := validate(&input); err != nil {
		return nil, err
	}

	icon := input.Icon
	category, err := s.categoryRepo.Create(ctx, &domain.Category{
		OwnerID: ownerID,
		Name:    input.Name,
		Icon:    &icon,
		Color:   input.Color,
		Type:    domain.CategoryType(input.Type),
	})
	if err != nil {
		return nil, conflictMessage(err, input)
	}

	s.publishEvent(ownerID, websocket.CategoryCreated(category))
	return category, nil
}

// Update replaces the editable fields of a category
func (s *CategoryService) Update(ctx context.Context, ownerID, id uuid.UUID, input domain.CategoryInput) (*domain.Category, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if err := validate(&input); err != nil {
		return nil, err
	}

	icon := input.Icon
	category, err := s.categoryRepo.Update(ctx, &domain.Category{
		ID:      id,
		OwnerID: ownerID,
		Name:    input.Name,
		Icon:    &icon,
		Color:   input.Color,
		Type:    domain.CategoryType(input.Type),
	})
	if err != nil {
		return nil, conflictMessage(err, input)
	}

	s.publishEvent(ownerID, websocket.CategoryUpdated(category))
	return category, nil
}

// CanDeleteResponse contains information about whether a category can be safely deleted
type CanDeleteResponse struct {
	CanDelete        bool  `json:"canDelete"`
	TransactionCount int64 `json:"transactionCount"`
}

// CanDelete reports how many active transactions still reference the category
func (s *CategoryService) CanDelete(ctx context.Context, ownerID, id uuid.UUID) (*CanDeleteResponse, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if _, err := s.categoryRepo.GetByID(ctx, ownerID, id); err != nil {
		return nil, err
	}

	count, err := s.categoryRepo.CountActiveTransactions(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return &CanDeleteResponse{CanDelete: count == 0, TransactionCount: count}, nil
}

// Delete removes a category that no active transaction references.
// Recurring expenses pointing at it fall back to uncategorized.
func (s *CategoryService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}
	if _, err := s.categoryRepo.GetByID(ctx, ownerID, id); err != nil {
		return err
	}

	count, err := s.categoryRepo.CountActiveTransactions(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return referenceError(count)
	}

	if err := s.categoryRepo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, domain.ErrCategoryInUse) {
			log.Warn().Str("category_id", id.String()).Msg("Category gained references before delete")
			return referenceError(0)
		}
		return err
	}

	s.publishEvent(ownerID, websocket.CategoryDeleted(id.String()))
	return nil
}

func conflictMessage(err error, input domain.CategoryInput) error {
	if !errors.Is(err, domain.ErrCategoryAlreadyExists) {
		return err
	}
	return &domain.ConflictError{
		Err:     err,
		Message: fmt.Sprintf("A %s category named %q already exists.", input.Type, input.Name),
	}
}

func referenceError(count int64) error {
	msg := "This category still has transactions. Reassign or delete them first."
	if count > 0 {
		msg = fmt.Sprintf("This category has %d %s. Reassign or delete them first.", count, domain.Plural(count, "transaction"))
	}
	return &domain.ReferenceError{Err: domain.ErrCategoryInUse, Count: count, Message: msg}
}
