package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/ledgerly/ledgerly-backend/internal/websocket"
	"github.com/rs/zerolog/log"
)

// IncomeSourceService handles expected monthly income
type IncomeSourceService struct {
	incomeRepo     domain.IncomeSourceRepository
	eventPublisher websocket.EventPublisher
}

// NewIncomeSourceService creates a new IncomeSourceService
func NewIncomeSourceService(incomeRepo domain.IncomeSourceRepository) *IncomeSourceService {
	return &IncomeSourceService{incomeRepo: incomeRepo}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *IncomeSourceService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *IncomeSourceService) publishEvent(ownerID uuid.UUID, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(ownerID, event)
	}
}

// List returns the income sources of one month, newest first
func (s *IncomeSourceService) List(ctx context.Context, ownerID uuid.UUID, month, year int) ([]*domain.IncomeSource, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if month < 1 || month > 12 {
		return nil, domain.NewValidationError("month", "Month must be between 1 and 12")
	}

	sources, err := s.incomeRepo.ListByMonth(ctx, ownerID, month, year)
	if err != nil {
		log.Error().Err(err).Str("owner_id", ownerID.String()).Msg("Failed to list income sources")
		return nil, err
	}
	if sources == nil {
		sources = make([]*domain.IncomeSource, 0)
	}
	return sources, nil
}

// Create records an expected income
func (s *IncomeSourceService) Create(ctx context.Context, ownerID uuid.UUID, input domain.IncomeSourceInput) (*domain.IncomeSource, error) {
	source, err := fromIncomeInput(ownerID, input)
	if err != nil {
		return nil, err
	}

	created, err := s.incomeRepo.Create(ctx, source)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ownerID, websocket.IncomeSourceCreated(created))
	return created, nil
}

// Update replaces the editable fields. An already received source keeps its original received time.
func (s *IncomeSourceService) Update(ctx context.Context, ownerID, id uuid.UUID, input domain.IncomeSourceInput) (*domain.IncomeSource, error) {
	source, err := fromIncomeInput(ownerID, input)
	if err != nil {
		return nil, err
	}
	source.ID = id

	updated, err := s.incomeRepo.Update(ctx, source)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ownerID, websocket.IncomeSourceUpdated(updated))
	return updated, nil
}

// ToggleReceived marks the source received (stamping the time) or pending (clearing it)
func (s *IncomeSourceService) ToggleReceived(ctx context.Context, ownerID, id uuid.UUID, received bool) (*domain.IncomeSource, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	source, err := s.incomeRepo.SetReceived(ctx, ownerID, id, received)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ownerID, websocket.IncomeSourceToggled(source))
	return source, nil
}

// Delete removes an income source
func (s *IncomeSourceService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}
	if err := s.incomeRepo.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	s.publishEvent(ownerID, websocket.IncomeSourceDeleted(id.String()))
	return nil
}

func fromIncomeInput(ownerID uuid.UUID, input domain.IncomeSourceInput) (*domain.IncomeSource, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	// amounts are stored in cents; validate the stored value
	input.Amount = input.Amount.Round(2)
	if err := validate(&input); err != nil {
		return nil, err
	}

	return &domain.IncomeSource{
		OwnerID:    ownerID,
		Name:       input.Name,
		SourceType: domain.IncomeSourceType(input.SourceType),
		Amount:     input.Amount,
		Month:      input.Month,
		Year:       input.Year,
		Note:       optionalString(input.Note),
		IsReceived: input.IsReceived,
	}, nil
}
