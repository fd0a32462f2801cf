package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/ledgerly/ledgerly-backend/internal/metrics"
	"github.com/ledgerly/ledgerly-backend/internal/websocket"
	"github.com/rs/zerolog/log"
)

// RecurringService handles recurring expense business logic and due-date advancement
type RecurringService struct {
	recurringRepo  domain.RecurringRepository
	categoryRepo   domain.CategoryRepository
	eventPublisher websocket.EventPublisher
}

// NewRecurringService creates a new RecurringService
func NewRecurringService(recurringRepo domain.RecurringRepository, categoryRepo domain.CategoryRepository) *RecurringService {
	return &RecurringService{
		recurringRepo: recurringRepo,
		categoryRepo:  categoryRepo,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *RecurringService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *RecurringService) publishEvent(ownerID uuid.UUID, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(ownerID, event)
	}
}

// RecurringList is the recurring page: every record with its due status plus the monthly summary
type RecurringList struct {
	Items   []domain.RecurringView  `json:"items"`
	Summary domain.RecurringSummary `json:"summary"`
}

// List returns the owner's recurring expenses, active first then soonest due
func (s *RecurringService) List(ctx context.Context, ownerID uuid.UUID, now time.Time) (*RecurringList, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	records, err := s.recurringRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		log.Error().Err(err).Str("owner_id", ownerID.String()).Msg("Failed to list recurring expenses")
		return nil, err
	}

	items := make([]domain.RecurringView, 0, len(records))
	for _, r := range records {
		items = append(items, domain.NewRecurringView(r, now))
	}
	return &RecurringList{Items: items, Summary: domain.SummarizeRecurring(records)}, nil
}

// MonthlyTotal returns the monthly-equivalent total of the active recurring expenses
func (s *RecurringService) MonthlyTotal(ctx context.Context, ownerID uuid.UUID) (domain.RecurringSummary, error) {
	if err := requireOwner(ownerID); err != nil {
		return domain.RecurringSummary{}, err
	}

	records, err := s.recurringRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return domain.RecurringSummary{}, err
	}
	return domain.SummarizeRecurring(records), nil
}

// GetByID retrieves a recurring expense
func (s *RecurringService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.RecurringExpense, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	return s.recurringRepo.GetByID(ctx, ownerID, id)
}

// Create creates a recurring expense whose first occurrence is its start date
func (s *RecurringService) Create(ctx context.Context, ownerID uuid.UUID, input domain.RecurringInput) (*domain.RecurringExpense, error) {
	rec, err := s.fromInput(ctx, ownerID, input)
	if err != nil {
		return nil, err
	}
	rec.NextDueDate = rec.StartDate
	rec.IsActive = input.IsActive == nil || *input.IsActive

	created, err := s.recurringRepo.Create(ctx, rec)
	if err != nil {
		log.Error().Err(err).Str("owner_id", ownerID.String()).Msg("Failed to create recurring expense")
		return nil, err
	}

	s.publishEvent(ownerID, websocket.RecurringCreated(created))
	return created, nil
}

// Update replaces the editable fields. The next due date is left as stored.
func (s *RecurringService) Update(ctx context.Context, ownerID, id uuid.UUID, input domain.RecurringInput) (*domain.RecurringExpense, error) {
	rec, err := s.fromInput(ctx, ownerID, input)
	if err != nil {
		return nil, err
	}

	existing, err := s.recurringRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	rec.ID = id
	rec.NextDueDate = existing.NextDueDate
	rec.IsActive = existing.IsActive
	if input.IsActive != nil {
		rec.IsActive = *input.IsActive
	}

	updated, err := s.recurringRepo.Update(ctx, rec)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ownerID, websocket.RecurringUpdated(updated))
	return updated, nil
}

// ToggleActive pauses or resumes a recurring expense
func (s *RecurringService) ToggleActive(ctx context.Context, ownerID, id uuid.UUID, active bool) (*domain.RecurringExpense, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	rec, err := s.recurringRepo.SetActive(ctx, ownerID, id, active)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ownerID, websocket.RecurringToggled(rec))
	return rec, nil
}

// Delete removes a recurring expense. Transactions it generated are kept and unlinked.
func (s *RecurringService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}
	if err := s.recurringRepo.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	s.publishEvent(ownerID, websocket.RecurringDeleted(id.String()))
	return nil
}

// AdvancePayload is the payload of a recurring.advanced event
type AdvancePayload struct {
	ID          uuid.UUID     `json:"id"`
	Occurrences []domain.Date `json:"occurrences"`
	NextDueDate domain.Date   `json:"nextDueDate"`
	IsActive    bool          `json:"isActive"`
}

// AdvanceResult summarizes one advancement run
type AdvanceResult struct {
	Due         int
	Advanced    int
	Skipped     int
	Occurrences int
	Errors      int
}

// AdvanceDue records every occurrence due on or before today as an expense
// transaction and moves each record's next due date past today. Records that
// another run already advanced are skipped.
func (s *RecurringService) AdvanceDue(ctx context.Context, today domain.Date) (*AdvanceResult, error) {
	due, err := s.recurringRepo.ListDue(ctx, today)
	if err != nil {
		metrics.RecurringRunsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	result := &AdvanceResult{Due: len(due)}
	for _, rec := range due {
		if err := ctx.Err(); err != nil {
			metrics.RecurringRunsTotal.WithLabelValues("cancelled").Inc()
			return result, err
		}

		recorded, applied, err := s.advanceOne(ctx, rec, today)
		switch {
		case err != nil:
			log.Error().Err(err).Str("recurring_id", rec.ID.String()).Msg("Failed to advance recurring expense")
			result.Errors++
		case !applied:
			result.Skipped++
		default:
			result.Advanced++
		}
		result.Occurrences += recorded
	}

	metrics.RecurringOccurrencesRecorded.Add(float64(result.Occurrences))
	if result.Errors > 0 {
		metrics.RecurringRunsTotal.WithLabelValues("partial").Inc()
	} else {
		metrics.RecurringRunsTotal.WithLabelValues("success").Inc()
	}
	return result, nil
}

// advanceOne applies advances for rec until it is no longer due. Catch-up is
// bounded per advance, so a long-missed record takes several rounds.
func (s *RecurringService) advanceOne(ctx context.Context, rec *domain.RecurringExpense, today domain.Date) (int, bool, error) {
	recorded := 0
	applied := false
	payload := AdvancePayload{ID: rec.ID, Occurrences: make([]domain.Date, 0)}

	for {
		adv := rec.AdvanceThrough(today)
		if !adv.Changed() {
			break
		}

		ok, err := s.recurringRepo.ApplyAdvance(ctx, adv)
		if err != nil {
			return recorded, applied, err
		}
		if !ok {
			break
		}

		applied = true
		recorded += len(adv.Occurrences)
		payload.Occurrences = append(payload.Occurrences, adv.Occurrences...)
		payload.NextDueDate = adv.NextDueDate
		payload.IsActive = adv.IsActive

		next := *rec
		next.NextDueDate = adv.NextDueDate
		next.IsActive = adv.IsActive
		rec = &next
		if !rec.IsActive || rec.NextDueDate.After(today) {
			break
		}
	}

	if applied {
		log.Info().
			Str("recurring_id", rec.ID.String()).
			Str("owner_id", rec.OwnerID.String()).
			Int("occurrences", recorded).
			Str("next_due_date", rec.NextDueDate.String()).
			Msg("Advanced recurring expense")
		s.publishEvent(rec.OwnerID, websocket.RecurringAdvanced(payload))
	}
	return recorded, applied, nil
}

func (s *RecurringService) fromInput(ctx context.Context, ownerID uuid.UUID, input domain.RecurringInput) (*domain.RecurringExpense, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	// amounts are stored in cents; validate the stored value
	input.Amount = input.Amount.Round(2)
	if err := validate(&input); err != nil {
		return nil, err
	}

	start, err := domain.ParseDate(input.StartDate)
	if err != nil {
		return nil, domain.NewValidationError("startDate", "Start date must be a valid date (YYYY-MM-DD)")
	}
	end, err := domain.DatePtr(input.EndDate)
	if err != nil {
		return nil, domain.NewValidationError("endDate", "End date must be a valid date (YYYY-MM-DD)")
	}
	if end != nil && end.Before(start) {
		return nil, domain.NewValidationError("endDate", "End date must be on or after the start date")
	}

	categoryID := parseOptionalUUID(input.CategoryID)
	if categoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, ownerID, *categoryID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.NewValidationError("categoryId", "Invalid category")
			}
			return nil, err
		}
		if category.Type != domain.CategoryTypeExpense {
			return nil, domain.NewValidationError("categoryId", "Recurring expenses need an expense category")
		}
	}

	return &domain.RecurringExpense{
		OwnerID:       ownerID,
		CategoryID:    categoryID,
		Name:          input.Name,
		Description:   optionalString(input.Description),
		Amount:        input.Amount,
		Frequency:     domain.Frequency(input.Frequency),
		PaymentMethod: domain.PaymentMethod(input.PaymentMethod),
		StartDate:     start,
		EndDate:       end,
	}, nil
}
