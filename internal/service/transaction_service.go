package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/ledgerly/ledgerly-backend/internal/websocket"
	"github.com/rs/zerolog/log"
)

// TransactionService handles transaction-related business logic
type TransactionService struct {
	transactionRepo domain.TransactionRepository
	categoryRepo    domain.CategoryRepository
	eventPublisher  websocket.EventPublisher
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo domain.TransactionRepository, categoryRepo domain.CategoryRepository) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *TransactionService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *TransactionService) publishEvent(ownerID uuid.UUID, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(ownerID, event)
	}
}

// List returns one page (1-based) of the owner's non-deleted transactions
func (s *TransactionService) List(ctx context.Context, ownerID uuid.UUID, filters domain.TransactionFilters, page int) (*domain.TransactionPage, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}

	items, total, err := s.transactionRepo.List(ctx, ownerID, filters, domain.TransactionPageSize, (page-1)*domain.TransactionPageSize)
	if err != nil {
		log.Error().Err(err).Str("owner_id", ownerID.String()).Msg("Failed to list transactions")
		return nil, err
	}
	if items == nil {
		items = make([]*domain.Transaction, 0)
	}

	return &domain.TransactionPage{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: domain.TransactionPageSize,
	}, nil
}

// ListAll returns every non-deleted transaction matching filters, for export
func (s *TransactionService) ListAll(ctx context.Context, ownerID uuid.UUID, filters domain.TransactionFilters) ([]*domain.Transaction, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	all := make([]*domain.Transaction, 0)
	for offset := 0; ; offset += domain.TransactionPageSize {
		items, total, err := s.transactionRepo.List(ctx, ownerID, filters, domain.TransactionPageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if len(items) == 0 || int64(len(all)) >= total {
			return all, nil
		}
	}
}

// GetByID retrieves a non-deleted transaction
func (s *TransactionService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Transaction, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	return s.transactionRepo.GetByID(ctx, ownerID, id)
}

// Create records a new transaction
func (s *TransactionService) Create(ctx context.Context, ownerID uuid.UUID, input domain.TransactionInput) (*domain.Transaction, error) {
	tx, err := s.fromInput(ctx, ownerID, input)
	if err != nil {
		return nil, err
	}

	created, err := s.transactionRepo.Create(ctx, tx)
	if err != nil {
		log.Error().Err(err).Str("owner_id", ownerID.String()).Msg("Failed to create transaction")
		return nil, err
	}

	s.publishEvent(ownerID, websocket.TransactionCreated(created))
	return created, nil
}

// Update replaces the editable fields of a transaction
func (s *TransactionService) Update(ctx context.Context, ownerID, id uuid.UUID, input domain.TransactionInput) (*domain.Transaction, error) {
	tx, err := s.fromInput(ctx, ownerID, input)
	if err != nil {
		return nil, err
	}
	tx.ID = id

	updated, err := s.transactionRepo.Update(ctx, tx)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ownerID, websocket.TransactionUpdated(updated))
	return updated, nil
}

// Delete soft-deletes a transaction
func (s *TransactionService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}
	if err := s.transactionRepo.SoftDelete(ctx, ownerID, id); err != nil {
		return err
	}

	s.publishEvent(ownerID, websocket.TransactionDeleted(id.String()))
	return nil
}

func (s *TransactionService) fromInput(ctx context.Context, ownerID uuid.UUID, input domain.TransactionInput) (*domain.Transaction, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	// amounts are stored in cents; validate the stored value
	input.Amount = input.Amount.Round(2)
	if err := validate(&input); err != nil {
		return nil, err
	}

	date, err := domain.ParseDate(input.Date)
	if err != nil {
		return nil, domain.NewValidationError("date", "Date must be a valid date (YYYY-MM-DD)")
	}

	txType := domain.TransactionType(input.Type)
	categoryID := parseOptionalUUID(input.CategoryID)
	if categoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, ownerID, *categoryID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.NewValidationError("categoryId", "Invalid category")
			}
			return nil, err
		}
		if string(category.Type) != string(txType) {
			return nil, domain.NewValidationError("categoryId", "Category type does not match transaction type")
		}
	}

	return &domain.Transaction{
		OwnerID:       ownerID,
		CategoryID:    categoryID,
		Type:          txType,
		Amount:        input.Amount,
		Description:   input.Description,
		Date:          date,
		PaymentMethod: domain.PaymentMethod(input.PaymentMethod),
		Note:          optionalString(input.Note),
	}, nil
}
