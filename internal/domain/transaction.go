package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// TransactionPageSize is the number of rows returned per list page
const TransactionPageSize = 50

// MaxAmount is the largest amount accepted on any money field
var MaxAmount = decimal.NewFromInt(99_999_999)

type Transaction struct {
	ID                 uuid.UUID       `json:"id"`
	OwnerID            uuid.UUID       `json:"ownerId"`
	CategoryID         *uuid.UUID      `json:"categoryId"`
	RecurringExpenseID *uuid.UUID      `json:"recurringExpenseId"`
	Type               TransactionType `json:"type"`
	Amount             decimal.Decimal `json:"amount"`
	Description        string          `json:"description"`
	Date               Date            `json:"date"`
	PaymentMethod      PaymentMethod   `json:"paymentMethod"`
	Note               *string         `json:"note"`
	IsDeleted          bool            `json:"isDeleted"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`

	// Category is populated by queries that join categories
	Category *CategoryRef `json:"category,omitempty"`
}

// TransactionInput is the user-editable part of a transaction
type TransactionInput struct {
	Type          string          `json:"type" validate:"required,oneof=income expense"`
	Amount        decimal.Decimal `json:"amount" validate:"gt=0,lte=99999999"`
	Description   string          `json:"description" validate:"required,max=200"`
	CategoryID    string          `json:"categoryId" validate:"omitempty,uuid"`
	Date          string          `json:"date" validate:"required,datetime=2006-01-02"`
	PaymentMethod string          `json:"paymentMethod" validate:"required,payment_method"`
	Note          string          `json:"note" validate:"omitempty,max=500"`
}

// TransactionFilters narrows a transaction listing
type TransactionFilters struct {
	Search        string
	Type          TransactionType
	CategoryID    *uuid.UUID
	PaymentMethod PaymentMethod
	DateFrom      *Date
	DateTo        *Date
}

// TransactionPage is one page of a filtered listing with the unpaged total
type TransactionPage struct {
	Items    []*Transaction `json:"items"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}

// DatedAmount is the date+amount projection used by trend aggregation
type DatedAmount struct {
	Date   Date
	Amount decimal.Decimal
}

type TransactionRepository interface {
	Create(ctx context.Context, transaction *Transaction) (*Transaction, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*Transaction, error)
	Update(ctx context.Context, transaction *Transaction) (*Transaction, error)
	SoftDelete(ctx context.Context, ownerID, id uuid.UUID) error
	// List returns non-deleted transactions newest first, with the total matching count
	List(ctx context.Context, ownerID uuid.UUID, filters TransactionFilters, limit, offset int) ([]*Transaction, int64, error)

	ListExpenseAmountsSince(ctx context.Context, ownerID uuid.UUID, since Date) ([]DatedAmount, error)
	ListExpensesBetween(ctx context.Context, ownerID uuid.UUID, from, to Date) ([]*Transaction, error)
	ListRecentExpenses(ctx context.Context, ownerID uuid.UUID, limit int) ([]*Transaction, error)
}
