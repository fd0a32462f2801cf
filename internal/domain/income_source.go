package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type IncomeSourceType string

const (
	IncomeSourceSalary     IncomeSourceType = "salary"
	IncomeSourceFreelance  IncomeSourceType = "freelance"
	IncomeSourceBusiness   IncomeSourceType = "business"
	IncomeSourceInvestment IncomeSourceType = "investment"
	IncomeSourceRental     IncomeSourceType = "rental"
	IncomeSourceGift       IncomeSourceType = "gift"
	IncomeSourceCreditCard IncomeSourceType = "credit_card"
	IncomeSourceOther      IncomeSourceType = "other"
)

var incomeSourceTypeLabels = map[IncomeSourceType]string{
	IncomeSourceSalary:     "Salary",
	IncomeSourceFreelance:  "Freelance",
	IncomeSourceBusiness:   "Business",
	IncomeSourceInvestment: "Investment",
	IncomeSourceRental:     "Rental",
	IncomeSourceGift:       "Gift",
	IncomeSourceCreditCard: "Credit Card",
	IncomeSourceOther:      "Other",
}

// IsValid reports whether t is a known income source type
func (t IncomeSourceType) IsValid() bool {
	_, ok := incomeSourceTypeLabels[t]
	return ok
}

// Label returns the display name of the income source type
func (t IncomeSourceType) Label() string {
	if label, ok := incomeSourceTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// IncomeSource is an expected income for one calendar month.
// ReceivedAt is set if and only if IsReceived is true.
type IncomeSource struct {
	ID         uuid.UUID        `json:"id"`
	OwnerID    uuid.UUID        `json:"ownerId"`
	Name       string           `json:"name"`
	SourceType IncomeSourceType `json:"sourceType"`
	Amount     decimal.Decimal  `json:"amount"`
	Month      int              `json:"month"`
	Year       int              `json:"year"`
	Note       *string          `json:"note"`
	IsReceived bool             `json:"isReceived"`
	ReceivedAt *time.Time       `json:"receivedAt"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// IncomeSourceInput is the user-editable part of an income source
type IncomeSourceInput struct {
	Name       string          `json:"name" validate:"required,max=100"`
	SourceType string          `json:"sourceType" validate:"required,income_source_type"`
	Amount     decimal.Decimal `json:"amount" validate:"gt=0,lte=99999999"`
	Month      int             `json:"month" validate:"min=1,max=12"`
	Year       int             `json:"year" validate:"min=2000,max=2100"`
	IsReceived bool            `json:"isReceived"`
	Note       string          `json:"note" validate:"omitempty,max=500"`
}

type IncomeSourceRepository interface {
	Create(ctx context.Context, source *IncomeSource) (*IncomeSource, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*IncomeSource, error)
	Update(ctx context.Context, source *IncomeSource) (*IncomeSource, error)
	SetReceived(ctx context.Context, ownerID, id uuid.UUID, received bool) (*IncomeSource, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	// ListByMonth returns the month's income sources, newest first
	ListByMonth(ctx context.Context, ownerID uuid.UUID, month, year int) ([]*IncomeSource, error)
	ListByYears(ctx context.Context, ownerID uuid.UUID, years []int) ([]*IncomeSource, error)
}
