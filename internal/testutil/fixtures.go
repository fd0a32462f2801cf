package testutil

import (
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// FakeUser builds a user with random identity fields
func FakeUser() *domain.User {
	name := gofakeit.Name()
	return &domain.User{
		ID:      uuid.New(),
		Auth0ID: "auth0|" + gofakeit.UUID(),
		Email:   gofakeit.Email(),
		Name:    &name,
	}
}

// FakeAmount returns a random two-decimal amount between min and max
func FakeAmount(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(gofakeit.Float64Range(min, max)).Round(2)
}

// FakeExpense builds a non-deleted expense for owner on date
func FakeExpense(ownerID uuid.UUID, date domain.Date, amount decimal.Decimal) *domain.Transaction {
	return &domain.Transaction{
		OwnerID:       ownerID,
		Type:          domain.TransactionTypeExpense,
		Amount:        amount,
		Description:   gofakeit.Sentence(3),
		Date:          date,
		PaymentMethod: domain.PaymentMethodCash,
	}
}

// FakeCategory builds an expense category for owner
func FakeCategory(ownerID uuid.UUID, name, color string) *domain.Category {
	icon := "🏷️"
	return &domain.Category{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Name:    name,
		Icon:    &icon,
		Color:   color,
		Type:    domain.CategoryTypeExpense,
	}
}

// FakeRecurring builds an active recurring expense starting and due on start
func FakeRecurring(ownerID uuid.UUID, amount decimal.Decimal, freq domain.Frequency, start domain.Date) *domain.RecurringExpense {
	return &domain.RecurringExpense{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Name:          gofakeit.Company(),
		Amount:        amount,
		Frequency:     freq,
		PaymentMethod: domain.PaymentMethodBankTransfer,
		StartDate:     start,
		NextDueDate:   start,
		IsActive:      true,
	}
}
