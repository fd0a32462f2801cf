package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestTransactionTypeConstants(t *testing.T) {
	tests := []struct {
		name     string
		txType   TransactionType
		expected string
	}{
		{"income type", TransactionTypeIncome, "income"},
		{"expense type", TransactionTypeExpense, "expense"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if string(tt.txType) != tt.expected {
				t.Errorf("TransactionType constant %s = %s, want %s", tt.name, tt.txType, tt.expected)
			}
		})
	}
}

func TestPaymentMethodValidity(t *testing.T) {
	valid := []PaymentMethod{
		PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodDebitCard,
		PaymentMethodBankTransfer, PaymentMethodUPI, PaymentMethodWallet, PaymentMethodOther,
	}
	for _, m := range valid {
		if !m.IsValid() {
			t.Errorf("PaymentMethod %s should be valid", m)
		}
	}
	if PaymentMethod("cheque").IsValid() {
		t.Error("PaymentMethod cheque should be invalid")
	}
	if PaymentMethodUPI.Label() != "UPI" {
		t.Errorf("Label = %s, want UPI", PaymentMethodUPI.Label())
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	type payload struct {
		Date Date  `json:"date"`
		End  *Date `json:"end"`
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"date":"2026-02-28","end":null}`), &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if p.Date.String() != "2026-02-28" || p.End != nil {
		t.Errorf("unexpected decode: %+v", p)
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != `{"date":"2026-02-28","end":null}` {
		t.Errorf("Marshal = %s", out)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	if _, err := ParseDate("28/02/2026"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestDaysBetween(t *testing.T) {
	a := NewDate(2026, time.February, 27)
	b := NewDate(2026, time.March, 2)
	if got := DaysBetween(a, b); got != 3 {
		t.Errorf("DaysBetween = %d, want 3", got)
	}
	if got := DaysBetween(b, a); got != -3 {
		t.Errorf("DaysBetween = %d, want -3", got)
	}
}

func TestErrorTaxonomy(t *testing.T) {
	if !errors.Is(ErrCategoryNotFound, ErrNotFound) {
		t.Error("ErrCategoryNotFound should wrap ErrNotFound")
	}
	if !errors.Is(NewValidationError("name", "Name is required"), ErrValidation) {
		t.Error("ValidationError should wrap ErrValidation")
	}

	var refErr error = &ReferenceError{Err: ErrCategoryInUse, Count: 2, Message: "in use"}
	if !errors.Is(refErr, ErrReferenced) {
		t.Error("ReferenceError should wrap ErrReferenced")
	}
	var target *ReferenceError
	if !errors.As(refErr, &target) || target.Count != 2 {
		t.Error("errors.As should expose the reference count")
	}
}
