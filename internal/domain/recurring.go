package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerly/ledgerly-backend/internal/util"
	"github.com/shopspring/decimal"
)

type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiweekly  Frequency = "biweekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// Frequencies lists every supported recurrence period
var Frequencies = []Frequency{
	FrequencyDaily,
	FrequencyWeekly,
	FrequencyBiweekly,
	FrequencyMonthly,
	FrequencyQuarterly,
	FrequencyYearly,
}

// frequencySpec holds the monthly-equivalent ratio (occurrences per month as
// num/den) and the step between occurrences.
type frequencySpec struct {
	label  string
	num    int64
	den    int64
	days   int
	months int
}

var frequencySpecs = map[Frequency]frequencySpec{
	FrequencyDaily:     {label: "Daily", num: 30, den: 1, days: 1},
	FrequencyWeekly:    {label: "Weekly", num: 52, den: 12, days: 7},
	FrequencyBiweekly:  {label: "Bi-weekly", num: 26, den: 12, days: 14},
	FrequencyMonthly:   {label: "Monthly", num: 1, den: 1, months: 1},
	FrequencyQuarterly: {label: "Quarterly", num: 1, den: 3, months: 3},
	FrequencyYearly:    {label: "Yearly", num: 1, den: 12, months: 12},
}

// IsValid reports whether f is a supported frequency
func (f Frequency) IsValid() bool {
	_, ok := frequencySpecs[f]
	return ok
}

// Label returns the display name of the frequency
func (f Frequency) Label() string {
	if spec, ok := frequencySpecs[f]; ok {
		return spec.label
	}
	return string(f)
}

// MonthlyMultiplier converts one occurrence's amount into its monthly-equivalent
// contribution: daily 30, weekly 52/12, biweekly 26/12, monthly 1, quarterly 1/3, yearly 1/12.
func (f Frequency) MonthlyMultiplier() decimal.Decimal {
	spec, ok := frequencySpecs[f]
	if !ok {
		return decimal.Zero
	}
	return decimal.NewFromInt(spec.num).Div(decimal.NewFromInt(spec.den))
}

// MonthlyEquivalent returns amount × MonthlyMultiplier, multiplying before dividing
// so that exact ratios (1200 yearly → 100) stay exact.
func (f Frequency) MonthlyEquivalent(amount decimal.Decimal) decimal.Decimal {
	spec, ok := frequencySpecs[f]
	if !ok {
		return decimal.Zero
	}
	return amount.Mul(decimal.NewFromInt(spec.num)).Div(decimal.NewFromInt(spec.den))
}

// NextDueDate returns the occurrence following current. Month-based frequencies
// keep anchorDay (the start date's day) and clamp it to shorter months, so a
// schedule starting Jan 31 runs Feb 28, Mar 31, Apr 30.
func NextDueDate(f Frequency, current Date, anchorDay int) Date {
	spec, ok := frequencySpecs[f]
	if !ok {
		return current
	}
	if spec.days > 0 {
		return current.AddDays(spec.days)
	}

	first := time.Date(current.Year(), current.Month()+time.Month(spec.months), 1, 0, 0, 0, 0, time.UTC)
	return Date{util.ClampDay(first.Year(), first.Month(), anchorDay)}
}

// MaxCatchUpOccurrences bounds how many missed occurrences one advance records
const MaxCatchUpOccurrences = 400

type RecurringExpense struct {
	ID            uuid.UUID       `json:"id"`
	OwnerID       uuid.UUID       `json:"ownerId"`
	CategoryID    *uuid.UUID      `json:"categoryId"`
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Frequency     Frequency       `json:"frequency"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	StartDate     Date            `json:"startDate"`
	EndDate       *Date           `json:"endDate"`
	NextDueDate   Date            `json:"nextDueDate"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`

	// Category is populated by queries that join categories
	Category *CategoryRef `json:"category,omitempty"`
}

// MonthlyEquivalent returns this expense's contribution to a monthly total
func (r *RecurringExpense) MonthlyEquivalent() decimal.Decimal {
	return r.Frequency.MonthlyEquivalent(r.Amount)
}

// RecurringAdvance is the outcome of firing every occurrence due on or before a day
type RecurringAdvance struct {
	Recurring       *RecurringExpense
	PrevNextDueDate Date
	Occurrences     []Date
	NextDueDate     Date
	IsActive        bool
}

// Changed reports whether the advance modifies the stored record
func (a *RecurringAdvance) Changed() bool {
	return len(a.Occurrences) > 0 ||
		a.IsActive != a.Recurring.IsActive ||
		!a.NextDueDate.Equal(a.PrevNextDueDate)
}

// AdvanceThrough fires every occurrence due on or before today and computes the
// new next due date. The record is deactivated when the following occurrence
// would fall after EndDate; occurrences past EndDate are never fired.
// A paused record fires nothing: its next due date is only moved past today,
// so resuming it does not backfill the paused period.
func (r *RecurringExpense) AdvanceThrough(today Date) *RecurringAdvance {
	adv := &RecurringAdvance{
		Recurring:       r,
		PrevNextDueDate: r.NextDueDate,
		NextDueDate:     r.NextDueDate,
		IsActive:        r.IsActive,
	}

	anchor := r.StartDate.Day()
	if !r.IsActive {
		if !r.Frequency.IsValid() {
			return adv
		}
		for !adv.NextDueDate.After(today) {
			adv.NextDueDate = NextDueDate(r.Frequency, adv.NextDueDate, anchor)
		}
		return adv
	}

	for !adv.NextDueDate.After(today) && len(adv.Occurrences) < MaxCatchUpOccurrences {
		if r.EndDate != nil && adv.NextDueDate.After(*r.EndDate) {
			break
		}
		adv.Occurrences = append(adv.Occurrences, adv.NextDueDate)
		adv.NextDueDate = NextDueDate(r.Frequency, adv.NextDueDate, anchor)
	}

	if r.EndDate != nil && adv.NextDueDate.After(*r.EndDate) {
		adv.IsActive = false
	}
	return adv
}

// RecurringInput is the user-editable part of a recurring expense
type RecurringInput struct {
	Name          string          `json:"name" validate:"required,max=200"`
	Description   string          `json:"description" validate:"omitempty,max=500"`
	CategoryID    string          `json:"categoryId" validate:"omitempty,uuid"`
	Amount        decimal.Decimal `json:"amount" validate:"gt=0,lte=99999999"`
	Frequency     string          `json:"frequency" validate:"required,frequency"`
	PaymentMethod string          `json:"paymentMethod" validate:"required,payment_method"`
	StartDate     string          `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate       string          `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	// IsActive defaults to true on create and to the stored value on update
	IsActive *bool `json:"isActive"`
}

// RecurringSummary is the monthly-equivalent total over active recurring expenses
type RecurringSummary struct {
	MonthlyTotal decimal.Decimal `json:"monthlyTotal"`
	ActiveCount  int             `json:"activeCount"`
}

// SummarizeRecurring totals the monthly equivalents of the active expenses
func SummarizeRecurring(expenses []*RecurringExpense) RecurringSummary {
	summary := RecurringSummary{MonthlyTotal: decimal.Zero}
	for _, r := range expenses {
		if !r.IsActive {
			continue
		}
		summary.MonthlyTotal = summary.MonthlyTotal.Add(r.MonthlyEquivalent())
		summary.ActiveCount++
	}
	return summary
}

type RecurringRepository interface {
	Create(ctx context.Context, recurring *RecurringExpense) (*RecurringExpense, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*RecurringExpense, error)
	// ListByOwner returns expenses active-first, then soonest next due date, with category
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*RecurringExpense, error)
	Update(ctx context.Context, recurring *RecurringExpense) (*RecurringExpense, error)
	SetActive(ctx context.Context, ownerID, id uuid.UUID, active bool) (*RecurringExpense, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// ListDue returns active expenses of every owner with next_due_date <= asOf
	ListDue(ctx context.Context, asOf Date) ([]*RecurringExpense, error)
	// ApplyAdvance records the occurrences as expense transactions and stores the new
	// next due date and active flag atomically. It returns false without writing when
	// the stored next_due_date no longer matches adv.PrevNextDueDate.
	ApplyAdvance(ctx context.Context, adv *RecurringAdvance) (bool, error)
}
