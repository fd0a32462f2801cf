package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/ledgerly/ledgerly-backend/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardFixture struct {
	service      *DashboardService
	transactions *testutil.MockTransactionRepository
	income       *testutil.MockIncomeSourceRepository
	recurring    *testutil.MockRecurringRepository
}

func newDashboardFixture() *dashboardFixture {
	f := &dashboardFixture{
		transactions: testutil.NewMockTransactionRepository(),
		income:       testutil.NewMockIncomeSourceRepository(),
		recurring:    testutil.NewMockRecurringRepository(),
	}
	f.service = NewDashboardService(f.transactions, f.income, f.recurring)
	return f
}

func (f *dashboardFixture) expense(owner uuid.UUID, date domain.Date, amount int64, category *domain.Category) *domain.Transaction {
	tx := testutil.FakeExpense(owner, date, decimal.NewFromInt(amount))
	if category != nil {
		tx.CategoryID = &category.ID
		tx.Category = &domain.CategoryRef{ID: category.ID, Name: category.Name, Icon: category.Icon, Color: category.Color, Type: category.Type}
	}
	f.transactions.AddTransaction(tx)
	return tx
}

func (f *dashboardFixture) incomeSource(owner uuid.UUID, month, year int, amount int64, received bool) {
	f.income.AddIncomeSource(&domain.IncomeSource{
		OwnerID:    owner,
		Name:       "Payroll",
		SourceType: domain.IncomeSourceSalary,
		Amount:     decimal.NewFromInt(amount),
		Month:      month,
		Year:       year,
		IsReceived: received,
	})
}

var dashboardNow = time.Date(2026, time.February, 14, 10, 0, 0, 0, time.UTC)

func TestEmptySummary(t *testing.T) {
	summary := EmptySummary(dashboardNow)

	require.Len(t, summary.Trend, 6)
	labels := make([]string, 0, 6)
	for _, p := range summary.Trend {
		labels = append(labels, p.Month)
		assert.True(t, p.Expenses.IsZero())
		assert.True(t, p.Income.IsZero())
	}
	assert.Equal(t, []string{"Sep", "Oct", "Nov", "Dec", "Jan", "Feb"}, labels)
	assert.Equal(t, 2025, summary.Trend[0].Year)
	assert.True(t, summary.MonthlyExpenses.IsZero())
	assert.NotNil(t, summary.Categories)
	assert.Empty(t, summary.Categories)
	assert.Empty(t, summary.RecentExpenses)
	assert.Empty(t, summary.UpcomingRecurring)
}

func TestGetSummary_NoOwnerReturnsEmpty(t *testing.T) {
	f := newDashboardFixture()
	f.transactions.ListExpenseAmountsSinceFn = func(uuid.UUID, domain.Date) ([]domain.DatedAmount, error) {
		t.Fatal("no reads expected without an owner")
		return nil, nil
	}

	summary, err := f.service.GetSummary(context.Background(), uuid.Nil, dashboardNow)
	require.NoError(t, err)
	assert.Equal(t, EmptySummary(dashboardNow), summary)
}

func TestGetSummary_MonthlyTotalsAndMonthEnd(t *testing.T) {
	f := newDashboardFixture()
	owner := uuid.New()

	f.expense(owner, domain.NewDate(2026, time.February, 1), 100, nil)
	f.expense(owner, domain.NewDate(2026, time.February, 28), 50, nil) // last day of the month counts
	f.expense(owner, domain.NewDate(2026, time.March, 1), 999, nil)
	f.expense(owner, domain.NewDate(2026, time.January, 31), 999, nil)
	f.expense(uuid.New(), domain.NewDate(2026, time.February, 10), 999, nil)

	f.incomeSource(owner, 2, 2026, 3000, true)
	f.incomeSource(owner, 2, 2026, 500, false)
	f.incomeSource(owner, 3, 2026, 700, true)

	summary, err := f.service.GetSummary(context.Background(), owner, dashboardNow)
	require.NoError(t, err)

	assert.Equal(t, "150", summary.MonthlyExpenses.String())
	assert.Equal(t, "3500", summary.MonthlyIncomeExpected.String())
	assert.Equal(t, "3000", summary.MonthlyIncomeReceived.String())
}

func TestGetSummary_TrendSpansYearBoundary(t *testing.T) {
	f := newDashboardFixture()
	owner := uuid.New()

	f.expense(owner, domain.NewDate(2025, time.August, 31), 1, nil) // outside window
	f.expense(owner, domain.NewDate(2025, time.September, 1), 10, nil)
	f.expense(owner, domain.NewDate(2025, time.December, 24), 20, nil)
	f.expense(owner, domain.NewDate(2025, time.December, 31), 5, nil)
	f.expense(owner, domain.NewDate(2026, time.February, 3), 40, nil)

	f.incomeSource(owner, 12, 2025, 1000, true)
	f.incomeSource(owner, 12, 2025, 400, false) // pending income is not in the trend
	f.incomeSource(owner, 12, 2024, 9999, true)
	f.incomeSource(owner, 1, 2026, 800, true)

	summary, err := f.service.GetSummary(context.Background(), owner, dashboardNow)
	require.NoError(t, err)
	require.Len(t, summary.Trend, 6)

	got := make(map[string][2]string)
	for _, p := range summary.Trend {
		got[fmt.Sprintf("%s %d", p.Month, p.Year)] = [2]string{p.Expenses.String(), p.Income.String()}
	}
	assert.Equal(t, [2]string{"10", "0"}, got["Sep 2025"])
	assert.Equal(t, [2]string{"0", "0"}, got["Oct 2025"])
	assert.Equal(t, [2]string{"25", "1000"}, got["Dec 2025"])
	assert.Equal(t, [2]string{"0", "800"}, got["Jan 2026"])
	assert.Equal(t, [2]string{"40", "0"}, got["Feb 2026"])
	assert.Equal(t, "Sep", summary.Trend[0].Month)
	assert.Equal(t, "Feb", summary.Trend[5].Month)
}

func TestGetSummary_CategoryBreakdown(t *testing.T) {
	f := newDashboardFixture()
	owner := uuid.New()
	day := domain.NewDate(2026, time.February, 10)

	amounts := []int64{70, 60, 50, 40, 30, 20, 10}
	for i, amount := range amounts {
		category := testutil.FakeCategory(owner, fmt.Sprintf("Cat %d", i), "#111111")
		f.expense(owner, day, amount/2, category)
		f.expense(owner, day, amount-amount/2, category)
	}
	f.expense(owner, day, 55, nil)
	f.expense(owner, day, 10, nil)

	summary, err := f.service.GetSummary(context.Background(), owner, dashboardNow)
	require.NoError(t, err)

	require.Len(t, summary.Categories, domain.TopCategoryCount)
	assert.Equal(t, "Cat 0", summary.Categories[0].Name)
	assert.Equal(t, "70", summary.Categories[0].Amount.String())
	assert.Equal(t, domain.UncategorizedName, summary.Categories[1].Name)
	assert.Equal(t, domain.UncategorizedColor, summary.Categories[1].Color)
	assert.Nil(t, summary.Categories[1].CategoryID)
	assert.Equal(t, "65", summary.Categories[1].Amount.String())

	for i := 1; i < len(summary.Categories); i++ {
		assert.False(t, summary.Categories[i].Amount.GreaterThan(summary.Categories[i-1].Amount))
	}

	// 345 total: 70/345 = 20.3%
	assert.Equal(t, "345", summary.MonthlyExpenses.String())
	assert.Equal(t, "20.3", summary.Categories[0].Percent.String())
}

func TestGetSummary_RecurringSnapshot(t *testing.T) {
	f := newDashboardFixture()
	owner := uuid.New()
	start := domain.NewDate(2026, time.February, 15)

	for i := 0; i < 7; i++ {
		f.recurring.AddRecurring(testutil.FakeRecurring(owner, decimal.NewFromInt(120), domain.FrequencyYearly, start.AddDays(i)))
	}
	paused := testutil.FakeRecurring(owner, decimal.NewFromInt(5000), domain.FrequencyMonthly, start)
	paused.IsActive = false
	f.recurring.AddRecurring(paused)

	summary, err := f.service.GetSummary(context.Background(), owner, dashboardNow)
	require.NoError(t, err)

	assert.Equal(t, "70", summary.RecurringMonthlyTotal.String())
	assert.Equal(t, 7, summary.ActiveRecurringCount)
	require.Len(t, summary.UpcomingRecurring, domain.UpcomingRecurringSize)
	assert.Equal(t, "Due tomorrow", summary.UpcomingRecurring[0].Due.Label)
	for _, r := range summary.UpcomingRecurring {
		assert.True(t, r.IsActive)
	}
}

func TestGetSummary_RecentExpenses(t *testing.T) {
	f := newDashboardFixture()
	owner := uuid.New()

	for i := 0; i < 8; i++ {
		f.expense(owner, domain.NewDate(2026, time.February, 1+i), 10, nil)
	}

	summary, err := f.service.GetSummary(context.Background(), owner, dashboardNow)
	require.NoError(t, err)
	require.Len(t, summary.RecentExpenses, domain.RecentExpenseCount)
	assert.Equal(t, "2026-02-08", summary.RecentExpenses[0].Date.String())
}

func TestGetSummary_FailedReadsDegradeToEmpty(t *testing.T) {
	f := newDashboardFixture()
	owner := uuid.New()
	boom := errors.New("statement timeout")

	f.expense(owner, domain.NewDate(2026, time.February, 2), 80, nil)
	f.incomeSource(owner, 2, 2026, 1000, true)

	f.transactions.ListExpensesBetweenFn = func(uuid.UUID, domain.Date, domain.Date) ([]*domain.Transaction, error) {
		return nil, boom
	}
	f.recurring.ListByOwnerFn = func(uuid.UUID) ([]*domain.RecurringExpense, error) {
		return nil, boom
	}

	summary, err := f.service.GetSummary(context.Background(), owner, dashboardNow)
	require.NoError(t, err)

	assert.True(t, summary.MonthlyExpenses.IsZero())
	assert.Empty(t, summary.Categories)
	assert.Empty(t, summary.UpcomingRecurring)
	assert.True(t, summary.RecurringMonthlyTotal.IsZero())

	// unaffected slices still load
	assert.Equal(t, "1000", summary.MonthlyIncomeReceived.String())
	assert.Equal(t, "80", summary.Trend[5].Expenses.String())
	assert.Len(t, summary.RecentExpenses, 1)
}
