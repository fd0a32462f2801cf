package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/ledgerly/ledgerly-backend/internal/service"
	"github.com/ledgerly/ledgerly-backend/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardHandlerFixture() (*DashboardHandler, *testutil.MockTransactionRepository, *testutil.MockRecurringRepository) {
	transactions := testutil.NewMockTransactionRepository()
	income := testutil.NewMockIncomeSourceRepository()
	recurring := testutil.NewMockRecurringRepository()
	h := NewDashboardHandler(service.NewDashboardService(transactions, income, recurring), time.UTC)
	h.now = fixedClock
	return h, transactions, recurring
}

func TestGetSummary(t *testing.T) {
	h, transactions, recurring := newDashboardHandlerFixture()
	owner := uuid.New()
	transactions.AddTransaction(testutil.FakeExpense(owner, domain.NewDate(2026, time.October, 2), decimal.NewFromInt(120)))
	transactions.AddTransaction(testutil.FakeExpense(owner, domain.NewDate(2026, time.October, 9), decimal.NewFromInt(80)))
	transactions.AddTransaction(testutil.FakeExpense(owner, domain.NewDate(2026, time.September, 30), decimal.NewFromInt(500)))
	recurring.AddRecurring(testutil.FakeRecurring(owner, decimal.NewFromInt(300), domain.FrequencyQuarterly, domain.NewDate(2026, time.October, 20)))

	c, rec := newRequestContext(echo.New(), http.MethodGet, "/api/v1/dashboard/summary", "", owner)
	require.NoError(t, h.GetSummary(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var summary domain.DashboardSummary
	decodeData(t, rec, &summary)
	assert.Equal(t, "200", summary.MonthlyExpenses.String())
	assert.Equal(t, "100", summary.RecurringMonthlyTotal.String())
	assert.Equal(t, 1, summary.ActiveRecurringCount)
	assert.Len(t, summary.Trend, domain.TrendMonths)
	assert.Len(t, summary.RecentExpenses, 3)
	require.Len(t, summary.UpcomingRecurring, 1)
	assert.Equal(t, "Due in 2 days", summary.UpcomingRecurring[0].Due.Label)
}

func TestGetSummary_WithoutOwnerReturnsEmptySummary(t *testing.T) {
	h, transactions, _ := newDashboardHandlerFixture()
	transactions.AddTransaction(testutil.FakeExpense(uuid.New(), domain.NewDate(2026, time.October, 2), decimal.NewFromInt(120)))

	c, rec := newRequestContext(echo.New(), http.MethodGet, "/api/v1/dashboard/summary", "", uuid.Nil)
	require.NoError(t, h.GetSummary(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var summary domain.DashboardSummary
	decodeData(t, rec, &summary)
	assert.True(t, summary.MonthlyExpenses.IsZero())
	assert.Empty(t, summary.RecentExpenses)
	assert.Len(t, summary.Trend, domain.TrendMonths)
}
