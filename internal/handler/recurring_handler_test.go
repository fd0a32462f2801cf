package handler

import (
	"fmt"
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

func newRecurringHandlerFixture() (*RecurringHandler, *testutil.MockRecurringRepository, *testutil.MockCategoryRepository) {
	recurring := testutil.NewMockRecurringRepository()
	categories := testutil.NewMockCategoryRepository()
	h := NewRecurringHandler(service.NewRecurringService(recurring, categories), time.UTC)
	h.now = fixedClock
	return h, recurring, categories
}

func TestGetRecurring_ViewsAndSummary(t *testing.T) {
	h, repo, _ := newRecurringHandlerFixture()
	owner := uuid.New()

	rent := testutil.FakeRecurring(owner, decimal.NewFromInt(1000), domain.FrequencyMonthly, domain.NewDate(2026, time.October, 19))
	insurance := testutil.FakeRecurring(owner, decimal.NewFromInt(1200), domain.FrequencyYearly, domain.NewDate(2026, time.October, 15))
	paused := testutil.FakeRecurring(owner, decimal.NewFromInt(50), domain.FrequencyWeekly, domain.NewDate(2026, time.October, 1))
	paused.IsActive = false
	repo.AddRecurring(rent)
	repo.AddRecurring(insurance)
	repo.AddRecurring(paused)

	c, rec := newRequestContext(echo.New(), http.MethodGet, "/api/v1/recurring", "", owner)
	require.NoError(t, h.GetRecurring(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var list service.RecurringList
	decodeData(t, rec, &list)
	require.Len(t, list.Items, 3)
	assert.Equal(t, "1100", list.Summary.MonthlyTotal.String())
	assert.Equal(t, 2, list.Summary.ActiveCount)

	statuses := map[uuid.UUID]domain.DueStatus{}
	for _, item := range list.Items {
		statuses[item.ID] = item.Due
	}
	assert.Equal(t, "Due tomorrow", statuses[rent.ID].Label)
	assert.Equal(t, domain.DueOverdue, statuses[insurance.ID].Status)
	assert.Equal(t, "", statuses[paused.ID].Label)
}

func TestGetMonthlyTotal(t *testing.T) {
	h, repo, _ := newRecurringHandlerFixture()
	owner := uuid.New()
	repo.AddRecurring(testutil.FakeRecurring(owner, decimal.NewFromInt(120), domain.FrequencyWeekly, domain.NewDate(2026, time.October, 20)))

	c, rec := newRequestContext(echo.New(), http.MethodGet, "/api/v1/recurring/monthly-total", "", owner)
	require.NoError(t, h.GetMonthlyTotal(c))

	var summary domain.RecurringSummary
	decodeData(t, rec, &summary)
	assert.Equal(t, "520", summary.MonthlyTotal.String())
	assert.Equal(t, 1, summary.ActiveCount)
}

func TestCreateRecurring(t *testing.T) {
	h, repo, categories := newRecurringHandlerFixture()
	owner := uuid.New()
	category := testutil.FakeCategory(owner, "Housing", "#3b82f6")
	categories.AddCategory(category)

	body := fmt.Sprintf(`{"name":"Rent","categoryId":%q,"amount":"1500","frequency":"monthly","paymentMethod":"bank_transfer","startDate":"2026-10-25"}`, category.ID)
	c, rec := newRequestContext(echo.New(), http.MethodPost, "/api/v1/recurring", body, owner)
	require.NoError(t, h.CreateRecurring(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var view domain.RecurringView
	resp := decodeData(t, rec, &view)
	assert.Equal(t, `"Rent" added.`, resp.Message)
	assert.True(t, view.IsActive)
	assert.Equal(t, "2026-10-25", view.NextDueDate.String())
	assert.Equal(t, "Due in 7 days", view.Due.Label)
	assert.Len(t, repo.Recurring, 1)
}

func TestCreateRecurring_EndBeforeStart(t *testing.T) {
	h, _, _ := newRecurringHandlerFixture()

	body := `{"name":"Gym","amount":"40","frequency":"monthly","paymentMethod":"debit_card","startDate":"2026-10-25","endDate":"2026-10-01"}`
	c, rec := newRequestContext(echo.New(), http.MethodPost, "/api/v1/recurring", body, uuid.New())
	require.NoError(t, h.CreateRecurring(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var field ValidationErrorData
	resp := decodeData(t, rec, &field)
	assert.Equal(t, "endDate", field.Field)
	assert.Equal(t, "End date must be on or after the start date", resp.Message)
}

func TestToggleActive(t *testing.T) {
	h, repo, _ := newRecurringHandlerFixture()
	owner := uuid.New()
	rent := testutil.FakeRecurring(owner, decimal.NewFromInt(1000), domain.FrequencyMonthly, domain.NewDate(2026, time.October, 19))
	repo.AddRecurring(rent)

	c, rec := newRequestContext(echo.New(), http.MethodPatch, "/", `{"isActive":false}`, owner)
	withIDParam(c, rent.ID.String())
	require.NoError(t, h.ToggleActive(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Paused.", decodeResponse(t, rec).Message)

	c, rec = newRequestContext(echo.New(), http.MethodPatch, "/", `{"isActive":true}`, owner)
	withIDParam(c, rent.ID.String())
	require.NoError(t, h.ToggleActive(c))
	assert.Equal(t, "Activated.", decodeResponse(t, rec).Message)
}

func TestDeleteRecurring(t *testing.T) {
	h, repo, _ := newRecurringHandlerFixture()
	owner := uuid.New()
	rent := testutil.FakeRecurring(owner, decimal.NewFromInt(1000), domain.FrequencyMonthly, domain.NewDate(2026, time.October, 19))
	repo.AddRecurring(rent)

	c, rec := newRequestContext(echo.New(), http.MethodDelete, "/", "", owner)
	withIDParam(c, rent.ID.String())
	require.NoError(t, h.DeleteRecurring(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Recurring expense deleted.", decodeResponse(t, rec).Message)

	c, rec = newRequestContext(echo.New(), http.MethodGet, "/", "", owner)
	withIDParam(c, rent.ID.String())
	require.NoError(t, h.GetRecurringByID(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
