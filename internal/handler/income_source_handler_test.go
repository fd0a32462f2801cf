package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/ledgerly/ledgerly-backend/internal/service"
	"github.com/ledgerly/ledgerly-backend/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIncomeSourceHandlerFixture() (*IncomeSourceHandler, *testutil.MockIncomeSourceRepository) {
	repo := testutil.NewMockIncomeSourceRepository()
	h := NewIncomeSourceHandler(service.NewIncomeSourceService(repo), nil)
	h.now = fixedClock
	return h, repo
}

func addIncome(repo *testutil.MockIncomeSourceRepository, owner uuid.UUID, name string, month, year int) *domain.IncomeSource {
	source := &domain.IncomeSource{
		OwnerID:    owner,
		Name:       name,
		SourceType: domain.IncomeSourceSalary,
		Amount:     decimal.NewFromInt(5000),
		Month:      month,
		Year:       year,
	}
	repo.AddIncomeSource(source)
	return source
}

func TestGetIncomeSources_DefaultsToCurrentMonth(t *testing.T) {
	h, repo := newIncomeSourceHandlerFixture()
	owner := uuid.New()
	addIncome(repo, owner, "October salary", 10, 2026)
	addIncome(repo, owner, "September salary", 9, 2026)

	c, rec := newRequestContext(echo.New(), http.MethodGet, "/api/v1/income-sources", "", owner)
	require.NoError(t, h.GetIncomeSources(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var sources []*domain.IncomeSource
	decodeData(t, rec, &sources)
	require.Len(t, sources, 1)
	assert.Equal(t, "October salary", sources[0].Name)
}

func TestGetIncomeSources_ExplicitMonth(t *testing.T) {
	h, repo := newIncomeSourceHandlerFixture()
	owner := uuid.New()
	addIncome(repo, owner, "September salary", 9, 2026)

	c, rec := newRequestContext(echo.New(), http.MethodGet, "/api/v1/income-sources?month=9&year=2026", "", owner)
	require.NoError(t, h.GetIncomeSources(c))

	var sources []*domain.IncomeSource
	decodeData(t, rec, &sources)
	assert.Len(t, sources, 1)
}

func TestGetIncomeSources_InvalidMonth(t *testing.T) {
	h, _ := newIncomeSourceHandlerFixture()

	c, rec := newRequestContext(echo.New(), http.MethodGet, "/api/v1/income-sources?month=13&year=2026", "", uuid.New())
	require.NoError(t, h.GetIncomeSources(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateIncomeSource(t *testing.T) {
	h, _ := newIncomeSourceHandlerFixture()

	body := `{"name":"Freelance gig","sourceType":"freelance","amount":"750.00","month":10,"year":2026,"isReceived":true}`
	c, rec := newRequestContext(echo.New(), http.MethodPost, "/api/v1/income-sources", body, uuid.New())
	require.NoError(t, h.CreateIncomeSource(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var source domain.IncomeSource
	resp := decodeData(t, rec, &source)
	assert.Equal(t, `"Freelance gig" added.`, resp.Message)
	assert.True(t, source.IsReceived)
	assert.NotNil(t, source.ReceivedAt)
}

func TestToggleReceived(t *testing.T) {
	h, repo := newIncomeSourceHandlerFixture()
	owner := uuid.New()
	source := addIncome(repo, owner, "Salary", 10, 2026)

	c, rec := newRequestContext(echo.New(), http.MethodPatch, "/", `{"isReceived":true}`, owner)
	withIDParam(c, source.ID.String())
	require.NoError(t, h.ToggleReceived(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Marked as received.", decodeResponse(t, rec).Message)

	c, rec = newRequestContext(echo.New(), http.MethodPatch, "/", `{"isReceived":false}`, owner)
	withIDParam(c, source.ID.String())
	require.NoError(t, h.ToggleReceived(c))

	var toggled domain.IncomeSource
	resp := decodeData(t, rec, &toggled)
	assert.Equal(t, "Marked as pending.", resp.Message)
	assert.False(t, toggled.IsReceived)
	assert.Nil(t, toggled.ReceivedAt)
}

func TestToggleReceived_MissingValue(t *testing.T) {
	h, repo := newIncomeSourceHandlerFixture()
	owner := uuid.New()
	source := addIncome(repo, owner, "Salary", 10, 2026)

	c, rec := newRequestContext(echo.New(), http.MethodPatch, "/", `{}`, owner)
	withIDParam(c, source.ID.String())
	require.NoError(t, h.ToggleReceived(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteIncomeSource(t *testing.T) {
	h, repo := newIncomeSourceHandlerFixture()
	owner := uuid.New()
	source := addIncome(repo, owner, "Salary", 10, 2026)

	c, rec := newRequestContext(echo.New(), http.MethodDelete, "/", "", uuid.New())
	withIDParam(c, source.ID.String())
	require.NoError(t, h.DeleteIncomeSource(c))
	assert.Equal(t, http.StatusNotFound, rec.Code, "another owner cannot delete it")

	c, rec = newRequestContext(echo.New(), http.MethodDelete, "/", "", owner)
	withIDParam(c, source.ID.String())
	require.NoError(t, h.DeleteIncomeSource(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Income source deleted.", decodeResponse(t, rec).Message)
}
