package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/ledgerly/ledgerly-backend/internal/middleware"
	"github.com/ledgerly/ledgerly-backend/internal/service"
	"github.com/rs/zerolog/log"
)

// IncomeSourceHandler handles income source HTTP requests
type IncomeSourceHandler struct {
	incomeSourceService *service.IncomeSourceService
	now                 func() time.Time
}

// NewIncomeSourceHandler creates a new IncomeSourceHandler. loc decides which
// month is "current" when the listing omits month and year.
func NewIncomeSourceHandler(incomeSourceService *service.IncomeSourceService, loc *time.Location) *IncomeSourceHandler {
	return &IncomeSourceHandler{
		incomeSourceService: incomeSourceService,
		now:                 localClock(loc),
	}
}

// ToggleReceivedRequest is the body of PATCH /income-sources/:id/received
type ToggleReceivedRequest struct {
	IsReceived *bool `json:"isReceived"`
}

// GetIncomeSources handles GET /api/v1/income-sources?month=&year=
func (h *IncomeSourceHandler) GetIncomeSources(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c)
	}

	now := h.now()
	month, err := queryInt(c, "month", int(now.Month()))
	if err != nil {
		return handleServiceError(c, err, "list income sources")
	}
	year, err := queryInt(c, "year", now.Year())
	if err != nil {
		return handleServiceError(c, err, "list income sources")
	}

	sources, err := h.incomeSourceService.List(c.Request().Context(), ownerID, month, year)
	if err != nil {
		return handleServiceError(c, err, "list income sources")
	}

	return OK(c, sources)
}

// CreateIncomeSource handles POST /api/v1/income-sources
func (h *IncomeSourceHandler) CreateIncomeSource(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c)
	}

	var req domain.IncomeSourceInput
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "", "Invalid request body")
	}

	source, err := h.incomeSourceService.Create(c.Request().Context(), ownerID, req)
	if err != nil {
		return handleServiceError(c, err, "create income source")
	}

	log.Info().Str("owner_id", ownerID.String()).Str("income_source_id", source.ID.String()).Msg("Income source created")
	return Success(c, http.StatusCreated, fmt.Sprintf("%q added.", source.Name), source)
}

// UpdateIncomeSource handles PUT /api/v1/income-sources/:id
func (h *IncomeSourceHandler) UpdateIncomeSource(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return handleServiceError(c, err, "update income source")
	}

	var req domain.IncomeSourceInput
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "", "Invalid request body")
	}

	source, err := h.incomeSourceService.Update(c.Request().Context(), ownerID, id, req)
	if err != nil {
		return handleServiceError(c, err, "update income source")
	}

	return Success(c, http.StatusOK, fmt.Sprintf("%q updated.", source.Name), source)
}

// ToggleReceived handles PATCH /api/v1/income-sources/:id/received
func (h *IncomeSourceHandler) ToggleReceived(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return handleServiceError(c, err, "toggle income source")
	}

	var req ToggleReceivedRequest
	if err := c.Bind(&req); err != nil || req.IsReceived == nil {
		return NewValidationError(c, "isReceived", "isReceived is required")
	}

	source, err := h.incomeSourceService.ToggleReceived(c.Request().Context(), ownerID, id, *req.IsReceived)
	if err != nil {
		return handleServiceError(c, err, "toggle income source")
	}

	message := "Marked as pending."
	if source.IsReceived {
		message = "Marked as received."
	}
	return Success(c, http.StatusOK, message, source)
}

// DeleteIncomeSource handles DELETE /api/v1/income-sources/:id
func (h *IncomeSourceHandler) DeleteIncomeSource(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return handleServiceError(c, err, "delete income source")
	}

	if err := h.incomeSourceService.Delete(c.Request().Context(), ownerID, id); err != nil {
		return handleServiceError(c, err, "delete income source")
	}

	log.Info().Str("owner_id", ownerID.String()).Str("income_source_id", id.String()).Msg("Income source deleted")
	return Success(c, http.StatusOK, "Income source deleted.", nil)
}
