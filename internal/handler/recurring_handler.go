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

// RecurringHandler handles recurring expense HTTP requests
type RecurringHandler struct {
	recurringService *service.RecurringService
	now              func() time.Time
}

// NewRecurringHandler creates a new RecurringHandler. Due statuses are
// classified against the current calendar day in loc.
func NewRecurringHandler(recurringService *service.RecurringService, loc *time.Location) *RecurringHandler {
	return &RecurringHandler{
		recurringService: recurringService,
		now:              localClock(loc),
	}
}

// ToggleActiveRequest is the body of PATCH /recurring/:id/active
type ToggleActiveRequest struct {
	IsActive *bool `json:"isActive"`
}

// GetRecurring handles GET /api/v1/recurring
func (h *RecurringHandler) GetRecurring(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c)
	}

	list, err := h.recurringService.List(c.Request().Context(), ownerID, h.now())
	if err != nil {
		return handleServiceError(c, err, "list recurring expenses")
	}

	return OK(c, list)
}

// GetMonthlyTotal handles GET /api/v1/recurring/monthly-total
func (h *RecurringHandler) GetMonthlyTotal(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c)
	}

	summary, err := h.recurringService.MonthlyTotal(c.Request().Context(), ownerID)
	if err != nil {
		return handleServiceError(c, err, "recurring monthly total")
	}

	return OK(c, summary)
}

// GetRecurringByID handles GET /api/v1/recurring/:id
func (h *RecurringHandler) GetRecurringByID(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return handleServiceError(c, err, "get recurring expense")
	}

	rec, err := h.recurringService.GetByID(c.Request().Context(), ownerID, id)
	if err != nil {
		return handleServiceError(c, err, "get recurring expense")
	}

	return OK(c, domain.NewRecurringView(rec, h.now()))
}

// CreateRecurring handles POST /api/v1/recurring
func (h *RecurringHandler) CreateRecurring(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c)
	}

	var req domain.RecurringInput
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "", "Invalid request body")
	}

	rec, err := h.recurringService.Create(c.Request().Context(), ownerID, req)
	if err != nil {
		return handleServiceError(c, err, "create recurring expense")
	}

	log.Info().
		Str("owner_id", ownerID.String()).
		Str("recurring_id", rec.ID.String()).
		Str("frequency", string(rec.Frequency)).
		Msg("Recurring expense created")

	return Success(c, http.StatusCreated, fmt.Sprintf("%q added.", rec.Name), domain.NewRecurringView(rec, h.now()))
}

// UpdateRecurring handles PUT /api/v1/recurring/:id
func (h *RecurringHandler) UpdateRecurring(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return handleServiceError(c, err, "update recurring expense")
	}

	var req domain.RecurringInput
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "", "Invalid request body")
	}

	rec, err := h.recurringService.Update(c.Request().Context(), ownerID, id, req)
	if err != nil {
		return handleServiceError(c, err, "update recurring expense")
	}

	return Success(c, http.StatusOK, fmt.Sprintf("%q updated.", rec.Name), domain.NewRecurringView(rec, h.now()))
}

// ToggleActive handles PATCH /api/v1/recurring/:id/active
func (h *RecurringHandler) ToggleActive(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return handleServiceError(c, err, "toggle recurring expense")
	}

	var req ToggleActiveRequest
	if err := c.Bind(&req); err != nil || req.IsActive == nil {
		return NewValidationError(c, "isActive", "isActive is required")
	}

	rec, err := h.recurringService.ToggleActive(c.Request().Context(), ownerID, id, *req.IsActive)
	if err != nil {
		return handleServiceError(c, err, "toggle recurring expense")
	}

	message := "Paused."
	if rec.IsActive {
		message = "Activated."
	}
	return Success(c, http.StatusOK, message, domain.NewRecurringView(rec, h.now()))
}

// DeleteRecurring handles DELETE /api/v1/recurring/:id
func (h *RecurringHandler) DeleteRecurring(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return handleServiceError(c, err, "delete recurring expense")
	}

	if err := h.recurringService.Delete(c.Request().Context(), ownerID, id); err != nil {
		return handleServiceError(c, err, "delete recurring expense")
	}

	log.Info().Str("owner_id", ownerID.String()).Str("recurring_id", id.String()).Msg("Recurring expense deleted")
	return Success(c, http.StatusOK, "Recurring expense deleted.", nil)
}
