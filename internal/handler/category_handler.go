package handler

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/ledgerly/ledgerly-backend/internal/middleware"
	"github.com/ledgerly/ledgerly-backend/internal/service"
	"github.com/rs/zerolog/log"
)

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// GetCategories handles GET /api/v1/categories
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c)
	}

	groups, err := h.categoryService.List(c.Request().Context(), ownerID)
	if err != nil {
		return handleServiceError(c, err, "list categories")
	}

	return OK(c, groups)
}

// CreateCategory handles POST /api/v1/categories
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c)
	}

	var req domain.CategoryInput
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "", "Invalid request body")
	}

	category, err := h.categoryService.Create(c.Request().Context(), ownerID, req)
	if err != nil {
		return handleServiceError(c, err, "create category")
	}

	log.Info().Str("owner_id", ownerID.String()).Str("category_id", category.ID.String()).Str("name", category.Name).Msg("Category created")

	return Success(c, http.StatusCreated, fmt.Sprintf("%q category created.", category.Name), category)
}

// UpdateCategory handles PUT /api/v1/categories/:id
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return handleServiceError(c, err, "update category")
	}

	var req domain.CategoryInput
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "", "Invalid request body")
	}

	category, err := h.categoryService.Update(c.Request().Context(), ownerID, id, req)
	if err != nil {
		return handleServiceError(c, err, "update category")
	}

	log.Info().Str("owner_id", ownerID.String()).Str("category_id", category.ID.String()).Msg("Category updated")
	return Success(c, http.StatusOK, fmt.Sprintf("%q updated.", category.Name), category)
}

// DeleteCategory handles DELETE /api/v1/categories/:id
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return handleServiceError(c, err, "delete category")
	}

	if err := h.categoryService.Delete(c.Request().Context(), ownerID, id); err != nil {
		return handleServiceError(c, err, "delete category")
	}

	log.Info().Str("owner_id", ownerID.String()).Str("category_id", id.String()).Msg("Category deleted")
	return Success(c, http.StatusOK, "Category deleted.", nil)
}

// CanDeleteCategory handles GET /api/v1/categories/:id/can-delete
func (h *CategoryHandler) CanDeleteCategory(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return handleServiceError(c, err, "check category")
	}

	result, err := h.categoryService.CanDelete(c.Request().Context(), ownerID, id)
	if err != nil {
		return handleServiceError(c, err, "check category")
	}

	return OK(c, result)
}
