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

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
	exportService      *service.ExportService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService, exportService *service.ExportService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		exportService:      exportService,
	}
}

// parseTransactionFilters reads the listing filters from the query string:
// search, type, categoryId, paymentMethod, dateFrom, dateTo
func parseTransactionFilters(c echo.Context) (domain.TransactionFilters, error) {
	filters := domain.TransactionFilters{
		Search: c.QueryParam("search"),
	}

	if t := c.QueryParam("type"); t != "" {
		txType := domain.TransactionType(t)
		if txType != domain.TransactionTypeIncome && txType != domain.TransactionTypeExpense {
			return filters, domain.NewValidationError("type", "Type must be income or expense")
		}
		filters.Type = txType
	}

	if raw := c.QueryParam("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filters, domain.NewValidationError("categoryId", "Invalid category")
		}
		filters.CategoryID = &id
	}

	if m := c.QueryParam("paymentMethod"); m != "" {
		method := domain.PaymentMethod(m)
		if !method.IsValid() {
			return filters, domain.NewValidationError("paymentMethod", "Invalid payment method")
		}
		filters.PaymentMethod = method
	}

	var err error
	if filters.DateFrom, err = queryDate(c, "dateFrom"); err != nil {
		return filters, err
	}
	if filters.DateTo, err = queryDate(c, "dateTo"); err != nil {
		return filters, err
	}

	return filters, nil
}

// GetTransactions handles GET /api/v1/transactions
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c)
	}

	filters, err := parseTransactionFilters(c)
	if err != nil {
		return handleServiceError(c, err, "list transactions")
	}

	page, err := queryInt(c, "page", 1)
	if err != nil {
		return handleServiceError(c, err, "list transactions")
	}

	result, err := h.transactionService.List(c.Request().Context(), ownerID, filters, page)
	if err != nil {
		return handleServiceError(c, err, "list transactions")
	}

	return OK(c, result)
}

// GetTransaction handles GET /api/v1/transactions/:id
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return handleServiceError(c, err, "get transaction")
	}

	transaction, err := h.transactionService.GetByID(c.Request().Context(), ownerID, id)
	if err != nil {
		return handleServiceError(c, err, "get transaction")
	}

	return OK(c, transaction)
}

// CreateTransaction handles POST /api/v1/transactions
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c)
	}

	var req domain.TransactionInput
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "", "Invalid request body")
	}

	transaction, err := h.transactionService.Create(c.Request().Context(), ownerID, req)
	if err != nil {
		return handleServiceError(c, err, "create transaction")
	}

	log.Info().
		Str("owner_id", ownerID.String()).
		Str("transaction_id", transaction.ID.String()).
		Str("type", string(transaction.Type)).
		Msg("Transaction created")

	return Success(c, http.StatusCreated, "Transaction added.", transaction)
}

// UpdateTransaction handles PUT /api/v1/transactions/:id
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return handleServiceError(c, err, "update transaction")
	}

	var req domain.TransactionInput
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "", "Invalid request body")
	}

	transaction, err := h.transactionService.Update(c.Request().Context(), ownerID, id, req)
	if err != nil {
		return handleServiceError(c, err, "update transaction")
	}

	return Success(c, http.StatusOK, "Transaction updated.", transaction)
}

// DeleteTransaction handles DELETE /api/v1/transactions/:id
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return handleServiceError(c, err, "delete transaction")
	}

	if err := h.transactionService.Delete(c.Request().Context(), ownerID, id); err != nil {
		return handleServiceError(c, err, "delete transaction")
	}

	log.Info().Str("owner_id", ownerID.String()).Str("transaction_id", id.String()).Msg("Transaction deleted (soft)")
	return Success(c, http.StatusOK, "Transaction deleted.", nil)
}

// ExportTransactions handles GET /api/v1/transactions/export.
// The workbook honours the same filters as the listing.
func (h *TransactionHandler) ExportTransactions(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c)
	}

	filters, err := parseTransactionFilters(c)
	if err != nil {
		return handleServiceError(c, err, "export transactions")
	}

	workbook, err := h.exportService.BuildWorkbook(c.Request().Context(), ownerID, filters)
	if err != nil {
		return handleServiceError(c, err, "export transactions")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", workbook.Filename))
	return c.Blob(http.StatusOK, xlsxContentType, workbook.Data)
}

// ArchiveTransactions handles POST /api/v1/transactions/export/archive
func (h *TransactionHandler) ArchiveTransactions(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c)
	}

	filters, err := parseTransactionFilters(c)
	if err != nil {
		return handleServiceError(c, err, "archive transactions")
	}

	archive, err := h.exportService.Archive(c.Request().Context(), ownerID, filters)
	if err != nil {
		return handleServiceError(c, err, "archive transactions")
	}

	log.Info().Str("owner_id", ownerID.String()).Str("key", archive.Key).Int("rows", archive.Rows).Msg("Transactions archived")
	return Success(c, http.StatusCreated, "Export ready.", archive)
}
