package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/ledgerly/ledgerly-backend/internal/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers bundles the HTTP handlers mounted under /api/v1
type Handlers struct {
	Auth         *AuthHandler
	Category     *CategoryHandler
	Transaction  *TransactionHandler
	IncomeSource *IncomeSourceHandler
	Recurring    *RecurringHandler
	Dashboard    *DashboardHandler
	WebSocket    *WebSocketHandler
	Docs         *DocsHandler
}

// RegisterRoutes sets up all API routes. The websocket upgrade authenticates
// via its token query parameter and the dashboard summary accepts anonymous
// callers (who get the empty summary); every other route requires a token.
// All routes but the websocket run behind the per-owner rate limiter.
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter, h Handlers) {
	api := e.Group("/api/v1")

	if h.WebSocket != nil {
		api.GET("/ws", h.WebSocket.HandleWS)
	}
	if h.Docs != nil {
		api.GET("/openapi.json", h.Docs.ServeOpenAPI3Spec)
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	protected := api.Group("")
	protected.Use(authMiddleware.Authenticate())
	optional := api.Group("")
	optional.Use(authMiddleware.OptionalAuthenticate())
	if rateLimiter != nil {
		protected.Use(middleware.RateLimitMiddleware(rateLimiter))
		optional.Use(middleware.RateLimitMiddleware(rateLimiter))
	}

	// Auth routes
	auth := protected.Group("/auth")
	auth.POST("/callback", h.Auth.Callback)
	auth.GET("/me", h.Auth.Me)
	auth.POST("/logout", h.Auth.Logout)

	// Category routes
	categories := protected.Group("/categories")
	categories.GET("", h.Category.GetCategories)
	categories.POST("", h.Category.CreateCategory)
	categories.PUT("/:id", h.Category.UpdateCategory)
	categories.DELETE("/:id", h.Category.DeleteCategory)
	categories.GET("/:id/can-delete", h.Category.CanDeleteCategory)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.GET("", h.Transaction.GetTransactions)
	transactions.POST("", h.Transaction.CreateTransaction)
	transactions.GET("/export", h.Transaction.ExportTransactions)
	transactions.POST("/export/archive", h.Transaction.ArchiveTransactions)
	transactions.GET("/:id", h.Transaction.GetTransaction)
	transactions.PUT("/:id", h.Transaction.UpdateTransaction)
	transactions.DELETE("/:id", h.Transaction.DeleteTransaction)

	// Income source routes
	income := protected.Group("/income-sources")
	income.GET("", h.IncomeSource.GetIncomeSources)
	income.POST("", h.IncomeSource.CreateIncomeSource)
	income.PUT("/:id", h.IncomeSource.UpdateIncomeSource)
	income.PATCH("/:id/received", h.IncomeSource.ToggleReceived)
	income.DELETE("/:id", h.IncomeSource.DeleteIncomeSource)

	// Recurring expense routes
	recurring := protected.Group("/recurring")
	recurring.GET("", h.Recurring.GetRecurring)
	recurring.POST("", h.Recurring.CreateRecurring)
	recurring.GET("/monthly-total", h.Recurring.GetMonthlyTotal)
	recurring.GET("/:id", h.Recurring.GetRecurringByID)
	recurring.PUT("/:id", h.Recurring.UpdateRecurring)
	recurring.PATCH("/:id/active", h.Recurring.ToggleActive)
	recurring.DELETE("/:id", h.Recurring.DeleteRecurring)

	// Dashboard routes
	dashboard := optional.Group("/dashboard")
	dashboard.GET("/summary", h.Dashboard.GetSummary)
}
