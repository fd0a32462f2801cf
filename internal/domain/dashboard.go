package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Dashboard sizing
const (
	TrendMonths           = 6
	TopCategoryCount      = 6
	RecentExpenseCount    = 5
	UpcomingRecurringSize = 5
)

// TrendPoint is one month of the trailing expense/income trend
type TrendPoint struct {
	Month    string          `json:"month"`
	Year     int             `json:"year"`
	Expenses decimal.Decimal `json:"expenses"`
	Income   decimal.Decimal `json:"income"`
}

// CategoryStat is one slice of the current-month category breakdown
type CategoryStat struct {
	CategoryID *uuid.UUID      `json:"categoryId"`
	Name       string          `json:"name"`
	Icon       *string         `json:"icon"`
	Color      string          `json:"color"`
	Amount     decimal.Decimal `json:"amount"`
	Percent    decimal.Decimal `json:"percent"`
}

// DashboardSummary is recomputed on every view and never persisted
type DashboardSummary struct {
	MonthlyExpenses       decimal.Decimal `json:"monthlyExpenses"`
	MonthlyIncomeExpected decimal.Decimal `json:"monthlyIncomeExpected"`
	MonthlyIncomeReceived decimal.Decimal `json:"monthlyIncomeReceived"`
	RecurringMonthlyTotal decimal.Decimal `json:"recurringMonthlyTotal"`
	ActiveRecurringCount  int             `json:"activeRecurringCount"`
	Trend                 []TrendPoint    `json:"trend"`
	Categories            []CategoryStat  `json:"categories"`
	RecentExpenses        []*Transaction  `json:"recentExpenses"`
	UpcomingRecurring     []RecurringView `json:"upcomingRecurring"`
}

