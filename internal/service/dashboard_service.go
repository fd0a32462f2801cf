package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/ledgerly/ledgerly-backend/internal/metrics"
	"github.com/ledgerly/ledgerly-backend/internal/util"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var hundred = decimal.NewFromInt(100)

// DashboardService assembles the dashboard summary
type DashboardService struct {
	transactionRepo domain.TransactionRepository
	incomeRepo      domain.IncomeSourceRepository
	recurringRepo   domain.RecurringRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	transactionRepo domain.TransactionRepository,
	incomeRepo domain.IncomeSourceRepository,
	recurringRepo domain.RecurringRepository,
) *DashboardService {
	return &DashboardService{
		transactionRepo: transactionRepo,
		incomeRepo:      incomeRepo,
		recurringRepo:   recurringRepo,
	}
}

// dashboardReads holds the raw rows of the six concurrent reads
type dashboardReads struct {
	trendExpenses []domain.DatedAmount
	trendIncome   []*domain.IncomeSource
	monthExpenses []*domain.Transaction
	recent        []*domain.Transaction
	recurring     []*domain.RecurringExpense
	monthlyIncome []*domain.IncomeSource
}

// GetSummary computes the dashboard for the calendar month of now. Without an
// owner the empty summary is returned. A failing read is logged and its slice
// treated as empty.
func (s *DashboardService) GetSummary(ctx context.Context, ownerID uuid.UUID, now time.Time) (*domain.DashboardSummary, error) {
	if ownerID == uuid.Nil {
		return EmptySummary(now), nil
	}
	startTime := time.Now()
	defer func() { metrics.DashboardDuration.Observe(time.Since(startTime).Seconds()) }()

	months := util.TrailingMonths(now, domain.TrendMonths)
	earliest := domain.Date{Time: util.MonthStart(months[0].Year, time.Month(months[0].Month))}
	monthStart := domain.Date{Time: util.MonthStart(now.Year(), now.Month())}
	monthEnd := domain.Date{Time: util.MonthEnd(now.Year(), now.Month())}
	year, month := now.Year(), int(now.Month())

	var reads dashboardReads
	var g errgroup.Group

	g.Go(func() error {
		rows, err := s.transactionRepo.ListExpenseAmountsSince(ctx, ownerID, earliest)
		reads.trendExpenses = degrade(ownerID, "trend_expenses", rows, err)
		return nil
	})
	g.Go(func() error {
		rows, err := s.incomeRepo.ListByYears(ctx, ownerID, util.DistinctYears(months))
		reads.trendIncome = degrade(ownerID, "trend_income", rows, err)
		return nil
	})
	g.Go(func() error {
		rows, err := s.transactionRepo.ListExpensesBetween(ctx, ownerID, monthStart, monthEnd)
		reads.monthExpenses = degrade(ownerID, "month_expenses", rows, err)
		return nil
	})
	g.Go(func() error {
		rows, err := s.transactionRepo.ListRecentExpenses(ctx, ownerID, domain.RecentExpenseCount)
		reads.recent = degrade(ownerID, "recent_expenses", rows, err)
		return nil
	})
	g.Go(func() error {
		rows, err := s.recurringRepo.ListByOwner(ctx, ownerID)
		reads.recurring = degrade(ownerID, "recurring", rows, err)
		return nil
	})
	g.Go(func() error {
		rows, err := s.incomeRepo.ListByMonth(ctx, ownerID, month, year)
		reads.monthlyIncome = degrade(ownerID, "monthly_income", rows, err)
		return nil
	})
	_ = g.Wait()

	return buildSummary(reads, months, now), nil
}

// degrade returns rows, or an empty slice when the read failed
func degrade[T any](ownerID uuid.UUID, slice string, rows []T, err error) []T {
	if err != nil {
		log.Error().Err(err).Str("owner_id", ownerID.String()).Str("slice", slice).Msg("Dashboard read failed")
		metrics.DashboardSliceFailures.WithLabelValues(slice).Inc()
		return make([]T, 0)
	}
	if rows == nil {
		return make([]T, 0)
	}
	return rows
}

func buildSummary(reads dashboardReads, months []util.MonthRef, now time.Time) *domain.DashboardSummary {
	summary := &domain.DashboardSummary{
		MonthlyExpenses:       sumTransactions(reads.monthExpenses),
		MonthlyIncomeExpected: decimal.Zero,
		MonthlyIncomeReceived: decimal.Zero,
		Trend:                 buildTrend(months, reads.trendExpenses, reads.trendIncome),
		RecentExpenses:        reads.recent,
	}

	for _, src := range reads.monthlyIncome {
		summary.MonthlyIncomeExpected = summary.MonthlyIncomeExpected.Add(src.Amount)
		if src.IsReceived {
			summary.MonthlyIncomeReceived = summary.MonthlyIncomeReceived.Add(src.Amount)
		}
	}

	summary.Categories = buildCategoryBreakdown(reads.monthExpenses, summary.MonthlyExpenses)

	recurring := domain.SummarizeRecurring(reads.recurring)
	summary.RecurringMonthlyTotal = recurring.MonthlyTotal
	summary.ActiveRecurringCount = recurring.ActiveCount
	summary.UpcomingRecurring = make([]domain.RecurringView, 0, domain.UpcomingRecurringSize)
	for _, r := range reads.recurring {
		if len(summary.UpcomingRecurring) == domain.UpcomingRecurringSize {
			break
		}
		if r.IsActive {
			summary.UpcomingRecurring = append(summary.UpcomingRecurring, domain.NewRecurringView(r, now))
		}
	}

	return summary
}

// buildTrend sums expenses by month prefix and received income by (month, year)
func buildTrend(months []util.MonthRef, expenses []domain.DatedAmount, income []*domain.IncomeSource) []domain.TrendPoint {
	trend := make([]domain.TrendPoint, len(months))
	for i, m := range months {
		point := domain.TrendPoint{Month: m.Label, Year: m.Year, Expenses: decimal.Zero, Income: decimal.Zero}
		for _, e := range expenses {
			if e.Date.Format("2006-01") == m.Prefix {
				point.Expenses = point.Expenses.Add(e.Amount)
			}
		}
		for _, src := range income {
			if src.IsReceived && src.Month == m.Month && src.Year == m.Year {
				point.Income = point.Income.Add(src.Amount)
			}
		}
		trend[i] = point
	}
	return trend
}

// buildCategoryBreakdown groups the month's expenses by category, largest first, top six
func buildCategoryBreakdown(expenses []*domain.Transaction, total decimal.Decimal) []domain.CategoryStat {
	byCategory := make(map[uuid.UUID]*domain.CategoryStat)
	order := make([]uuid.UUID, 0)

	for _, tx := range expenses {
		key := uuid.Nil
		if tx.Category != nil {
			key = tx.Category.ID
		}
		stat, ok := byCategory[key]
		if !ok {
			stat = &domain.CategoryStat{Name: domain.UncategorizedName, Color: domain.UncategorizedColor, Amount: decimal.Zero}
			if tx.Category != nil {
				id := tx.Category.ID
				stat.CategoryID = &id
				stat.Name = tx.Category.Name
				stat.Icon = tx.Category.Icon
				stat.Color = tx.Category.Color
			}
			byCategory[key] = stat
			order = append(order, key)
		}
		stat.Amount = stat.Amount.Add(tx.Amount)
	}

	stats := make([]domain.CategoryStat, 0, len(order))
	for _, key := range order {
		stat := byCategory[key]
		stat.Percent = decimal.Zero
		if total.IsPositive() {
			stat.Percent = stat.Amount.Mul(hundred).Div(total).Round(1)
		}
		stats = append(stats, *stat)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Amount.GreaterThan(stats[j].Amount)
	})
	if len(stats) > domain.TopCategoryCount {
		stats = stats[:domain.TopCategoryCount]
	}
	return stats
}

func sumTransactions(txs []*domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}
	return total
}

// EmptySummary is the dashboard shown when no owner is resolved
func EmptySummary(now time.Time) *domain.DashboardSummary {
	months := util.TrailingMonths(now, domain.TrendMonths)
	trend := make([]domain.TrendPoint, len(months))
	for i, m := range months {
		trend[i] = domain.TrendPoint{Month: m.Label, Year: m.Year, Expenses: decimal.Zero, Income: decimal.Zero}
	}

	return &domain.DashboardSummary{
		MonthlyExpenses:       decimal.Zero,
		MonthlyIncomeExpected: decimal.Zero,
		MonthlyIncomeReceived: decimal.Zero,
		RecurringMonthlyTotal: decimal.Zero,
		Trend:                 trend,
		Categories:            make([]domain.CategoryStat, 0),
		RecentExpenses:        make([]*domain.Transaction, 0),
		UpcomingRecurring:     make([]domain.RecurringView, 0),
	}
}
