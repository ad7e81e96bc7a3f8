package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/personal_os/internal/apperrors"
	"github.com/SscSPs/personal_os/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_os/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_os/internal/core/ports/services"
	"github.com/SscSPs/personal_os/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// MaxCashflowMonths bounds the length of a cash-flow series.
const MaxCashflowMonths = 240

const monthKeyLayout = "2006-01"

var expenseLikeTypes = []domain.TxnType{domain.TxnExpense, domain.TxnLiabilityPayment}

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, opts ...ServiceOption) portssvc.ReportingService {
	return &reportingService{
		BaseService:   newBaseService(opts...),
		reportingRepo: repo,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) GetDashboard(ctx context.Context) (*domain.Dashboard, error) {
	now := s.Now()
	monthStart := domain.MonthStart(now)

	assets, err := s.reportingRepo.SumAssetBalances(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum asset balances")
		return nil, err
	}
	liabilities, err := s.reportingRepo.SumLiabilityBalances(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum liability balances")
		return nil, err
	}
	income, err := s.reportingRepo.SumTransactionAmounts(ctx, []domain.TxnType{domain.TxnIncome}, monthStart, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum income")
		return nil, err
	}
	expenses, err := s.reportingRepo.SumTransactionAmounts(ctx, expenseLikeTypes, monthStart, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum expenses")
		return nil, err
	}

	savings := income.Sub(expenses)
	rate := 0.0
	if !income.IsZero() {
		rate = savings.Div(income).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}

	return &domain.Dashboard{
		NetWorth:          assets.Sub(liabilities),
		TotalAssets:       assets,
		TotalLiabilities:  liabilities,
		IncomeThisMonth:   income,
		ExpensesThisMonth: expenses,
		SavingsThisMonth:  savings,
		SavingsRate:       rate,
	}, nil
}

func (s *reportingService) GetCategorySpend(ctx context.Context, year, month int) ([]domain.CategorySpend, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	rows, err := s.reportingRepo.CategorySpend(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute category spend",
			slog.Int("year", year), slog.Int("month", month))
		return nil, err
	}
	return rows, nil
}

func (s *reportingService) GetCashflow(ctx context.Context, lastNMonths *int) ([]domain.CashflowPoint, error) {
	first, err := s.reportingRepo.FirstTransactionAt(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to find first transaction")
		return nil, err
	}
	if first == nil {
		return []domain.CashflowPoint{}, nil
	}

	end := domain.MonthStart(s.Now())
	start := CashflowStart(domain.MonthStart(*first), end, lastNMonths)

	totals, err := s.reportingRepo.MonthlyTotals(ctx, start)
	if err != nil {
		s.LogError(ctx, err, "Failed to load monthly totals", slog.String("from", start.Format(monthKeyLayout)))
		return nil, err
	}
	return BuildCashflowSeries(start, end, totals)
}

// CashflowStart picks the first month of the series: the first transaction
// month, or the start of the requested window when that is later. The
// series never exceeds MaxCashflowMonths and never starts after end.
func CashflowStart(firstMonth, end time.Time, lastNMonths *int) time.Time {
	start := firstMonth
	if lastNMonths != nil {
		n := pagination.Clamp(*lastNMonths, 1, MaxCashflowMonths)
		if window := end.AddDate(0, -(n - 1), 0); window.After(start) {
			start = window
		}
	}
	if earliest := end.AddDate(0, -(MaxCashflowMonths - 1), 0); start.Before(earliest) {
		start = earliest
	}
	if start.After(end) {
		start = end
	}
	return start
}

// BuildCashflowSeries emits one point per month from start through end
// inclusive, filling months without transactions with zeros.
func BuildCashflowSeries(start, end time.Time, totals []domain.MonthlyTotals) ([]domain.CashflowPoint, error) {
	start, end = domain.MonthStart(start), domain.MonthStart(end)
	if start.After(end) {
		return nil, apperrors.Validationf("cash-flow start %s is after end %s",
			start.Format(monthKeyLayout), end.Format(monthKeyLayout))
	}

	byMonth := make(map[string]domain.MonthlyTotals, len(totals))
	for _, t := range totals {
		byMonth[t.Month] = t
	}

	var points []domain.CashflowPoint
	for m := start; !m.After(end); m = m.AddDate(0, 1, 0) {
		key := m.Format(monthKeyLayout)
		income, expense := decimal.Zero, decimal.Zero
		if t, ok := byMonth[key]; ok {
			income, expense = t.Income, t.Expense
		}
		points = append(points, domain.CashflowPoint{
			Month:   key,
			Income:  income,
			Expense: expense,
			Savings: income.Sub(expense),
		})
	}
	return points, nil
}
