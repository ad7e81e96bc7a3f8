package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/personal_os/internal/apperrors"
	"github.com/SscSPs/personal_os/internal/core/domain"
	portssvc "github.com/SscSPs/personal_os/internal/core/ports/services"
	"github.com/SscSPs/personal_os/internal/core/services"
	"github.com/SscSPs/personal_os/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) SumAssetBalances(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) SumLiabilityBalances(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) SumTransactionAmounts(ctx context.Context, types []domain.TxnType, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, types, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) CategorySpend(ctx context.Context, from, to time.Time) ([]domain.CategorySpend, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategorySpend), args.Error(1)
}

func (m *MockReportingRepository) FirstTransactionAt(ctx context.Context) (*time.Time, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockReportingRepository) MonthlyTotals(ctx context.Context, from time.Time) ([]domain.MonthlyTotals, error) {
	args := m.Called(ctx, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyTotals), args.Error(1)
}

func newReportingService(repo *MockReportingRepository) portssvc.ReportingService {
	return services.NewReportingService(repo, services.WithClock(func() time.Time { return fixedNow }))
}

func TestGetDashboard(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportingRepository)
	monthStart := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	repo.On("SumAssetBalances", ctx).Return(dec("5000"), nil).Once()
	repo.On("SumLiabilityBalances", ctx).Return(dec("1500"), nil).Once()
	repo.On("SumTransactionAmounts", ctx, []domain.TxnType{domain.TxnIncome}, monthStart, fixedNow).Return(dec("1000"), nil).Once()
	repo.On("SumTransactionAmounts", ctx, []domain.TxnType{domain.TxnExpense, domain.TxnLiabilityPayment}, monthStart, fixedNow).Return(dec("250"), nil).Once()

	got, err := newReportingService(repo).GetDashboard(ctx)
	require.NoError(t, err)
	assert.True(t, got.NetWorth.Equal(dec("3500")))
	assert.True(t, got.SavingsThisMonth.Equal(dec("750")))
	assert.InDelta(t, 75.0, got.SavingsRate, 1e-9)
	repo.AssertExpectations(t)
}

func TestGetDashboard_ZeroIncomeHasZeroRate(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportingRepository)
	repo.On("SumAssetBalances", ctx).Return(decimal.Zero, nil)
	repo.On("SumLiabilityBalances", ctx).Return(decimal.Zero, nil)
	repo.On("SumTransactionAmounts", ctx, mock.Anything, mock.Anything, mock.Anything).Return(decimal.Zero, nil)

	got, err := newReportingService(repo).GetDashboard(ctx)
	require.NoError(t, err)
	assert.Zero(t, got.SavingsRate)
}

func TestGetDashboard_PropagatesRepositoryError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportingRepository)
	repo.On("SumAssetBalances", ctx).Return(decimal.Zero, assert.AnError)

	_, err := newReportingService(repo).GetDashboard(ctx)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestGetCategorySpend_ValidatesMonth(t *testing.T) {
	repo := new(MockReportingRepository)
	_, err := newReportingService(repo).GetCategorySpend(context.Background(), 2024, 13)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "CategorySpend", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetCashflow_NoTransactions(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportingRepository)
	repo.On("FirstTransactionAt", ctx).Return(nil, nil)

	points, err := newReportingService(repo).GetCashflow(ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, points)
	assert.Empty(t, points)
}

func TestBuildCashflowSeries_FillsGaps(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	totals := []domain.MonthlyTotals{
		{Month: "2024-01", Income: dec("100"), Expense: dec("40")},
		{Month: "2024-04", Income: dec("10"), Expense: dec("25")},
	}

	points, err := services.BuildCashflowSeries(start, end, totals)
	require.NoError(t, err)
	require.Len(t, points, 4)

	months := make([]string, len(points))
	for i, p := range points {
		months[i] = p.Month
	}
	assert.Equal(t, []string{"2024-01", "2024-02", "2024-03", "2024-04"}, months)
	assert.True(t, points[0].Savings.Equal(dec("60")))
	assert.True(t, points[1].Income.IsZero())
	assert.True(t, points[2].Expense.IsZero())
	assert.True(t, points[3].Savings.Equal(dec("-15")))
}

func TestBuildCashflowSeries_RejectsInvertedRange(t *testing.T) {
	_, err := services.BuildCashflowSeries(fixedNow, fixedNow.AddDate(0, -2, 0), nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCashflowStart(t *testing.T) {
	end := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	first := time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		first time.Time
		lastN *int
		want  time.Time
	}{
		{name: "no window starts at first month", first: first, want: first},
		{name: "window later than first month", first: first, lastN: ptr(3), want: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)},
		{name: "window earlier than first month", first: first, lastN: ptr(120), want: first},
		{name: "window clamped to at least one month", first: first, lastN: ptr(-4), want: end},
		{name: "series capped at 240 months", first: time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC), want: time.Date(2004, time.July, 1, 0, 0, 0, 0, time.UTC)},
		{name: "future first month", first: end.AddDate(0, 2, 0), want: end},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.CashflowStart(tt.first, end, tt.lastN))
		})
	}
}

type ReportingServiceTestSuite struct {
	ledgerSuite
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

func (s *ReportingServiceTestSuite) TestCashflowIsContinuous() {
	s.createAsset("Wallet", "0", true)
	for _, at := range []time.Time{
		time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC),
	} {
		_, err := s.svc.Transaction.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
			TxnType:      domain.TxnIncome,
			Amount:       dec("100"),
			Category:     "Salary",
			TransactedAt: at,
		})
		s.Require().NoError(err)
	}

	points, err := s.svc.Reporting.GetCashflow(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Len(points, 5)
	s.Equal("2024-02", points[0].Month)
	s.True(points[1].Income.IsZero())
	s.True(points[2].Income.IsZero())
	s.True(points[3].Income.Equal(dec("100")))
	s.Equal("2024-06", points[4].Month)

	window, err := s.svc.Reporting.GetCashflow(s.ctx, ptr(2))
	s.Require().NoError(err)
	s.Require().Len(window, 2)
	s.Equal("2024-05", window[0].Month)
}

func (s *ReportingServiceTestSuite) TestCategorySpendCountsExpenseLikeOnly() {
	card := s.createLiability("Card", "500")
	s.createAsset("Wallet", "1000", true)

	reqs := []dto.CreateTransactionRequest{
		{TxnType: domain.TxnExpense, Amount: dec("40"), Category: "Food", TransactedAt: fixedNow},
		{TxnType: domain.TxnExpense, Amount: dec("10"), Category: "Food", TransactedAt: fixedNow},
		{TxnType: domain.TxnLiabilityPayment, Amount: dec("100"), Category: "Card", TransactedAt: fixedNow, LiabilityID: &card.ID},
		{TxnType: domain.TxnIncome, Amount: dec("999"), Category: "Food", TransactedAt: fixedNow},
		{TxnType: domain.TxnExpense, Amount: dec("5"), Category: "Food", TransactedAt: fixedNow.AddDate(0, -1, 0)},
	}
	for _, req := range reqs {
		_, err := s.svc.Transaction.CreateTransaction(s.ctx, req)
		s.Require().NoError(err)
	}

	rows, err := s.svc.Reporting.GetCategorySpend(s.ctx, 2024, 6)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("Card", rows[0].Category)
	s.True(rows[0].Total.Equal(dec("100")))
	s.Equal("Food", rows[1].Category)
	s.True(rows[1].Total.Equal(dec("50")))
	s.Equal(2, rows[1].Count)
}

func (s *ReportingServiceTestSuite) TestDashboardIgnoresFutureDatedTransactions() {
	s.createAsset("Wallet", "0", true)
	for _, req := range []dto.CreateTransactionRequest{
		{TxnType: domain.TxnIncome, Amount: dec("300"), Category: "Salary", TransactedAt: fixedNow.Add(-time.Hour)},
		{TxnType: domain.TxnIncome, Amount: dec("500"), Category: "Salary", TransactedAt: time.Date(2024, time.June, 25, 9, 0, 0, 0, time.UTC)},
		{TxnType: domain.TxnExpense, Amount: dec("20"), Category: "Food", TransactedAt: fixedNow.Add(time.Minute)},
	} {
		_, err := s.svc.Transaction.CreateTransaction(s.ctx, req)
		s.Require().NoError(err)
	}

	got, err := s.svc.Reporting.GetDashboard(s.ctx)
	s.Require().NoError(err)
	s.True(got.IncomeThisMonth.Equal(dec("300")), "income %s", got.IncomeThisMonth)
	s.True(got.ExpensesThisMonth.IsZero(), "expenses %s", got.ExpensesThisMonth)
	s.True(got.TotalAssets.Equal(dec("780")))
}
