package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines the read-only aggregates used by analytics.
type ReportingRepository interface {
	// SumAssetBalances totals all asset balances.
	SumAssetBalances(ctx context.Context) (decimal.Decimal, error)

	// SumLiabilityBalances totals all liability balances.
	SumLiabilityBalances(ctx context.Context) (decimal.Decimal, error)

	// SumTransactionAmounts totals transactions of the given types with transacted_at in [from, to).
	SumTransactionAmounts(ctx context.Context, types []domain.TxnType, from, to time.Time) (decimal.Decimal, error)

	// CategorySpend groups expense-like transactions in [from, to) by category, largest total first.
	CategorySpend(ctx context.Context, from, to time.Time) ([]domain.CategorySpend, error)

	// FirstTransactionAt returns the earliest transacted_at, or nil when there are no transactions.
	FirstTransactionAt(ctx context.Context) (*time.Time, error)

	// MonthlyTotals returns per-month ("YYYY-MM", UTC) income and expense-like sums from the given instant.
	MonthlyTotals(ctx context.Context, from time.Time) ([]domain.MonthlyTotals, error)
}
