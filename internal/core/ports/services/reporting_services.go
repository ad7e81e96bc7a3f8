package services

import (
	"context"

	"github.com/SscSPs/personal_os/internal/core/domain"
)

// ReportingService defines the read-only finance analytics.
type ReportingService interface {
	GetDashboard(ctx context.Context) (*domain.Dashboard, error)
	GetCategorySpend(ctx context.Context, year, month int) ([]domain.CategorySpend, error)
	// GetCashflow returns a gap-free monthly series ending at the current month.
	// lastNMonths is optional and clamped to [1, 240].
	GetCashflow(ctx context.Context, lastNMonths *int) ([]domain.CashflowPoint, error)
}
