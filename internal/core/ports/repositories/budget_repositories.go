package repositories

import (
	"context"

	"github.com/SscSPs/personal_os/internal/core/domain"
)

// MonthlyBudgetRepository stores monthly budgets keyed by (year, month).
type MonthlyBudgetRepository interface {
	// FindMonthlyBudget returns nil when no budget exists for the period.
	FindMonthlyBudget(ctx context.Context, year, month int) (*domain.MonthlyBudget, error)
	// UpsertMonthlyBudget inserts or updates by (year, month). created reports whether a row was inserted.
	UpsertMonthlyBudget(ctx context.Context, budget domain.MonthlyBudget) (saved *domain.MonthlyBudget, created bool, err error)
	// ListMonthlyBudgets orders by year desc, month desc.
	ListMonthlyBudgets(ctx context.Context) ([]domain.MonthlyBudget, error)
}

// CategoryBudgetRepository stores category budgets keyed by (year, month, category).
type CategoryBudgetRepository interface {
	FindCategoryBudget(ctx context.Context, year, month int, category string) (*domain.CategoryBudget, error)
	UpsertCategoryBudget(ctx context.Context, budget domain.CategoryBudget) (saved *domain.CategoryBudget, created bool, err error)
	// ListCategoryBudgets filters by optional year and month, ordering by year desc, month desc, category asc.
	ListCategoryBudgets(ctx context.Context, year, month *int) ([]domain.CategoryBudget, error)
}

type BudgetRepositoryFacade interface {
	MonthlyBudgetRepository
	CategoryBudgetRepository
}
