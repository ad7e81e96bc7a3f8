package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/personal_os/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_os/internal/core/ports/repositories"
	"github.com/SscSPs/personal_os/internal/models"
	"github.com/SscSPs/personal_os/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const (
	monthlyBudgetColumns  = `id, year, month, total_budget, rollover_unused, created_at, updated_at`
	categoryBudgetColumns = `id, year, month, category, limit_amount, rollover_unused, created_at, updated_at`
)

// upsertedMonthlyBudget carries the (xmax = 0) flag Postgres reports for freshly inserted rows.
type upsertedMonthlyBudget struct {
	models.MonthlyBudget
	Inserted bool `db:"inserted"`
}

type upsertedCategoryBudget struct {
	models.CategoryBudget
	Inserted bool `db:"inserted"`
}

type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(base BaseRepository) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{BaseRepository: base}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

func (r *PgxBudgetRepository) FindMonthlyBudget(ctx context.Context, year, month int) (*domain.MonthlyBudget, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+monthlyBudgetColumns+` FROM finance_monthly_budgets WHERE year = $1 AND month = $2`, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly budget %d-%02d: %w", year, month, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.MonthlyBudget])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan monthly budget: %w", err)
	}
	b := mapping.ToDomainMonthlyBudget(m)
	return &b, nil
}

// UpsertMonthlyBudget treats budget.CreatedAt as "now": conflicting rows keep
// their original created_at and get it as updated_at.
func (r *PgxBudgetRepository) UpsertMonthlyBudget(ctx context.Context, budget domain.MonthlyBudget) (*domain.MonthlyBudget, bool, error) {
	query := `
		INSERT INTO finance_monthly_budgets (year, month, total_budget, rollover_unused, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (year, month) DO UPDATE
		SET total_budget = EXCLUDED.total_budget,
			rollover_unused = EXCLUDED.rollover_unused,
			updated_at = EXCLUDED.created_at
		RETURNING ` + monthlyBudgetColumns + `, (xmax = 0) AS inserted;
	`
	rows, err := r.DB.Query(ctx, query, budget.Year, budget.Month, budget.TotalBudget, budget.RolloverUnused, budget.CreatedAt)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert monthly budget %d-%02d: %w", budget.Year, budget.Month, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[upsertedMonthlyBudget])
	if err != nil {
		return nil, false, fmt.Errorf("failed to scan upserted monthly budget: %w", err)
	}
	saved := mapping.ToDomainMonthlyBudget(m.MonthlyBudget)
	return &saved, m.Inserted, nil
}

func (r *PgxBudgetRepository) ListMonthlyBudgets(ctx context.Context) ([]domain.MonthlyBudget, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+monthlyBudgetColumns+` FROM finance_monthly_budgets ORDER BY year DESC, month DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly budgets: %w", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.MonthlyBudget])
	if err != nil {
		return nil, fmt.Errorf("failed to scan monthly budgets: %w", err)
	}
	return mapping.ToDomainMonthlyBudgetSlice(items), nil
}

func (r *PgxBudgetRepository) FindCategoryBudget(ctx context.Context, year, month int, category string) (*domain.CategoryBudget, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+categoryBudgetColumns+` FROM finance_category_budgets WHERE year = $1 AND month = $2 AND category = $3`,
		year, month, category)
	if err != nil {
		return nil, fmt.Errorf("failed to query category budget: %w", err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.CategoryBudget])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan category budget: %w", err)
	}
	b := mapping.ToDomainCategoryBudget(m)
	return &b, nil
}

func (r *PgxBudgetRepository) UpsertCategoryBudget(ctx context.Context, budget domain.CategoryBudget) (*domain.CategoryBudget, bool, error) {
	query := `
		INSERT INTO finance_category_budgets (year, month, category, limit_amount, rollover_unused, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (year, month, category) DO UPDATE
		SET limit_amount = EXCLUDED.limit_amount,
			rollover_unused = EXCLUDED.rollover_unused,
			updated_at = EXCLUDED.created_at
		RETURNING ` + categoryBudgetColumns + `, (xmax = 0) AS inserted;
	`
	rows, err := r.DB.Query(ctx, query,
		budget.Year, budget.Month, budget.Category, budget.LimitAmount, budget.RolloverUnused, budget.CreatedAt)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert category budget %q: %w", budget.Category, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[upsertedCategoryBudget])
	if err != nil {
		return nil, false, fmt.Errorf("failed to scan upserted category budget: %w", err)
	}
	saved := mapping.ToDomainCategoryBudget(m.CategoryBudget)
	return &saved, m.Inserted, nil
}

func (r *PgxBudgetRepository) ListCategoryBudgets(ctx context.Context, year, month *int) ([]domain.CategoryBudget, error) {
	query := `
		SELECT ` + categoryBudgetColumns + `
		FROM finance_category_budgets
		WHERE ($1::int IS NULL OR year = $1) AND ($2::int IS NULL OR month = $2)
		ORDER BY year DESC, month DESC, category ASC
	`
	rows, err := r.DB.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query category budgets: %w", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.CategoryBudget])
	if err != nil {
		return nil, fmt.Errorf("failed to scan category budgets: %w", err)
	}
	return mapping.ToDomainCategoryBudgetSlice(items), nil
}
