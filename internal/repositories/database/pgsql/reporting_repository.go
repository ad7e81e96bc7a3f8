package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/personal_os/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_os/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(base BaseRepository) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: base}
}

func (r *reportingRepository) SumAssetBalances(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.DB.QueryRow(ctx, `SELECT COALESCE(SUM(balance), 0) FROM finance_assets`).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("error summing asset balances: %w", err)
	}
	return total, nil
}

func (r *reportingRepository) SumLiabilityBalances(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.DB.QueryRow(ctx, `SELECT COALESCE(SUM(balance), 0) FROM finance_liabilities`).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("error summing liability balances: %w", err)
	}
	return total, nil
}

func (r *reportingRepository) SumTransactionAmounts(ctx context.Context, types []domain.TxnType, from, to time.Time) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM finance_transactions WHERE txn_type = ANY($1) AND transacted_at >= $2 AND transacted_at < $3`
	var total decimal.Decimal
	if err := r.DB.QueryRow(ctx, query, txnTypeStrings(types), from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("error summing transaction amounts: %w", err)
	}
	return total, nil
}

func (r *reportingRepository) CategorySpend(ctx context.Context, from, to time.Time) ([]domain.CategorySpend, error) {
	query := `
		SELECT category, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count
		FROM finance_transactions
		WHERE txn_type = ANY($1) AND transacted_at >= $2 AND transacted_at < $3
		GROUP BY category
		ORDER BY total DESC, category ASC
	`
	rows, err := r.DB.Query(ctx, query, txnTypeStrings(expenseLikeTypes()), from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying category spend: %w", err)
	}

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CategorySpend, error) {
		var cs domain.CategorySpend
		err := row.Scan(&cs.Category, &cs.Total, &cs.Count)
		return cs, err
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning category spend rows: %w", err)
	}
	return result, nil
}

func (r *reportingRepository) FirstTransactionAt(ctx context.Context) (*time.Time, error) {
	var first *time.Time
	if err := r.DB.QueryRow(ctx, `SELECT MIN(transacted_at) FROM finance_transactions`).Scan(&first); err != nil {
		return nil, fmt.Errorf("error querying first transaction: %w", err)
	}
	return first, nil
}

func (r *reportingRepository) MonthlyTotals(ctx context.Context, from time.Time) ([]domain.MonthlyTotals, error) {
	query := `
		SELECT
			to_char(transacted_at AT TIME ZONE 'UTC', 'YYYY-MM') AS month,
			COALESCE(SUM(CASE WHEN txn_type = 'income' THEN amount ELSE 0 END), 0) AS income,
			COALESCE(SUM(CASE WHEN txn_type = ANY($2) THEN amount ELSE 0 END), 0) AS expense
		FROM finance_transactions
		WHERE transacted_at >= $1
		GROUP BY month
		ORDER BY month ASC
	`
	rows, err := r.DB.Query(ctx, query, from, txnTypeStrings(expenseLikeTypes()))
	if err != nil {
		return nil, fmt.Errorf("error querying monthly totals: %w", err)
	}

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MonthlyTotals, error) {
		var m domain.MonthlyTotals
		err := row.Scan(&m.Month, &m.Income, &m.Expense)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning monthly totals: %w", err)
	}
	return result, nil
}

func expenseLikeTypes() []domain.TxnType {
	var out []domain.TxnType
	for _, t := range domain.TxnTypes {
		if t.IsExpenseLike() {
			out = append(out, t)
		}
	}
	return out
}

func txnTypeStrings(types []domain.TxnType) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}
