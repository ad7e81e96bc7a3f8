package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/shopspring/decimal"
)

type reportingRepository struct{ x session }

func (r *reportingRepository) SumAssetBalances(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	r.x.read(func(st *state) {
		for _, a := range st.assets {
			total = total.Add(a.Balance)
		}
	})
	return total, nil
}

func (r *reportingRepository) SumLiabilityBalances(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	r.x.read(func(st *state) {
		for _, l := range st.liabilities {
			total = total.Add(l.Balance)
		}
	})
	return total, nil
}

func (r *reportingRepository) SumTransactionAmounts(_ context.Context, types []domain.TxnType, from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	r.x.read(func(st *state) {
		for _, t := range st.transactions {
			if slices.Contains(types, t.TxnType) && !t.TransactedAt.Before(from) && t.TransactedAt.Before(to) {
				total = total.Add(t.Amount)
			}
		}
	})
	return total, nil
}

func (r *reportingRepository) CategorySpend(_ context.Context, from, to time.Time) ([]domain.CategorySpend, error) {
	byCategory := make(map[string]*domain.CategorySpend)
	r.x.read(func(st *state) {
		for _, t := range st.transactions {
			if !t.TxnType.IsExpenseLike() || t.TransactedAt.Before(from) || !t.TransactedAt.Before(to) {
				continue
			}
			cs, ok := byCategory[t.Category]
			if !ok {
				cs = &domain.CategorySpend{Category: t.Category, Total: decimal.Zero}
				byCategory[t.Category] = cs
			}
			cs.Total = cs.Total.Add(t.Amount)
			cs.Count++
		}
	})

	out := make([]domain.CategorySpend, 0, len(byCategory))
	for _, cs := range byCategory {
		out = append(out, *cs)
	}
	slices.SortFunc(out, func(a, b domain.CategorySpend) int {
		return cmp.Or(b.Total.Cmp(a.Total), cmp.Compare(a.Category, b.Category))
	})
	return out, nil
}

func (r *reportingRepository) FirstTransactionAt(_ context.Context) (*time.Time, error) {
	var first *time.Time
	r.x.read(func(st *state) {
		for _, t := range st.transactions {
			if first == nil || t.TransactedAt.Before(*first) {
				at := t.TransactedAt
				first = &at
			}
		}
	})
	return first, nil
}

func (r *reportingRepository) MonthlyTotals(_ context.Context, from time.Time) ([]domain.MonthlyTotals, error) {
	byMonth := make(map[string]*domain.MonthlyTotals)
	r.x.read(func(st *state) {
		for _, t := range st.transactions {
			if t.TransactedAt.Before(from) {
				continue
			}
			key := t.TransactedAt.UTC().Format("2006-01")
			m, ok := byMonth[key]
			if !ok {
				m = &domain.MonthlyTotals{Month: key, Income: decimal.Zero, Expense: decimal.Zero}
				byMonth[key] = m
			}
			switch {
			case t.TxnType == domain.TxnIncome:
				m.Income = m.Income.Add(t.Amount)
			case t.TxnType.IsExpenseLike():
				m.Expense = m.Expense.Add(t.Amount)
			}
		}
	})

	out := make([]domain.MonthlyTotals, 0, len(byMonth))
	for _, m := range byMonth {
		out = append(out, *m)
	}
	slices.SortFunc(out, func(a, b domain.MonthlyTotals) int { return cmp.Compare(a.Month, b.Month) })
	return out, nil
}
