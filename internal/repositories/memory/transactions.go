package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/SscSPs/personal_os/internal/apperrors"
	"github.com/SscSPs/personal_os/internal/core/domain"
)

type transactionRepository struct{ x session }

func (r *transactionRepository) FindTransactionByID(_ context.Context, txnID int64) (*domain.Transaction, error) {
	var (
		t  domain.Transaction
		ok bool
	)
	r.x.read(func(st *state) { t, ok = st.transactions[txnID] })
	if !ok {
		return nil, apperrors.NotFoundf("transaction %d", txnID)
	}
	return &t, nil
}

func (r *transactionRepository) ListTransactions(_ context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var out []domain.Transaction
	r.x.read(func(st *state) {
		for _, t := range st.transactions {
			if matchesFilter(t, filter) {
				out = append(out, t)
			}
		}
	})
	slices.SortFunc(out, func(a, b domain.Transaction) int {
		return cmp.Or(b.TransactedAt.Compare(a.TransactedAt), cmp.Compare(b.ID, a.ID))
	})
	return out, nil
}

// matchesFilter treats EndDate as an inclusive calendar day.
func matchesFilter(t domain.Transaction, f domain.TransactionFilter) bool {
	if f.StartDate != nil && t.TransactedAt.Before(domain.DateOnly(*f.StartDate)) {
		return false
	}
	if f.EndDate != nil && !t.TransactedAt.Before(domain.DateOnly(*f.EndDate).AddDate(0, 0, 1)) {
		return false
	}
	if f.TxnType != "" && t.TxnType != f.TxnType {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	return true
}

func (r *transactionRepository) SaveTransaction(_ context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	_ = r.x.write(func(st *state) error {
		txn.ID = st.nextID()
		st.transactions[txn.ID] = txn
		return nil
	})
	return &txn, nil
}

func (r *transactionRepository) UpdateTransaction(_ context.Context, txn domain.Transaction) error {
	return r.x.write(func(st *state) error {
		cur, ok := st.transactions[txn.ID]
		if !ok {
			return apperrors.NotFoundf("transaction %d", txn.ID)
		}
		txn.CreatedAt = cur.CreatedAt
		st.transactions[txn.ID] = txn
		return nil
	})
}

func (r *transactionRepository) DeleteTransaction(_ context.Context, txnID int64) error {
	return r.x.write(func(st *state) error {
		if _, ok := st.transactions[txnID]; !ok {
			return apperrors.NotFoundf("transaction %d", txnID)
		}
		delete(st.transactions, txnID)
		return nil
	})
}

type auditRepository struct{ x session }

func (r *auditRepository) SaveAuditEntry(_ context.Context, entry domain.AuditLogEntry) error {
	return r.x.write(func(st *state) error {
		entry.ID = st.nextID()
		st.audit = append(st.audit, entry)
		return nil
	})
}

func (r *auditRepository) ListAuditEntries(_ context.Context, filter domain.AuditFilter) ([]domain.AuditLogEntry, error) {
	var out []domain.AuditLogEntry
	r.x.read(func(st *state) {
		for _, e := range st.audit {
			if filter.EntityType != "" && e.EntityType != filter.EntityType {
				continue
			}
			if filter.EntityID != nil && (e.EntityID == nil || *e.EntityID != *filter.EntityID) {
				continue
			}
			out = append(out, e)
		}
	})
	slices.SortFunc(out, func(a, b domain.AuditLogEntry) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ID, a.ID))
	})
	return page(out, filter.Limit, filter.Offset), nil
}

// page applies limit/offset the way LIMIT/OFFSET would; a limit <= 0 means no limit.
func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[max(offset, 0):]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
