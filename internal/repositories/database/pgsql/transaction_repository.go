package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/personal_os/internal/apperrors"
	"github.com/SscSPs/personal_os/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_os/internal/core/ports/repositories"
	"github.com/SscSPs/personal_os/internal/models"
	"github.com/SscSPs/personal_os/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `id, txn_type, amount, category, payment_mode, description, transacted_at,
	from_asset_id, to_asset_id, liability_id, recurring_id, created_at, updated_at`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(base BaseRepository) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: base}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, txnID int64) (*domain.Transaction, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+transactionColumns+` FROM finance_transactions WHERE id = $1`, txnID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction %d: %w", txnID, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("transaction %d", txnID)
		}
		return nil, fmt.Errorf("failed to scan transaction %d: %w", txnID, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.StartDate != nil {
		add("transacted_at >= $%d", domain.DateOnly(*filter.StartDate))
	}
	if filter.EndDate != nil {
		// end date is inclusive of the whole day
		add("transacted_at < $%d", domain.DateOnly(*filter.EndDate).AddDate(0, 0, 1))
	}
	if filter.TxnType != "" {
		add("txn_type = $%d", string(filter.TxnType))
	}
	if filter.Category != "" {
		add("category = $%d", filter.Category)
	}

	query := `SELECT ` + transactionColumns + ` FROM finance_transactions`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY transacted_at DESC, id DESC`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}
	return mapping.ToDomainTransactionSlice(items), nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO finance_transactions (txn_type, amount, category, payment_mode, description, transacted_at,
			from_asset_id, to_asset_id, liability_id, recurring_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id;
	`
	err := r.DB.QueryRow(ctx, query,
		string(txn.TxnType),
		txn.Amount,
		txn.Category,
		txn.PaymentMode,
		txn.Description,
		txn.TransactedAt,
		txn.FromAssetID,
		txn.ToAssetID,
		txn.LiabilityID,
		txn.RecurringID,
		txn.CreatedAt,
	).Scan(&txn.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperrors.InvalidEffectf("referenced account does not exist")
		}
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	return &txn, nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		UPDATE finance_transactions
		SET txn_type = $2, amount = $3, category = $4, payment_mode = $5, description = $6, transacted_at = $7,
			from_asset_id = $8, to_asset_id = $9, liability_id = $10, recurring_id = $11, updated_at = $12
		WHERE id = $1;
	`
	tag, err := r.DB.Exec(ctx, query,
		txn.ID,
		string(txn.TxnType),
		txn.Amount,
		txn.Category,
		txn.PaymentMode,
		txn.Description,
		txn.TransactedAt,
		txn.FromAssetID,
		txn.ToAssetID,
		txn.LiabilityID,
		txn.RecurringID,
		txn.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.InvalidEffectf("referenced account does not exist")
		}
		return fmt.Errorf("failed to update transaction %d: %w", txn.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundf("transaction %d", txn.ID)
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, txnID int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM finance_transactions WHERE id = $1`, txnID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", txnID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundf("transaction %d", txnID)
	}
	return nil
}
