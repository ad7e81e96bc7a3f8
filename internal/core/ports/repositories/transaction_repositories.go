package repositories

import (
	"context"

	"github.com/SscSPs/personal_os/internal/core/domain"
)

// TransactionReader defines read operations for finance transactions
type TransactionReader interface {
	// FindTransactionByID returns apperrors.ErrNotFound when the transaction does not exist.
	FindTransactionByID(ctx context.Context, txnID int64) (*domain.Transaction, error)

	// ListTransactions returns matching transactions, newest transacted_at first (ties by id desc).
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for finance transactions
type TransactionWriter interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	DeleteTransaction(ctx context.Context, txnID int64) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
