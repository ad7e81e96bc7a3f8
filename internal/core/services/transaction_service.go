package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/personal_os/internal/apperrors"
	"github.com/SscSPs/personal_os/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_os/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_os/internal/core/ports/services"
	"github.com/SscSPs/personal_os/internal/dto"
	"github.com/SscSPs/personal_os/internal/utils/accounting"
	"github.com/SscSPs/personal_os/internal/utils/mapping"
)

// transactionService implements the TransactionSvcFacade interface. Every
// write runs in one unit of work so that balances, the transaction row and
// the audit entry change together or not at all.
type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
	uow     portsrepo.UnitOfWork
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, uow portsrepo.UnitOfWork, opts ...ServiceOption) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService: newBaseService(opts...),
		txnRepo:     repo,
		uow:         uow,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) GetTransactionByID(ctx context.Context, txnID int64) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, txnID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.Int64("transaction_id", txnID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if filter.TxnType != "" && !filter.TxnType.IsValid() {
		return nil, apperrors.Validationf("invalid txn_type %q", filter.TxnType)
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, apperrors.Validationf("end_date must not be before start_date")
	}

	txns, err := s.txnRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, err
	}
	return txns, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, apperrors.Validationf("category is required")
	}

	now := s.Now()
	txn := domain.Transaction{
		TxnType:      req.TxnType,
		Amount:       req.Amount,
		Category:     category,
		PaymentMode:  req.PaymentMode,
		Description:  req.Description,
		TransactedAt: req.TransactedAt.UTC(),
		AccountRefs: domain.AccountRefs{
			FromAssetID: req.FromAssetID,
			ToAssetID:   req.ToAssetID,
			LiabilityID: req.LiabilityID,
		},
		RecurringID: req.RecurringID,
	}

	var created *domain.Transaction
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		created, err = postTransaction(ctx, repos, txn, now, s.DefaultCurrency())
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to create transaction", slog.String("txn_type", string(req.TxnType)))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created",
		slog.Int64("transaction_id", created.ID),
		slog.String("txn_type", string(created.TxnType)),
		slog.String("amount", created.Amount.String()))
	return created, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, txnID int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	if req.TxnType.IsNull() || req.Amount.IsNull() || req.Category.IsNull() || req.TransactedAt.IsNull() {
		return nil, apperrors.Validationf("txn_type, amount, category and transacted_at cannot be null")
	}

	now := s.Now()
	var updated *domain.Transaction
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		stored, err := repos.TransactionRepo.FindTransactionByID(ctx, txnID)
		if err != nil {
			return err
		}
		before := mapping.ToTransactionSnapshot(*stored)

		reverse, err := accounting.ComputeEffect(stored.TxnType, stored.Amount, stored.AccountRefs, accounting.Reverse)
		if err != nil {
			return err
		}

		next := mergeTransactionPatch(*stored, req)
		if !next.TxnType.IsValid() {
			return apperrors.InvalidEffectf("invalid txn_type %q", next.TxnType)
		}
		if next.Category == "" {
			return apperrors.Validationf("category is required")
		}
		if err := resolveDefaultAccounts(ctx, repos, next.TxnType, &next.AccountRefs, now, s.DefaultCurrency()); err != nil {
			return err
		}

		apply, err := accounting.ComputeEffect(next.TxnType, next.Amount, next.AccountRefs, accounting.Apply)
		if err != nil {
			return err
		}
		if err := applyDeltas(ctx, repos, now, reverse, apply); err != nil {
			return err
		}

		next.Touch(now)
		if err := repos.TransactionRepo.UpdateTransaction(ctx, next); err != nil {
			return err
		}
		updated = &next
		return recordAudit(ctx, repos, domain.EntityTransaction, txnID, domain.AuditUpdated,
			before, mapping.ToTransactionSnapshot(next), now)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to update transaction", slog.Int64("transaction_id", txnID))
		}
		return nil, err
	}
	return updated, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, txnID int64) error {
	now := s.Now()
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		stored, err := repos.TransactionRepo.FindTransactionByID(ctx, txnID)
		if err != nil {
			return err
		}

		reverse, err := accounting.ComputeEffect(stored.TxnType, stored.Amount, stored.AccountRefs, accounting.Reverse)
		if err != nil {
			return err
		}
		if err := applyDeltas(ctx, repos, now, reverse); err != nil {
			return err
		}
		if err := repos.TransactionRepo.DeleteTransaction(ctx, txnID); err != nil {
			return err
		}
		return recordAudit(ctx, repos, domain.EntityTransaction, txnID, domain.AuditDeleted,
			mapping.ToTransactionSnapshot(*stored), nil, now)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction", slog.Int64("transaction_id", txnID))
		}
		return err
	}

	s.LogInfo(ctx, "Transaction deleted", slog.Int64("transaction_id", txnID))
	return nil
}

// mergeTransactionPatch overlays the present fields of req on stored.
// Explicit nulls clear nullable fields.
func mergeTransactionPatch(stored domain.Transaction, req dto.UpdateTransactionRequest) domain.Transaction {
	next := stored
	next.TxnType = *req.TxnType.Merge(&stored.TxnType)
	next.Amount = *req.Amount.Merge(&stored.Amount)
	next.Category = strings.TrimSpace(*req.Category.Merge(&stored.Category))
	next.PaymentMode = req.PaymentMode.Merge(stored.PaymentMode)
	next.Description = req.Description.Merge(stored.Description)
	next.TransactedAt = req.TransactedAt.Merge(&stored.TransactedAt).UTC()
	next.FromAssetID = req.FromAssetID.Merge(stored.FromAssetID)
	next.ToAssetID = req.ToAssetID.Merge(stored.ToAssetID)
	next.LiabilityID = req.LiabilityID.Merge(stored.LiabilityID)
	next.RecurringID = req.RecurringID.Merge(stored.RecurringID)
	return next
}
