package dto

import (
	"time"

	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to post a transaction.
// Missing default accounts are resolved to the primary asset by the service.
type CreateTransactionRequest struct {
	TxnType      domain.TxnType  `json:"txn_type" binding:"required,txntype"`
	Amount       decimal.Decimal `json:"amount" binding:"gt=0"`
	Category     string          `json:"category" binding:"required,max=80"`
	PaymentMode  *string         `json:"payment_mode" binding:"omitempty,max=40"`
	Description  *string         `json:"description"`
	TransactedAt time.Time       `json:"transacted_at" binding:"required"`
	FromAssetID  *int64          `json:"from_asset_id" binding:"omitempty,gt=0"`
	ToAssetID    *int64          `json:"to_asset_id" binding:"omitempty,gt=0"`
	LiabilityID  *int64          `json:"liability_id" binding:"omitempty,gt=0"`
	RecurringID  *int64          `json:"recurring_id" binding:"omitempty,gt=0"`
}

// UpdateTransactionRequest is a partial update. An explicit null clears a
// nullable field; absent fields keep their stored values.
type UpdateTransactionRequest struct {
	TxnType      Optional[domain.TxnType]  `json:"txn_type"`
	Amount       Optional[decimal.Decimal] `json:"amount"`
	Category     Optional[string]          `json:"category"`
	PaymentMode  Optional[string]          `json:"payment_mode"`
	Description  Optional[string]          `json:"description"`
	TransactedAt Optional[time.Time]       `json:"transacted_at"`
	FromAssetID  Optional[int64]           `json:"from_asset_id"`
	ToAssetID    Optional[int64]           `json:"to_asset_id"`
	LiabilityID  Optional[int64]           `json:"liability_id"`
	RecurringID  Optional[int64]           `json:"recurring_id"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	TxnType   string `form:"txn_type"`
	Category  string `form:"category"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID           int64           `json:"id"`
	TxnType      domain.TxnType  `json:"txn_type"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category"`
	PaymentMode  *string         `json:"payment_mode"`
	Description  *string         `json:"description"`
	TransactedAt time.Time       `json:"transacted_at"`
	FromAssetID  *int64          `json:"from_asset_id" binding:"omitempty,gt=0"`
	ToAssetID    *int64          `json:"to_asset_id" binding:"omitempty,gt=0"`
	LiabilityID  *int64          `json:"liability_id" binding:"omitempty,gt=0"`
	RecurringID  *int64          `json:"recurring_id" binding:"omitempty,gt=0"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    *time.Time      `json:"updated_at"`
}

func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		TxnType:      t.TxnType,
		Amount:       t.Amount,
		Category:     t.Category,
		PaymentMode:  t.PaymentMode,
		Description:  t.Description,
		TransactedAt: t.TransactedAt,
		FromAssetID:  t.FromAssetID,
		ToAssetID:    t.ToAssetID,
		LiabilityID:  t.LiabilityID,
		RecurringID:  t.RecurringID,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
