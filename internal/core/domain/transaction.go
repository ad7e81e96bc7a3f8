package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxnType is the kind of money movement a Transaction records.
type TxnType string

const (
	TxnIncome           TxnType = "income"
	TxnExpense          TxnType = "expense"
	TxnTransfer         TxnType = "transfer"
	TxnLiabilityPayment TxnType = "liability_payment"
)

// TxnTypes lists every supported transaction type.
var TxnTypes = []TxnType{TxnIncome, TxnExpense, TxnTransfer, TxnLiabilityPayment}

// IsValid reports whether t is a known transaction type.
func (t TxnType) IsValid() bool {
	switch t {
	case TxnIncome, TxnExpense, TxnTransfer, TxnLiabilityPayment:
		return true
	}
	return false
}

// IsExpenseLike reports whether t counts as spending in analytics.
func (t TxnType) IsExpenseLike() bool {
	return t == TxnExpense || t == TxnLiabilityPayment
}

// AccountRefs are the account references a transaction may carry.
// Which of them must be set depends on the transaction type.
type AccountRefs struct {
	FromAssetID *int64 `json:"from_asset_id"`
	ToAssetID   *int64 `json:"to_asset_id"`
	LiabilityID *int64 `json:"liability_id"`
}

// Transaction is a posted money movement. Its balance effect is fully
// determined by TxnType, Amount and AccountRefs.
type Transaction struct {
	ID           int64           `json:"id"`
	TxnType      TxnType         `json:"txn_type"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category"`
	PaymentMode  *string         `json:"payment_mode"`
	Description  *string         `json:"description"`
	TransactedAt time.Time       `json:"transacted_at"`
	AccountRefs
	RecurringID *int64 `json:"recurring_id"`
	Timestamps
}

// TransactionFilter narrows transaction listings. Zero values mean "no filter".
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	TxnType   TxnType
	Category  string
}
