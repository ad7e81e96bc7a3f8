package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset is the finance_assets row.
type Asset struct {
	ID           int64           `db:"id"`
	Name         string          `db:"name"`
	AssetType    string          `db:"asset_type"`
	AssetSubtype *string         `db:"asset_subtype"`
	Currency     string          `db:"currency"`
	Balance      decimal.Decimal `db:"balance"`
	IsPrimary    bool            `db:"is_primary"`
	Notes        *string         `db:"notes"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    *time.Time      `db:"updated_at"`
}

// Liability is the finance_liabilities row.
type Liability struct {
	ID               int64            `db:"id"`
	Name             string           `db:"name"`
	LiabilityType    string           `db:"liability_type"`
	Balance          decimal.Decimal  `db:"balance"`
	CreditLimit      *decimal.Decimal `db:"credit_limit"`
	DueDay           *int32           `db:"due_day"`
	MinimumPayment   *decimal.Decimal `db:"minimum_payment"`
	EMIAmount        *decimal.Decimal `db:"emi_amount"`
	InterestRate     *decimal.Decimal `db:"interest_rate"`
	TenureMonthsLeft *int32           `db:"tenure_months_left"`
	Notes            *string          `db:"notes"`
	CreatedAt        time.Time        `db:"created_at"`
	UpdatedAt        *time.Time       `db:"updated_at"`
}

// Transaction is the finance_transactions row.
type Transaction struct {
	ID           int64           `db:"id"`
	TxnType      string          `db:"txn_type"`
	Amount       decimal.Decimal `db:"amount"`
	Category     string          `db:"category"`
	PaymentMode  *string         `db:"payment_mode"`
	Description  *string         `db:"description"`
	TransactedAt time.Time       `db:"transacted_at"`
	FromAssetID  *int64          `db:"from_asset_id"`
	ToAssetID    *int64          `db:"to_asset_id"`
	LiabilityID  *int64          `db:"liability_id"`
	RecurringID  *int64          `db:"recurring_id"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    *time.Time      `db:"updated_at"`
}

// AuditLog is the finance_audit_logs row.
type AuditLog struct {
	ID         int64     `db:"id"`
	EntityType string    `db:"entity_type"`
	EntityID   *int64    `db:"entity_id"`
	Action     string    `db:"action"`
	BeforeJSON *string   `db:"before_json"`
	AfterJSON  *string   `db:"after_json"`
	CreatedAt  time.Time `db:"created_at"`
}
