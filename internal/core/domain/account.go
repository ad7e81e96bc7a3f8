package domain

import (
	"github.com/shopspring/decimal"
)

// AccountKind identifies which balance-holding entity a ledger delta targets.
type AccountKind string

const (
	KindAsset     AccountKind = "asset"
	KindLiability AccountKind = "liability"
)

const (
	// DefaultPrimaryAssetName is the name given to the asset created when a
	// transaction needs a default account and none exists.
	DefaultPrimaryAssetName = "Primary Account"
	// DefaultPrimaryAssetType is the asset_type of that fallback asset.
	DefaultPrimaryAssetType = "cash"
	// DefaultCurrency is used when an asset is created without a currency.
	DefaultCurrency = "INR"
)

// Asset is a balance-holding account the user owns (cash, bank, wallet...).
type Asset struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	AssetType    string          `json:"asset_type"`
	AssetSubtype *string         `json:"asset_subtype"`
	Currency     string          `json:"currency"`
	Balance      decimal.Decimal `json:"balance"`
	IsPrimary    bool            `json:"is_primary"`
	Notes        *string         `json:"notes"`
	Timestamps
}

// Liability is an amount owed (credit card, loan). Balance is conventionally the amount owed.
type Liability struct {
	ID               int64            `json:"id"`
	Name             string           `json:"name"`
	LiabilityType    string           `json:"liability_type"`
	Balance          decimal.Decimal  `json:"balance"`
	CreditLimit      *decimal.Decimal `json:"credit_limit"`
	DueDay           *int             `json:"due_day"`
	MinimumPayment   *decimal.Decimal `json:"minimum_payment"`
	EMIAmount        *decimal.Decimal `json:"emi_amount"`
	InterestRate     *decimal.Decimal `json:"interest_rate"`
	TenureMonthsLeft *int             `json:"tenure_months_left"`
	Notes            *string          `json:"notes"`
	Timestamps
}

// MoneyScale is the number of decimal places stored for amounts and balances.
const MoneyScale int32 = 2

// HasMoneyScale reports whether d can be stored without rounding.
func HasMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyScale))
}
