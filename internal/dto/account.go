package dto

import (
	"time"

	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAssetRequest defines the data needed to create a new asset.
type CreateAssetRequest struct {
	Name         string          `json:"name" binding:"required,max=140"`
	AssetType    string          `json:"asset_type" binding:"required,max=40"`
	AssetSubtype *string         `json:"asset_subtype" binding:"omitempty,max=40"`
	Currency     string          `json:"currency" binding:"omitempty,len=3"`
	Balance      decimal.Decimal `json:"balance"`
	IsPrimary    bool            `json:"is_primary"`
	Notes        *string         `json:"notes"`
}

// UpdateAssetRequest is a partial update; absent fields are left unchanged.
// Setting is_primary to true makes this asset the single primary asset.
type UpdateAssetRequest struct {
	Name         Optional[string]          `json:"name"`
	AssetType    Optional[string]          `json:"asset_type"`
	AssetSubtype Optional[string]          `json:"asset_subtype"`
	Currency     Optional[string]          `json:"currency"`
	Balance      Optional[decimal.Decimal] `json:"balance"`
	IsPrimary    Optional[bool]            `json:"is_primary"`
	Notes        Optional[string]          `json:"notes"`
}

// AssetResponse defines the data returned for an asset.
type AssetResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	AssetType    string          `json:"asset_type"`
	AssetSubtype *string         `json:"asset_subtype"`
	Currency     string          `json:"currency"`
	Balance      decimal.Decimal `json:"balance"`
	IsPrimary    bool            `json:"is_primary"`
	Notes        *string         `json:"notes"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    *time.Time      `json:"updated_at"`
}

func ToAssetResponse(a *domain.Asset) AssetResponse {
	return AssetResponse{
		ID:           a.ID,
		Name:         a.Name,
		AssetType:    a.AssetType,
		AssetSubtype: a.AssetSubtype,
		Currency:     a.Currency,
		Balance:      a.Balance,
		IsPrimary:    a.IsPrimary,
		Notes:        a.Notes,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func ToListAssetResponse(assets []domain.Asset) []AssetResponse {
	res := make([]AssetResponse, len(assets))
	for i := range assets {
		res[i] = ToAssetResponse(&assets[i])
	}
	return res
}

// CreateLiabilityRequest defines the data needed to create a new liability.
type CreateLiabilityRequest struct {
	Name             string           `json:"name" binding:"required,max=140"`
	LiabilityType    string           `json:"liability_type" binding:"required,max=40"`
	Balance          decimal.Decimal  `json:"balance"`
	CreditLimit      *decimal.Decimal `json:"credit_limit"`
	DueDay           *int             `json:"due_day" binding:"omitempty,min=1,max=31"`
	MinimumPayment   *decimal.Decimal `json:"minimum_payment"`
	EMIAmount        *decimal.Decimal `json:"emi_amount"`
	InterestRate     *decimal.Decimal `json:"interest_rate"`
	TenureMonthsLeft *int             `json:"tenure_months_left" binding:"omitempty,min=0"`
	Notes            *string          `json:"notes"`
}

// UpdateLiabilityRequest is a partial update; absent fields are left unchanged.
type UpdateLiabilityRequest struct {
	Name             Optional[string]          `json:"name"`
	LiabilityType    Optional[string]          `json:"liability_type"`
	Balance          Optional[decimal.Decimal] `json:"balance"`
	CreditLimit      Optional[decimal.Decimal] `json:"credit_limit"`
	DueDay           Optional[int]             `json:"due_day"`
	MinimumPayment   Optional[decimal.Decimal] `json:"minimum_payment"`
	EMIAmount        Optional[decimal.Decimal] `json:"emi_amount"`
	InterestRate     Optional[decimal.Decimal] `json:"interest_rate"`
	TenureMonthsLeft Optional[int]             `json:"tenure_months_left"`
	Notes            Optional[string]          `json:"notes"`
}

// LiabilityResponse defines the data returned for a liability.
type LiabilityResponse struct {
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
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        *time.Time       `json:"updated_at"`
}

func ToLiabilityResponse(l *domain.Liability) LiabilityResponse {
	return LiabilityResponse{
		ID:               l.ID,
		Name:             l.Name,
		LiabilityType:    l.LiabilityType,
		Balance:          l.Balance,
		CreditLimit:      l.CreditLimit,
		DueDay:           l.DueDay,
		MinimumPayment:   l.MinimumPayment,
		EMIAmount:        l.EMIAmount,
		InterestRate:     l.InterestRate,
		TenureMonthsLeft: l.TenureMonthsLeft,
		Notes:            l.Notes,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

func ToListLiabilityResponse(items []domain.Liability) []LiabilityResponse {
	res := make([]LiabilityResponse, len(items))
	for i := range items {
		res[i] = ToLiabilityResponse(&items[i])
	}
	return res
}
