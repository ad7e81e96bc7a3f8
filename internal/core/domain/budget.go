package domain

import "github.com/shopspring/decimal"

// MonthlyBudget is the overall spending limit for one calendar month. Unique per (Year, Month).
type MonthlyBudget struct {
	ID             int64           `json:"id"`
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	TotalBudget    decimal.Decimal `json:"total_budget"`
	RolloverUnused bool            `json:"rollover_unused"`
	Timestamps
}

// CategoryBudget limits spending for one category in a month. Unique per (Year, Month, Category).
type CategoryBudget struct {
	ID             int64           `json:"id"`
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	Category       string          `json:"category"`
	LimitAmount    decimal.Decimal `json:"limit_amount"`
	RolloverUnused bool            `json:"rollover_unused"`
	Timestamps
}
