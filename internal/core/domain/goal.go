package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target. CurrentAmount is tracked independently of allocations.
type Goal struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Category      *string         `json:"category"`
	TargetDate    *time.Time      `json:"target_date"`
	IsActive      bool            `json:"is_active"`
	Timestamps
}

// GoalAllocation earmarks part of an asset for a goal. Unique per (GoalID, AssetID).
type GoalAllocation struct {
	ID              int64           `json:"id"`
	GoalID          int64           `json:"goal_id"`
	AssetID         int64           `json:"asset_id"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount"`
	Timestamps
}
