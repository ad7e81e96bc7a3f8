package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringRule is the finance_recurring_rules row.
type RecurringRule struct {
	ID          int64           `db:"id"`
	Name        string          `db:"name"`
	TxnType     string          `db:"txn_type"`
	Amount      decimal.Decimal `db:"amount"`
	Category    string          `db:"category"`
	Description *string         `db:"description"`
	Schedule    string          `db:"schedule"`
	DayOfMonth  *int32          `db:"day_of_month"`
	DayOfWeek   *int32          `db:"day_of_week"`
	NextDueDate time.Time       `db:"next_due_date"`
	AutoCreate  bool            `db:"auto_create"`
	IsActive    bool            `db:"is_active"`
	AssetID     *int64          `db:"asset_id"`
	LiabilityID *int64          `db:"liability_id"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   *time.Time      `db:"updated_at"`
}

// RecurringOccurrence is the finance_recurring_occurrences row.
type RecurringOccurrence struct {
	ID            int64     `db:"id"`
	RecurringID   int64     `db:"recurring_id"`
	DueDate       time.Time `db:"due_date"`
	Status        string    `db:"status"`
	TransactionID *int64    `db:"transaction_id"`
	CreatedAt     time.Time `db:"created_at"`
}

// OccurrenceDetail is an occurrence row joined with its rule summary.
type OccurrenceDetail struct {
	ID            int64           `db:"id"`
	RecurringID   int64           `db:"recurring_id"`
	DueDate       time.Time       `db:"due_date"`
	Status        string          `db:"status"`
	TransactionID *int64          `db:"transaction_id"`
	CreatedAt     time.Time       `db:"created_at"`
	Name          string          `db:"name"`
	TxnType       string          `db:"txn_type"`
	Amount        decimal.Decimal `db:"amount"`
	Category      string          `db:"category"`
}

// MonthlyBudget is the finance_monthly_budgets row.
type MonthlyBudget struct {
	ID             int64           `db:"id"`
	Year           int32           `db:"year"`
	Month          int32           `db:"month"`
	TotalBudget    decimal.Decimal `db:"total_budget"`
	RolloverUnused bool            `db:"rollover_unused"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      *time.Time      `db:"updated_at"`
}

// CategoryBudget is the finance_category_budgets row.
type CategoryBudget struct {
	ID             int64           `db:"id"`
	Year           int32           `db:"year"`
	Month          int32           `db:"month"`
	Category       string          `db:"category"`
	LimitAmount    decimal.Decimal `db:"limit_amount"`
	RolloverUnused bool            `db:"rollover_unused"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      *time.Time      `db:"updated_at"`
}

// Goal is the finance_goals row.
type Goal struct {
	ID            int64           `db:"id"`
	Name          string          `db:"name"`
	Description   *string         `db:"description"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	Category      *string         `db:"category"`
	TargetDate    *time.Time      `db:"target_date"`
	IsActive      bool            `db:"is_active"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     *time.Time      `db:"updated_at"`
}

// GoalAllocation is the finance_goal_allocations row.
type GoalAllocation struct {
	ID              int64           `db:"id"`
	GoalID          int64           `db:"goal_id"`
	AssetID         int64           `db:"asset_id"`
	AllocatedAmount decimal.Decimal `db:"allocated_amount"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       *time.Time      `db:"updated_at"`
}
