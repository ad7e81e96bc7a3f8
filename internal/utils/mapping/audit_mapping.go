package mapping

import (
	"time"

	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Audit snapshots carry a fixed allowlist of fields per entity type. Fields
// not listed here never reach the audit log.

type TransactionSnapshot struct {
	ID           int64           `json:"id"`
	TxnType      domain.TxnType  `json:"txn_type"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category"`
	PaymentMode  *string         `json:"payment_mode"`
	Description  *string         `json:"description"`
	TransactedAt time.Time       `json:"transacted_at"`
	FromAssetID  *int64          `json:"from_asset_id"`
	ToAssetID    *int64          `json:"to_asset_id"`
	LiabilityID  *int64          `json:"liability_id"`
	RecurringID  *int64          `json:"recurring_id"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    *time.Time      `json:"updated_at"`
}

func ToTransactionSnapshot(t domain.Transaction) TransactionSnapshot {
	return TransactionSnapshot{
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

type AssetSnapshot struct {
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

func ToAssetSnapshot(a domain.Asset) AssetSnapshot {
	return AssetSnapshot{
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

type LiabilitySnapshot struct {
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

func ToLiabilitySnapshot(l domain.Liability) LiabilitySnapshot {
	return LiabilitySnapshot{
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

type RecurringRuleSnapshot struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	TxnType     domain.TxnType  `json:"txn_type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description *string         `json:"description"`
	Schedule    domain.Schedule `json:"schedule"`
	DayOfMonth  *int            `json:"day_of_month"`
	DayOfWeek   *int            `json:"day_of_week"`
	NextDueDate string          `json:"next_due_date"`
	AutoCreate  bool            `json:"auto_create"`
	IsActive    bool            `json:"is_active"`
	AssetID     *int64          `json:"asset_id"`
	LiabilityID *int64          `json:"liability_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at"`
}

func ToRecurringRuleSnapshot(r domain.RecurringRule) RecurringRuleSnapshot {
	return RecurringRuleSnapshot{
		ID:          r.ID,
		Name:        r.Name,
		TxnType:     r.TxnType,
		Amount:      r.Amount,
		Category:    r.Category,
		Description: r.Description,
		Schedule:    r.Schedule,
		DayOfMonth:  r.DayOfMonth,
		DayOfWeek:   r.DayOfWeek,
		NextDueDate: r.NextDueDate.Format("2006-01-02"),
		AutoCreate:  r.AutoCreate,
		IsActive:    r.IsActive,
		AssetID:     r.AssetID,
		LiabilityID: r.LiabilityID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type MonthlyBudgetSnapshot struct {
	ID             int64           `json:"id"`
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	TotalBudget    decimal.Decimal `json:"total_budget"`
	RolloverUnused bool            `json:"rollover_unused"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at"`
}

func ToMonthlyBudgetSnapshot(b domain.MonthlyBudget) MonthlyBudgetSnapshot {
	return MonthlyBudgetSnapshot{
		ID:             b.ID,
		Year:           b.Year,
		Month:          b.Month,
		TotalBudget:    b.TotalBudget,
		RolloverUnused: b.RolloverUnused,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

type CategoryBudgetSnapshot struct {
	ID             int64           `json:"id"`
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	Category       string          `json:"category"`
	LimitAmount    decimal.Decimal `json:"limit_amount"`
	RolloverUnused bool            `json:"rollover_unused"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at"`
}

func ToCategoryBudgetSnapshot(b domain.CategoryBudget) CategoryBudgetSnapshot {
	return CategoryBudgetSnapshot{
		ID:             b.ID,
		Year:           b.Year,
		Month:          b.Month,
		Category:       b.Category,
		LimitAmount:    b.LimitAmount,
		RolloverUnused: b.RolloverUnused,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

type GoalSnapshot struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Category      *string         `json:"category"`
	TargetDate    *string         `json:"target_date"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     *time.Time      `json:"updated_at"`
}

func ToGoalSnapshot(g domain.Goal) GoalSnapshot {
	var target *string
	if g.TargetDate != nil {
		s := g.TargetDate.Format("2006-01-02")
		target = &s
	}
	return GoalSnapshot{
		ID:            g.ID,
		Name:          g.Name,
		Description:   g.Description,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Category:      g.Category,
		TargetDate:    target,
		IsActive:      g.IsActive,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

type GoalAllocationSnapshot struct {
	ID              int64           `json:"id"`
	GoalID          int64           `json:"goal_id"`
	AssetID         int64           `json:"asset_id"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       *time.Time      `json:"updated_at"`
}

func ToGoalAllocationSnapshot(a domain.GoalAllocation) GoalAllocationSnapshot {
	return GoalAllocationSnapshot{
		ID:              a.ID,
		GoalID:          a.GoalID,
		AssetID:         a.AssetID,
		AllocatedAmount: a.AllocatedAmount,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
