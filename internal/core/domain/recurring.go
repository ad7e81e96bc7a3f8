package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Schedule is how often a recurring rule comes due.
type Schedule string

const (
	ScheduleDaily   Schedule = "daily"
	ScheduleWeekly  Schedule = "weekly"
	ScheduleMonthly Schedule = "monthly"
)

func (s Schedule) IsValid() bool {
	return s == ScheduleDaily || s == ScheduleWeekly || s == ScheduleMonthly
}

// OccurrenceStatus is the lifecycle state of a recurring occurrence.
type OccurrenceStatus string

const (
	OccurrencePending OccurrenceStatus = "pending"
	OccurrencePosted  OccurrenceStatus = "posted"
	OccurrenceSkipped OccurrenceStatus = "skipped"
)

// RecurringRule describes a transaction that repeats on a schedule.
type RecurringRule struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	TxnType     TxnType         `json:"txn_type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description *string         `json:"description"`
	Schedule    Schedule        `json:"schedule"`
	DayOfMonth  *int            `json:"day_of_month"`
	DayOfWeek   *int            `json:"day_of_week"`
	NextDueDate time.Time       `json:"next_due_date"`
	AutoCreate  bool            `json:"auto_create"`
	IsActive    bool            `json:"is_active"`
	AssetID     *int64          `json:"asset_id"`
	LiabilityID *int64          `json:"liability_id"`
	Timestamps
}

// RecurringOccurrence is one scheduled instance of a rule awaiting materialization.
type RecurringOccurrence struct {
	ID            int64            `json:"id"`
	RecurringID   int64            `json:"recurring_id"`
	DueDate       time.Time        `json:"due_date"`
	Status        OccurrenceStatus `json:"status"`
	TransactionID *int64           `json:"transaction_id"`
	CreatedAt     time.Time        `json:"created_at"`
}

// OccurrenceDetail is an occurrence joined with the summary of its rule.
type OccurrenceDetail struct {
	RecurringOccurrence
	Name     string          `json:"name"`
	TxnType  TxnType         `json:"txn_type"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
}
