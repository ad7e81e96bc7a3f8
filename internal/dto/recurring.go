package dto

import (
	"time"

	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecurringRuleRequest defines the data needed to create a recurring rule.
type CreateRecurringRuleRequest struct {
	Name        string          `json:"name" binding:"required,max=140"`
	TxnType     domain.TxnType  `json:"txn_type" binding:"required,txntype"`
	Amount      decimal.Decimal `json:"amount" binding:"gt=0"`
	Category    string          `json:"category" binding:"required,max=80"`
	Description *string         `json:"description"`
	Schedule    domain.Schedule `json:"schedule" binding:"required,schedule"`
	DayOfMonth  *int            `json:"day_of_month" binding:"omitempty,min=1,max=31"`
	DayOfWeek   *int            `json:"day_of_week" binding:"omitempty,min=0,max=6"`
	NextDueDate Date            `json:"next_due_date" binding:"required"`
	AutoCreate  bool            `json:"auto_create"`
	IsActive    *bool           `json:"is_active"`
	AssetID     *int64          `json:"asset_id" binding:"omitempty,gt=0"`
	LiabilityID *int64          `json:"liability_id" binding:"omitempty,gt=0"`
}

// RecurringRuleResponse defines the data returned for a recurring rule.
type RecurringRuleResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	TxnType     domain.TxnType  `json:"txn_type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description *string         `json:"description"`
	Schedule    domain.Schedule `json:"schedule"`
	DayOfMonth  *int            `json:"day_of_month"`
	DayOfWeek   *int            `json:"day_of_week"`
	NextDueDate Date            `json:"next_due_date"`
	AutoCreate  bool            `json:"auto_create"`
	IsActive    bool            `json:"is_active"`
	AssetID     *int64          `json:"asset_id"`
	LiabilityID *int64          `json:"liability_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at"`
}

func ToRecurringRuleResponse(r *domain.RecurringRule) RecurringRuleResponse {
	return RecurringRuleResponse{
		ID:          r.ID,
		Name:        r.Name,
		TxnType:     r.TxnType,
		Amount:      r.Amount,
		Category:    r.Category,
		Description: r.Description,
		Schedule:    r.Schedule,
		DayOfMonth:  r.DayOfMonth,
		DayOfWeek:   r.DayOfWeek,
		NextDueDate: NewDate(r.NextDueDate),
		AutoCreate:  r.AutoCreate,
		IsActive:    r.IsActive,
		AssetID:     r.AssetID,
		LiabilityID: r.LiabilityID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func ToListRecurringRuleResponse(rules []domain.RecurringRule) []RecurringRuleResponse {
	res := make([]RecurringRuleResponse, len(rules))
	for i := range rules {
		res[i] = ToRecurringRuleResponse(&rules[i])
	}
	return res
}

// OccurrenceResponse is an occurrence joined with its rule summary.
type OccurrenceResponse struct {
	ID            int64                   `json:"id"`
	RecurringID   int64                   `json:"recurring_id"`
	DueDate       Date                    `json:"due_date"`
	Status        domain.OccurrenceStatus `json:"status"`
	TransactionID *int64                  `json:"transaction_id"`
	CreatedAt     time.Time               `json:"created_at"`
	Name          string                  `json:"name,omitempty"`
	TxnType       domain.TxnType          `json:"txn_type,omitempty"`
	Amount        *decimal.Decimal        `json:"amount,omitempty"`
	Category      string                  `json:"category,omitempty"`
}

func ToOccurrenceResponse(o *domain.RecurringOccurrence) OccurrenceResponse {
	return OccurrenceResponse{
		ID:            o.ID,
		RecurringID:   o.RecurringID,
		DueDate:       NewDate(o.DueDate),
		Status:        o.Status,
		TransactionID: o.TransactionID,
		CreatedAt:     o.CreatedAt,
	}
}

func ToOccurrenceDetailResponse(d *domain.OccurrenceDetail) OccurrenceResponse {
	res := ToOccurrenceResponse(&d.RecurringOccurrence)
	amount := d.Amount
	res.Name = d.Name
	res.TxnType = d.TxnType
	res.Amount = &amount
	res.Category = d.Category
	return res
}

func ToListOccurrenceResponse(items []domain.OccurrenceDetail) []OccurrenceResponse {
	res := make([]OccurrenceResponse, len(items))
	for i := range items {
		res[i] = ToOccurrenceDetailResponse(&items[i])
	}
	return res
}

// PostOccurrenceResponse is returned when an occurrence is materialized.
type PostOccurrenceResponse struct {
	Occurrence  OccurrenceResponse  `json:"occurrence"`
	Transaction TransactionResponse `json:"transaction"`
}
