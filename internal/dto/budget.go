package dto

import (
	"time"

	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertMonthlyBudgetRequest creates or replaces the budget for a month.
type UpsertMonthlyBudgetRequest struct {
	Year           int             `json:"year" binding:"required,min=1970,max=9999"`
	Month          int             `json:"month" binding:"required,min=1,max=12"`
	TotalBudget    decimal.Decimal `json:"total_budget" binding:"gte=0"`
	RolloverUnused bool            `json:"rollover_unused"`
}

type MonthlyBudgetResponse struct {
	ID             int64           `json:"id"`
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	TotalBudget    decimal.Decimal `json:"total_budget"`
	RolloverUnused bool            `json:"rollover_unused"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at"`
}

func ToMonthlyBudgetResponse(b *domain.MonthlyBudget) MonthlyBudgetResponse {
	return MonthlyBudgetResponse{
		ID:             b.ID,
		Year:           b.Year,
		Month:          b.Month,
		TotalBudget:    b.TotalBudget,
		RolloverUnused: b.RolloverUnused,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func ToListMonthlyBudgetResponse(items []domain.MonthlyBudget) []MonthlyBudgetResponse {
	res := make([]MonthlyBudgetResponse, len(items))
	for i := range items {
		res[i] = ToMonthlyBudgetResponse(&items[i])
	}
	return res
}

// UpsertCategoryBudgetRequest creates or replaces a category limit for a month.
type UpsertCategoryBudgetRequest struct {
	Year           int             `json:"year" binding:"required,min=1970,max=9999"`
	Month          int             `json:"month" binding:"required,min=1,max=12"`
	Category       string          `json:"category" binding:"required,max=80"`
	LimitAmount    decimal.Decimal `json:"limit_amount" binding:"gte=0"`
	RolloverUnused bool            `json:"rollover_unused"`
}

// ListCategoryBudgetsParams defines query parameters for listing category budgets.
type ListCategoryBudgetsParams struct {
	Year  *int `form:"year"`
	Month *int `form:"month" binding:"omitempty,min=1,max=12"`
}

type CategoryBudgetResponse struct {
	ID             int64           `json:"id"`
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	Category       string          `json:"category"`
	LimitAmount    decimal.Decimal `json:"limit_amount"`
	RolloverUnused bool            `json:"rollover_unused"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at"`
}

func ToCategoryBudgetResponse(b *domain.CategoryBudget) CategoryBudgetResponse {
	return CategoryBudgetResponse{
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

func ToListCategoryBudgetResponse(items []domain.CategoryBudget) []CategoryBudgetResponse {
	res := make([]CategoryBudgetResponse, len(items))
	for i := range items {
		res[i] = ToCategoryBudgetResponse(&items[i])
	}
	return res
}
