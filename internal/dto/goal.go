package dto

import (
	"time"

	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the data needed to create a goal. current_amount always starts at zero.
type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required,max=140"`
	Description  *string         `json:"description"`
	TargetAmount decimal.Decimal `json:"target_amount" binding:"gt=0"`
	Category     *string         `json:"category" binding:"omitempty,max=80"`
	TargetDate   *Date           `json:"target_date"`
	IsActive     *bool           `json:"is_active"`
}

// UpdateGoalRequest is a partial update; absent fields are left unchanged.
type UpdateGoalRequest struct {
	Name          Optional[string]          `json:"name"`
	Description   Optional[string]          `json:"description"`
	TargetAmount  Optional[decimal.Decimal] `json:"target_amount"`
	CurrentAmount Optional[decimal.Decimal] `json:"current_amount"`
	Category      Optional[string]          `json:"category"`
	TargetDate    Optional[Date]            `json:"target_date"`
	IsActive      Optional[bool]            `json:"is_active"`
}

type GoalResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Category      *string         `json:"category"`
	TargetDate    *Date           `json:"target_date"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     *time.Time      `json:"updated_at"`
}

func ToGoalResponse(g *domain.Goal) GoalResponse {
	return GoalResponse{
		ID:            g.ID,
		Name:          g.Name,
		Description:   g.Description,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Category:      g.Category,
		TargetDate:    DatePtr(g.TargetDate),
		IsActive:      g.IsActive,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

func ToListGoalResponse(items []domain.Goal) []GoalResponse {
	res := make([]GoalResponse, len(items))
	for i := range items {
		res[i] = ToGoalResponse(&items[i])
	}
	return res
}

// UpsertGoalAllocationRequest creates or replaces the allocation of an asset to a goal.
type UpsertGoalAllocationRequest struct {
	GoalID          int64           `json:"goal_id" binding:"required,min=1"`
	AssetID         int64           `json:"asset_id" binding:"required,min=1"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount" binding:"gte=0"`
}

type GoalAllocationResponse struct {
	ID              int64           `json:"id"`
	GoalID          int64           `json:"goal_id"`
	AssetID         int64           `json:"asset_id"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       *time.Time      `json:"updated_at"`
}

func ToGoalAllocationResponse(a *domain.GoalAllocation) GoalAllocationResponse {
	return GoalAllocationResponse{
		ID:              a.ID,
		GoalID:          a.GoalID,
		AssetID:         a.AssetID,
		AllocatedAmount: a.AllocatedAmount,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func ToListGoalAllocationResponse(items []domain.GoalAllocation) []GoalAllocationResponse {
	res := make([]GoalAllocationResponse, len(items))
	for i := range items {
		res[i] = ToGoalAllocationResponse(&items[i])
	}
	return res
}
