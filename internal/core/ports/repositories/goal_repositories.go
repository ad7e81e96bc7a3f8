package repositories

import (
	"context"

	"github.com/SscSPs/personal_os/internal/core/domain"
)

// GoalRepository stores savings goals.
type GoalRepository interface {
	SaveGoal(ctx context.Context, goal domain.Goal) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, goal domain.Goal) error
	FindGoalByID(ctx context.Context, goalID int64) (*domain.Goal, error)
	// ListGoals orders active goals first, then newest id first.
	ListGoals(ctx context.Context, activeOnly bool) ([]domain.Goal, error)
}

// GoalAllocationRepository stores goal allocations keyed by (goal_id, asset_id).
type GoalAllocationRepository interface {
	FindGoalAllocation(ctx context.Context, goalID, assetID int64) (*domain.GoalAllocation, error)
	UpsertGoalAllocation(ctx context.Context, alloc domain.GoalAllocation) (saved *domain.GoalAllocation, created bool, err error)
	ListGoalAllocations(ctx context.Context, goalID *int64) ([]domain.GoalAllocation, error)
}

type GoalRepositoryFacade interface {
	GoalRepository
	GoalAllocationRepository
}
