package services

import (
	"context"

	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/SscSPs/personal_os/internal/dto"
)

// RecurringSvcFacade manages recurring rules and their occurrences.
type RecurringSvcFacade interface {
	ListRecurringRules(ctx context.Context) ([]domain.RecurringRule, error)
	// CreateRecurringRule stores the rule together with its first pending occurrence.
	CreateRecurringRule(ctx context.Context, req dto.CreateRecurringRuleRequest) (*domain.RecurringRule, error)
	ListOccurrences(ctx context.Context, status domain.OccurrenceStatus) ([]domain.OccurrenceDetail, error)
	// PostOccurrence materializes a pending occurrence into a transaction.
	PostOccurrence(ctx context.Context, occurrenceID int64) (*domain.RecurringOccurrence, *domain.Transaction, error)
	SkipOccurrence(ctx context.Context, occurrenceID int64) (*domain.RecurringOccurrence, error)
}

// BudgetSvcFacade manages monthly and category budgets. Upserts report whether a row was created.
type BudgetSvcFacade interface {
	ListMonthlyBudgets(ctx context.Context) ([]domain.MonthlyBudget, error)
	UpsertMonthlyBudget(ctx context.Context, req dto.UpsertMonthlyBudgetRequest) (*domain.MonthlyBudget, bool, error)
	ListCategoryBudgets(ctx context.Context, year, month *int) ([]domain.CategoryBudget, error)
	UpsertCategoryBudget(ctx context.Context, req dto.UpsertCategoryBudgetRequest) (*domain.CategoryBudget, bool, error)
}

// GoalSvcFacade manages goals and goal allocations.
type GoalSvcFacade interface {
	ListGoals(ctx context.Context, activeOnly bool) ([]domain.Goal, error)
	CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, goalID int64, req dto.UpdateGoalRequest) (*domain.Goal, error)
	ListGoalAllocations(ctx context.Context, goalID *int64) ([]domain.GoalAllocation, error)
	UpsertGoalAllocation(ctx context.Context, req dto.UpsertGoalAllocationRequest) (*domain.GoalAllocation, bool, error)
}

// AuditSvc exposes the finance history. Limit is clamped to [1, 200] and offset to >= 0.
type AuditSvc interface {
	ListHistory(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditLogEntry, error)
}
