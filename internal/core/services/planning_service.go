package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/personal_os/internal/apperrors"
	"github.com/SscSPs/personal_os/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_os/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_os/internal/core/ports/services"
	"github.com/SscSPs/personal_os/internal/dto"
	"github.com/SscSPs/personal_os/internal/utils/mapping"
	"github.com/SscSPs/personal_os/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// MaxHistoryLimit bounds a single page of the finance history.
const MaxHistoryLimit = 200

type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
	uow        portsrepo.UnitOfWork
}

// NewBudgetService creates a new budget service with the provided options
func NewBudgetService(repo portsrepo.BudgetRepositoryFacade, uow portsrepo.UnitOfWork, opts ...ServiceOption) portssvc.BudgetSvcFacade {
	return &budgetService{
		BaseService: newBaseService(opts...),
		budgetRepo:  repo,
		uow:         uow,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) ListMonthlyBudgets(ctx context.Context) ([]domain.MonthlyBudget, error) {
	return s.budgetRepo.ListMonthlyBudgets(ctx)
}

func (s *budgetService) UpsertMonthlyBudget(ctx context.Context, req dto.UpsertMonthlyBudgetRequest) (*domain.MonthlyBudget, bool, error) {
	if err := validatePeriod(req.Year, req.Month); err != nil {
		return nil, false, err
	}
	if req.TotalBudget.IsNegative() {
		return nil, false, apperrors.Validationf("total_budget must not be negative")
	}

	now := s.Now()
	var (
		saved   *domain.MonthlyBudget
		created bool
	)
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		existing, err := repos.BudgetRepo.FindMonthlyBudget(ctx, req.Year, req.Month)
		if err != nil {
			return err
		}

		saved, created, err = repos.BudgetRepo.UpsertMonthlyBudget(ctx, domain.MonthlyBudget{
			Year:           req.Year,
			Month:          req.Month,
			TotalBudget:    req.TotalBudget,
			RolloverUnused: req.RolloverUnused,
			Timestamps:     domain.Timestamps{CreatedAt: now},
		})
		if err != nil {
			return err
		}

		var before any
		action := domain.AuditCreated
		if existing != nil && !created {
			before = mapping.ToMonthlyBudgetSnapshot(*existing)
			action = domain.AuditUpdated
		}
		return recordAudit(ctx, repos, domain.EntityMonthlyBudget, saved.ID, action,
			before, mapping.ToMonthlyBudgetSnapshot(*saved), now)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert monthly budget",
			slog.Int("year", req.Year), slog.Int("month", req.Month))
		return nil, false, err
	}
	return saved, created, nil
}

func (s *budgetService) ListCategoryBudgets(ctx context.Context, year, month *int) ([]domain.CategoryBudget, error) {
	if month != nil && (*month < 1 || *month > 12) {
		return nil, apperrors.Validationf("month must be between 1 and 12")
	}
	return s.budgetRepo.ListCategoryBudgets(ctx, year, month)
}

func (s *budgetService) UpsertCategoryBudget(ctx context.Context, req dto.UpsertCategoryBudgetRequest) (*domain.CategoryBudget, bool, error) {
	if err := validatePeriod(req.Year, req.Month); err != nil {
		return nil, false, err
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, false, apperrors.Validationf("category is required")
	}
	if req.LimitAmount.IsNegative() {
		return nil, false, apperrors.Validationf("limit_amount must not be negative")
	}

	now := s.Now()
	var (
		saved   *domain.CategoryBudget
		created bool
	)
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		existing, err := repos.BudgetRepo.FindCategoryBudget(ctx, req.Year, req.Month, category)
		if err != nil {
			return err
		}

		saved, created, err = repos.BudgetRepo.UpsertCategoryBudget(ctx, domain.CategoryBudget{
			Year:           req.Year,
			Month:          req.Month,
			Category:       category,
			LimitAmount:    req.LimitAmount,
			RolloverUnused: req.RolloverUnused,
			Timestamps:     domain.Timestamps{CreatedAt: now},
		})
		if err != nil {
			return err
		}

		var before any
		action := domain.AuditCreated
		if existing != nil && !created {
			before = mapping.ToCategoryBudgetSnapshot(*existing)
			action = domain.AuditUpdated
		}
		return recordAudit(ctx, repos, domain.EntityCategoryBudget, saved.ID, action,
			before, mapping.ToCategoryBudgetSnapshot(*saved), now)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert category budget",
			slog.Int("year", req.Year), slog.Int("month", req.Month), slog.String("category", category))
		return nil, false, err
	}
	return saved, created, nil
}

func validatePeriod(year, month int) error {
	if year < 1970 || year > 9999 {
		return apperrors.Validationf("year must be between 1970 and 9999")
	}
	if month < 1 || month > 12 {
		return apperrors.Validationf("month must be between 1 and 12")
	}
	return nil
}

type goalService struct {
	BaseService
	goalRepo portsrepo.GoalRepositoryFacade
	uow      portsrepo.UnitOfWork
}

// NewGoalService creates a new goal service with the provided options
func NewGoalService(repo portsrepo.GoalRepositoryFacade, uow portsrepo.UnitOfWork, opts ...ServiceOption) portssvc.GoalSvcFacade {
	return &goalService{
		BaseService: newBaseService(opts...),
		goalRepo:    repo,
		uow:         uow,
	}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func (s *goalService) ListGoals(ctx context.Context, activeOnly bool) ([]domain.Goal, error) {
	return s.goalRepo.ListGoals(ctx, activeOnly)
}

func (s *goalService) CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*domain.Goal, error) {
	goal := domain.Goal{
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: decimal.Zero,
		Category:      req.Category,
		TargetDate:    req.TargetDate.TimePtr(),
		IsActive:      true,
	}
	if req.IsActive != nil {
		goal.IsActive = *req.IsActive
	}
	if err := validateGoal(goal); err != nil {
		return nil, err
	}

	now := s.Now()
	goal.CreatedAt = now

	var created *domain.Goal
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		saved, err := repos.GoalRepo.SaveGoal(ctx, goal)
		if err != nil {
			return err
		}
		created = saved
		return recordAudit(ctx, repos, domain.EntityGoal, saved.ID, domain.AuditCreated,
			nil, mapping.ToGoalSnapshot(*saved), now)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create goal", slog.String("name", goal.Name))
		return nil, err
	}
	return created, nil
}

func (s *goalService) UpdateGoal(ctx context.Context, goalID int64, req dto.UpdateGoalRequest) (*domain.Goal, error) {
	if req.Name.IsNull() || req.TargetAmount.IsNull() || req.CurrentAmount.IsNull() || req.IsActive.IsNull() {
		return nil, apperrors.Validationf("name, target_amount, current_amount and is_active cannot be null")
	}

	now := s.Now()
	var updated *domain.Goal
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		current, err := repos.GoalRepo.FindGoalByID(ctx, goalID)
		if err != nil {
			return err
		}

		next := *current
		next.Name = strings.TrimSpace(*req.Name.Merge(&current.Name))
		next.Description = req.Description.Merge(current.Description)
		next.TargetAmount = *req.TargetAmount.Merge(&current.TargetAmount)
		next.CurrentAmount = *req.CurrentAmount.Merge(&current.CurrentAmount)
		next.Category = req.Category.Merge(current.Category)
		next.TargetDate = req.TargetDate.Merge(dto.DatePtr(current.TargetDate)).TimePtr()
		next.IsActive = *req.IsActive.Merge(&current.IsActive)
		if err := validateGoal(next); err != nil {
			return err
		}
		next.Touch(now)

		if err := repos.GoalRepo.UpdateGoal(ctx, next); err != nil {
			return err
		}
		updated = &next
		return recordAudit(ctx, repos, domain.EntityGoal, goalID, domain.AuditUpdated,
			mapping.ToGoalSnapshot(*current), mapping.ToGoalSnapshot(next), now)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to update goal", slog.Int64("goal_id", goalID))
		}
		return nil, err
	}
	return updated, nil
}

func validateGoal(g domain.Goal) error {
	switch {
	case g.Name == "":
		return apperrors.Validationf("name is required")
	case !g.TargetAmount.IsPositive():
		return apperrors.Validationf("target_amount must be greater than zero")
	case g.CurrentAmount.IsNegative():
		return apperrors.Validationf("current_amount must not be negative")
	}
	return nil
}

func (s *goalService) ListGoalAllocations(ctx context.Context, goalID *int64) ([]domain.GoalAllocation, error) {
	return s.goalRepo.ListGoalAllocations(ctx, goalID)
}

func (s *goalService) UpsertGoalAllocation(ctx context.Context, req dto.UpsertGoalAllocationRequest) (*domain.GoalAllocation, bool, error) {
	if req.AllocatedAmount.IsNegative() {
		return nil, false, apperrors.Validationf("allocated_amount must not be negative")
	}

	now := s.Now()
	var (
		saved   *domain.GoalAllocation
		created bool
	)
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if _, err := repos.GoalRepo.FindGoalByID(ctx, req.GoalID); err != nil {
			return err
		}
		if _, err := repos.AssetRepo.FindAssetByID(ctx, req.AssetID); err != nil {
			return err
		}
		existing, err := repos.GoalRepo.FindGoalAllocation(ctx, req.GoalID, req.AssetID)
		if err != nil {
			return err
		}

		saved, created, err = repos.GoalRepo.UpsertGoalAllocation(ctx, domain.GoalAllocation{
			GoalID:          req.GoalID,
			AssetID:         req.AssetID,
			AllocatedAmount: req.AllocatedAmount,
			Timestamps:      domain.Timestamps{CreatedAt: now},
		})
		if err != nil {
			return err
		}

		var before any
		action := domain.AuditCreated
		if existing != nil && !created {
			before = mapping.ToGoalAllocationSnapshot(*existing)
			action = domain.AuditUpdated
		}
		return recordAudit(ctx, repos, domain.EntityGoalAllocation, saved.ID, action,
			before, mapping.ToGoalAllocationSnapshot(*saved), now)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to upsert goal allocation",
				slog.Int64("goal_id", req.GoalID), slog.Int64("asset_id", req.AssetID))
		}
		return nil, false, err
	}
	return saved, created, nil
}

type auditService struct {
	BaseService
	auditRepo portsrepo.AuditReader
}

// NewAuditService creates the read side of the finance history.
func NewAuditService(repo portsrepo.AuditReader, opts ...ServiceOption) portssvc.AuditSvc {
	return &auditService{BaseService: newBaseService(opts...), auditRepo: repo}
}

var _ portssvc.AuditSvc = (*auditService)(nil)

func (s *auditService) ListHistory(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditLogEntry, error) {
	w := pagination.NormalizeWindow(filter.Limit, filter.Offset, MaxHistoryLimit)
	filter.Limit, filter.Offset = w.Limit, w.Offset

	entries, err := s.auditRepo.ListAuditEntries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list history", slog.String("entity_type", string(filter.EntityType)))
		return nil, err
	}
	return entries, nil
}
