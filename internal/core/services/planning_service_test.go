package services_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/personal_os/internal/apperrors"
	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/SscSPs/personal_os/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PlanningServiceTestSuite struct {
	ledgerSuite
}

func TestPlanningServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlanningServiceTestSuite))
}

func (s *PlanningServiceTestSuite) createGoal(name, target string) *domain.Goal {
	goal, err := s.svc.Goal.CreateGoal(s.ctx, dto.CreateGoalRequest{Name: name, TargetAmount: dec(target)})
	s.Require().NoError(err)
	return goal
}

func (s *PlanningServiceTestSuite) TestMonthlyBudgetUpsertUpdatesInPlace() {
	first, created, err := s.svc.Budget.UpsertMonthlyBudget(s.ctx, dto.UpsertMonthlyBudgetRequest{
		Year: 2024, Month: 6, TotalBudget: dec("20000"),
	})
	s.Require().NoError(err)
	s.True(created)

	second, created, err := s.svc.Budget.UpsertMonthlyBudget(s.ctx, dto.UpsertMonthlyBudgetRequest{
		Year: 2024, Month: 6, TotalBudget: dec("25000"), RolloverUnused: true,
	})
	s.Require().NoError(err)
	s.False(created)
	s.Equal(first.ID, second.ID)
	s.True(second.TotalBudget.Equal(dec("25000")))
	s.True(second.RolloverUnused)

	budgets, err := s.svc.Budget.ListMonthlyBudgets(s.ctx)
	s.Require().NoError(err)
	s.Len(budgets, 1)

	entries := s.history(domain.EntityMonthlyBudget)
	s.Require().Len(entries, 2)
	s.Equal(domain.AuditUpdated, entries[0].Action)
	s.NotNil(entries[0].BeforeJSON)
	s.Equal(domain.AuditCreated, entries[1].Action)
	s.Nil(entries[1].BeforeJSON)
}

func (s *PlanningServiceTestSuite) TestCategoryBudgetUpsertIsKeyedByPeriodAndCategory() {
	food, created, err := s.svc.Budget.UpsertCategoryBudget(s.ctx, dto.UpsertCategoryBudgetRequest{
		Year: 2024, Month: 6, Category: "Food", LimitAmount: dec("5000"),
	})
	s.Require().NoError(err)
	s.True(created)

	_, created, err = s.svc.Budget.UpsertCategoryBudget(s.ctx, dto.UpsertCategoryBudgetRequest{
		Year: 2024, Month: 7, Category: "Food", LimitAmount: dec("4000"),
	})
	s.Require().NoError(err)
	s.True(created)

	again, created, err := s.svc.Budget.UpsertCategoryBudget(s.ctx, dto.UpsertCategoryBudgetRequest{
		Year: 2024, Month: 6, Category: " Food ", LimitAmount: dec("6000"),
	})
	s.Require().NoError(err)
	s.False(created)
	s.Equal(food.ID, again.ID)
	s.True(again.LimitAmount.Equal(dec("6000")))

	june, err := s.svc.Budget.ListCategoryBudgets(s.ctx, ptr(2024), ptr(6))
	s.Require().NoError(err)
	s.Require().Len(june, 1)
	s.True(june[0].LimitAmount.Equal(dec("6000")))

	all, err := s.svc.Budget.ListCategoryBudgets(s.ctx, nil, nil)
	s.Require().NoError(err)
	s.Len(all, 2)

	_, err = s.svc.Budget.ListCategoryBudgets(s.ctx, nil, ptr(13))
	s.ErrorIs(err, apperrors.ErrValidation)

	entries := s.history(domain.EntityCategoryBudget)
	s.Require().Len(entries, 3)
	s.Equal(domain.AuditUpdated, entries[0].Action)
}

func (s *PlanningServiceTestSuite) TestBudgetValidation() {
	_, _, err := s.svc.Budget.UpsertMonthlyBudget(s.ctx, dto.UpsertMonthlyBudgetRequest{Year: 2024, Month: 13, TotalBudget: dec("1")})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, _, err = s.svc.Budget.UpsertMonthlyBudget(s.ctx, dto.UpsertMonthlyBudgetRequest{Year: 2024, Month: 1, TotalBudget: dec("-1")})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, _, err = s.svc.Budget.UpsertCategoryBudget(s.ctx, dto.UpsertCategoryBudgetRequest{Year: 2024, Month: 1, Category: "  ", LimitAmount: dec("1")})
	s.ErrorIs(err, apperrors.ErrValidation)

	s.Empty(s.history(""))
}

func (s *PlanningServiceTestSuite) TestCreateGoalDefaults() {
	goal := s.createGoal(" Emergency fund ", "100000")
	s.Equal("Emergency fund", goal.Name)
	s.True(goal.CurrentAmount.IsZero())
	s.True(goal.IsActive)

	entries := s.history(domain.EntityGoal)
	s.Require().Len(entries, 1)
	s.Equal(domain.AuditCreated, entries[0].Action)
}

func (s *PlanningServiceTestSuite) TestGoalValidation() {
	_, err := s.svc.Goal.CreateGoal(s.ctx, dto.CreateGoalRequest{Name: "Trip", TargetAmount: dec("0")})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Goal.CreateGoal(s.ctx, dto.CreateGoalRequest{Name: "  ", TargetAmount: dec("10")})
	s.ErrorIs(err, apperrors.ErrValidation)

	goal := s.createGoal("Trip", "5000")

	_, err = s.svc.Goal.UpdateGoal(s.ctx, goal.ID, dto.UpdateGoalRequest{CurrentAmount: dto.Some(dec("-1"))})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Goal.UpdateGoal(s.ctx, goal.ID, dto.UpdateGoalRequest{TargetAmount: dto.Null[decimal.Decimal]()})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Goal.UpdateGoal(s.ctx, 9999, dto.UpdateGoalRequest{Name: dto.Some("x")})
	s.ErrorIs(err, apperrors.ErrNotFound)

	s.Len(s.history(domain.EntityGoal), 1)
}

func (s *PlanningServiceTestSuite) TestUpdateGoalAndActiveFilter() {
	trip := s.createGoal("Trip", "5000")
	s.createGoal("Car", "300000")

	updated, err := s.svc.Goal.UpdateGoal(s.ctx, trip.ID, dto.UpdateGoalRequest{
		CurrentAmount: dto.Some(dec("1200")),
		IsActive:      dto.Some(false),
	})
	s.Require().NoError(err)
	s.True(updated.CurrentAmount.Equal(dec("1200")))
	s.False(updated.IsActive)
	s.NotNil(updated.UpdatedAt)

	active, err := s.svc.Goal.ListGoals(s.ctx, true)
	s.Require().NoError(err)
	s.Require().Len(active, 1)
	s.Equal("Car", active[0].Name)

	all, err := s.svc.Goal.ListGoals(s.ctx, false)
	s.Require().NoError(err)
	s.Len(all, 2)
}

func (s *PlanningServiceTestSuite) TestGoalAllocationUpsert() {
	wallet := s.createAsset("Wallet", "1000", true)
	bank := s.createAsset("Bank", "5000", false)
	goal := s.createGoal("Trip", "5000")

	first, created, err := s.svc.Goal.UpsertGoalAllocation(s.ctx, dto.UpsertGoalAllocationRequest{
		GoalID: goal.ID, AssetID: wallet.ID, AllocatedAmount: dec("200"),
	})
	s.Require().NoError(err)
	s.True(created)

	_, created, err = s.svc.Goal.UpsertGoalAllocation(s.ctx, dto.UpsertGoalAllocationRequest{
		GoalID: goal.ID, AssetID: bank.ID, AllocatedAmount: dec("800"),
	})
	s.Require().NoError(err)
	s.True(created)

	second, created, err := s.svc.Goal.UpsertGoalAllocation(s.ctx, dto.UpsertGoalAllocationRequest{
		GoalID: goal.ID, AssetID: wallet.ID, AllocatedAmount: dec("350"),
	})
	s.Require().NoError(err)
	s.False(created)
	s.Equal(first.ID, second.ID)
	s.True(second.AllocatedAmount.Equal(dec("350")))

	allocs, err := s.svc.Goal.ListGoalAllocations(s.ctx, &goal.ID)
	s.Require().NoError(err)
	s.Len(allocs, 2)

	entries := s.history(domain.EntityGoalAllocation)
	s.Require().Len(entries, 3)
	s.Equal(domain.AuditUpdated, entries[0].Action)
	s.Require().NotNil(entries[0].BeforeJSON)
	var before map[string]any
	s.Require().NoError(json.Unmarshal([]byte(*entries[0].BeforeJSON), &before))
	s.Equal("200", before["allocated_amount"])

	// Allocations do not feed the goal's progress.
	stored, err := s.repos.GoalRepo.FindGoalByID(s.ctx, goal.ID)
	s.Require().NoError(err)
	s.True(stored.CurrentAmount.IsZero())

	// Nor do they move asset balances.
	s.assertAssetBalance(wallet.ID, "1000")
	s.assertAssetBalance(bank.ID, "5000")
}

func (s *PlanningServiceTestSuite) TestGoalAllocationReferencesMustExist() {
	wallet := s.createAsset("Wallet", "1000", true)
	goal := s.createGoal("Trip", "5000")

	_, _, err := s.svc.Goal.UpsertGoalAllocation(s.ctx, dto.UpsertGoalAllocationRequest{GoalID: 999, AssetID: wallet.ID, AllocatedAmount: dec("1")})
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, _, err = s.svc.Goal.UpsertGoalAllocation(s.ctx, dto.UpsertGoalAllocationRequest{GoalID: goal.ID, AssetID: 999, AllocatedAmount: dec("1")})
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, _, err = s.svc.Goal.UpsertGoalAllocation(s.ctx, dto.UpsertGoalAllocationRequest{GoalID: goal.ID, AssetID: wallet.ID, AllocatedAmount: dec("-5")})
	s.ErrorIs(err, apperrors.ErrValidation)

	s.Empty(s.history(domain.EntityGoalAllocation))
}
