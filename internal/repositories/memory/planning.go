package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/SscSPs/personal_os/internal/apperrors"
	"github.com/SscSPs/personal_os/internal/core/domain"
)

type recurringRepository struct{ x session }

func (r *recurringRepository) SaveRecurringRule(_ context.Context, rule domain.RecurringRule) (*domain.RecurringRule, error) {
	_ = r.x.write(func(st *state) error {
		rule.ID = st.nextID()
		st.rules[rule.ID] = rule
		return nil
	})
	return &rule, nil
}

func (r *recurringRepository) UpdateRecurringRule(_ context.Context, rule domain.RecurringRule) error {
	return r.x.write(func(st *state) error {
		cur, ok := st.rules[rule.ID]
		if !ok {
			return apperrors.NotFoundf("recurring rule %d", rule.ID)
		}
		rule.CreatedAt = cur.CreatedAt
		st.rules[rule.ID] = rule
		return nil
	})
}

func (r *recurringRepository) FindRecurringRuleByID(_ context.Context, ruleID int64) (*domain.RecurringRule, error) {
	var (
		rule domain.RecurringRule
		ok   bool
	)
	r.x.read(func(st *state) { rule, ok = st.rules[ruleID] })
	if !ok {
		return nil, apperrors.NotFoundf("recurring rule %d", ruleID)
	}
	return &rule, nil
}

func (r *recurringRepository) ListRecurringRules(_ context.Context) ([]domain.RecurringRule, error) {
	var out []domain.RecurringRule
	r.x.read(func(st *state) {
		out = make([]domain.RecurringRule, 0, len(st.rules))
		for _, rule := range st.rules {
			out = append(out, rule)
		}
	})
	slices.SortFunc(out, func(a, b domain.RecurringRule) int {
		return cmp.Or(a.NextDueDate.Compare(b.NextDueDate), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}

func (r *recurringRepository) SaveOccurrence(_ context.Context, occ domain.RecurringOccurrence) (*domain.RecurringOccurrence, error) {
	err := r.x.write(func(st *state) error {
		if _, ok := st.rules[occ.RecurringID]; !ok {
			return apperrors.NotFoundf("recurring rule %d", occ.RecurringID)
		}
		occ.ID = st.nextID()
		st.occurrences[occ.ID] = occ
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &occ, nil
}

func (r *recurringRepository) FindOccurrenceByID(_ context.Context, occurrenceID int64) (*domain.RecurringOccurrence, error) {
	var (
		occ domain.RecurringOccurrence
		ok  bool
	)
	r.x.read(func(st *state) { occ, ok = st.occurrences[occurrenceID] })
	if !ok {
		return nil, apperrors.NotFoundf("occurrence %d", occurrenceID)
	}
	return &occ, nil
}

func (r *recurringRepository) UpdateOccurrence(_ context.Context, occ domain.RecurringOccurrence) error {
	return r.x.write(func(st *state) error {
		cur, ok := st.occurrences[occ.ID]
		if !ok {
			return apperrors.NotFoundf("occurrence %d", occ.ID)
		}
		occ.CreatedAt = cur.CreatedAt
		st.occurrences[occ.ID] = occ
		return nil
	})
}

func (r *recurringRepository) ListOccurrences(_ context.Context, status domain.OccurrenceStatus) ([]domain.OccurrenceDetail, error) {
	var out []domain.OccurrenceDetail
	r.x.read(func(st *state) {
		for _, occ := range st.occurrences {
			if status != "" && occ.Status != status {
				continue
			}
			rule, ok := st.rules[occ.RecurringID]
			if !ok {
				continue
			}
			out = append(out, domain.OccurrenceDetail{
				RecurringOccurrence: occ,
				Name:                rule.Name,
				TxnType:             rule.TxnType,
				Amount:              rule.Amount,
				Category:            rule.Category,
			})
		}
	})
	slices.SortFunc(out, func(a, b domain.OccurrenceDetail) int {
		return cmp.Or(a.DueDate.Compare(b.DueDate), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}

// Upserts take the caller's CreatedAt as "now": a fresh row keeps it, a
// conflicting row keeps its original CreatedAt and is touched with it instead.
type budgetRepository struct{ x session }

func (r *budgetRepository) FindMonthlyBudget(_ context.Context, year, month int) (*domain.MonthlyBudget, error) {
	var found *domain.MonthlyBudget
	r.x.read(func(st *state) {
		for _, b := range st.monthlyBudgets {
			if b.Year == year && b.Month == month {
				found = &b
				return
			}
		}
	})
	return found, nil
}

func (r *budgetRepository) UpsertMonthlyBudget(_ context.Context, budget domain.MonthlyBudget) (*domain.MonthlyBudget, bool, error) {
	created := true
	_ = r.x.write(func(st *state) error {
		for id, b := range st.monthlyBudgets {
			if b.Year == budget.Year && b.Month == budget.Month {
				created = false
				now := budget.CreatedAt
				budget.ID = id
				budget.CreatedAt = b.CreatedAt
				budget.Touch(now)
				break
			}
		}
		if created {
			budget.ID = st.nextID()
			budget.UpdatedAt = nil
		}
		st.monthlyBudgets[budget.ID] = budget
		return nil
	})
	return &budget, created, nil
}

func (r *budgetRepository) ListMonthlyBudgets(_ context.Context) ([]domain.MonthlyBudget, error) {
	var out []domain.MonthlyBudget
	r.x.read(func(st *state) {
		out = make([]domain.MonthlyBudget, 0, len(st.monthlyBudgets))
		for _, b := range st.monthlyBudgets {
			out = append(out, b)
		}
	})
	slices.SortFunc(out, func(a, b domain.MonthlyBudget) int {
		return cmp.Or(cmp.Compare(b.Year, a.Year), cmp.Compare(b.Month, a.Month))
	})
	return out, nil
}

func (r *budgetRepository) FindCategoryBudget(_ context.Context, year, month int, category string) (*domain.CategoryBudget, error) {
	var found *domain.CategoryBudget
	r.x.read(func(st *state) {
		for _, b := range st.categoryBudgets {
			if b.Year == year && b.Month == month && b.Category == category {
				found = &b
				return
			}
		}
	})
	return found, nil
}

func (r *budgetRepository) UpsertCategoryBudget(_ context.Context, budget domain.CategoryBudget) (*domain.CategoryBudget, bool, error) {
	created := true
	_ = r.x.write(func(st *state) error {
		for id, b := range st.categoryBudgets {
			if b.Year == budget.Year && b.Month == budget.Month && b.Category == budget.Category {
				created = false
				now := budget.CreatedAt
				budget.ID = id
				budget.CreatedAt = b.CreatedAt
				budget.Touch(now)
				break
			}
		}
		if created {
			budget.ID = st.nextID()
			budget.UpdatedAt = nil
		}
		st.categoryBudgets[budget.ID] = budget
		return nil
	})
	return &budget, created, nil
}

func (r *budgetRepository) ListCategoryBudgets(_ context.Context, year, month *int) ([]domain.CategoryBudget, error) {
	var out []domain.CategoryBudget
	r.x.read(func(st *state) {
		for _, b := range st.categoryBudgets {
			if year != nil && b.Year != *year {
				continue
			}
			if month != nil && b.Month != *month {
				continue
			}
			out = append(out, b)
		}
	})
	slices.SortFunc(out, func(a, b domain.CategoryBudget) int {
		return cmp.Or(cmp.Compare(b.Year, a.Year), cmp.Compare(b.Month, a.Month), cmp.Compare(a.Category, b.Category))
	})
	return out, nil
}

type goalRepository struct{ x session }

func (r *goalRepository) SaveGoal(_ context.Context, goal domain.Goal) (*domain.Goal, error) {
	_ = r.x.write(func(st *state) error {
		goal.ID = st.nextID()
		st.goals[goal.ID] = goal
		return nil
	})
	return &goal, nil
}

func (r *goalRepository) UpdateGoal(_ context.Context, goal domain.Goal) error {
	return r.x.write(func(st *state) error {
		cur, ok := st.goals[goal.ID]
		if !ok {
			return apperrors.NotFoundf("goal %d", goal.ID)
		}
		goal.CreatedAt = cur.CreatedAt
		st.goals[goal.ID] = goal
		return nil
	})
}

func (r *goalRepository) FindGoalByID(_ context.Context, goalID int64) (*domain.Goal, error) {
	var (
		g  domain.Goal
		ok bool
	)
	r.x.read(func(st *state) { g, ok = st.goals[goalID] })
	if !ok {
		return nil, apperrors.NotFoundf("goal %d", goalID)
	}
	return &g, nil
}

func (r *goalRepository) ListGoals(_ context.Context, activeOnly bool) ([]domain.Goal, error) {
	var out []domain.Goal
	r.x.read(func(st *state) {
		for _, g := range st.goals {
			if activeOnly && !g.IsActive {
				continue
			}
			out = append(out, g)
		}
	})
	slices.SortFunc(out, func(a, b domain.Goal) int {
		if a.IsActive != b.IsActive {
			if a.IsActive {
				return -1
			}
			return 1
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return out, nil
}

func (r *goalRepository) FindGoalAllocation(_ context.Context, goalID, assetID int64) (*domain.GoalAllocation, error) {
	var found *domain.GoalAllocation
	r.x.read(func(st *state) {
		for _, a := range st.allocations {
			if a.GoalID == goalID && a.AssetID == assetID {
				found = &a
				return
			}
		}
	})
	return found, nil
}

func (r *goalRepository) UpsertGoalAllocation(_ context.Context, alloc domain.GoalAllocation) (*domain.GoalAllocation, bool, error) {
	created := true
	err := r.x.write(func(st *state) error {
		if _, ok := st.goals[alloc.GoalID]; !ok {
			return apperrors.NotFoundf("goal %d", alloc.GoalID)
		}
		if _, ok := st.assets[alloc.AssetID]; !ok {
			return apperrors.NotFoundf("asset %d", alloc.AssetID)
		}
		for id, a := range st.allocations {
			if a.GoalID == alloc.GoalID && a.AssetID == alloc.AssetID {
				created = false
				now := alloc.CreatedAt
				alloc.ID = id
				alloc.CreatedAt = a.CreatedAt
				alloc.Touch(now)
				break
			}
		}
		if created {
			alloc.ID = st.nextID()
			alloc.UpdatedAt = nil
		}
		st.allocations[alloc.ID] = alloc
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &alloc, created, nil
}

func (r *goalRepository) ListGoalAllocations(_ context.Context, goalID *int64) ([]domain.GoalAllocation, error) {
	var out []domain.GoalAllocation
	r.x.read(func(st *state) {
		for _, a := range st.allocations {
			if goalID != nil && a.GoalID != *goalID {
				continue
			}
			out = append(out, a)
		}
	})
	slices.SortFunc(out, func(a, b domain.GoalAllocation) int {
		return cmp.Or(cmp.Compare(a.GoalID, b.GoalID), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}
