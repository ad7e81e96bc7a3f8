package mapping

import (
	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/SscSPs/personal_os/internal/models"
)

func ToDomainRecurringRule(m models.RecurringRule) domain.RecurringRule {
	return domain.RecurringRule{
		ID:          m.ID,
		Name:        m.Name,
		TxnType:     domain.TxnType(m.TxnType),
		Amount:      m.Amount,
		Category:    m.Category,
		Description: m.Description,
		Schedule:    domain.Schedule(m.Schedule),
		DayOfMonth:  toIntPtr(m.DayOfMonth),
		DayOfWeek:   toIntPtr(m.DayOfWeek),
		NextDueDate: m.NextDueDate,
		AutoCreate:  m.AutoCreate,
		IsActive:    m.IsActive,
		AssetID:     m.AssetID,
		LiabilityID: m.LiabilityID,
		Timestamps:  domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

func ToModelRecurringRule(d domain.RecurringRule) models.RecurringRule {
	return models.RecurringRule{
		ID:          d.ID,
		Name:        d.Name,
		TxnType:     string(d.TxnType),
		Amount:      d.Amount,
		Category:    d.Category,
		Description: d.Description,
		Schedule:    string(d.Schedule),
		DayOfMonth:  toInt32Ptr(d.DayOfMonth),
		DayOfWeek:   toInt32Ptr(d.DayOfWeek),
		NextDueDate: d.NextDueDate,
		AutoCreate:  d.AutoCreate,
		IsActive:    d.IsActive,
		AssetID:     d.AssetID,
		LiabilityID: d.LiabilityID,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func ToDomainRecurringRuleSlice(ms []models.RecurringRule) []domain.RecurringRule {
	ds := make([]domain.RecurringRule, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRecurringRule(m)
	}
	return ds
}

func ToDomainOccurrence(m models.RecurringOccurrence) domain.RecurringOccurrence {
	return domain.RecurringOccurrence{
		ID:            m.ID,
		RecurringID:   m.RecurringID,
		DueDate:       m.DueDate,
		Status:        domain.OccurrenceStatus(m.Status),
		TransactionID: m.TransactionID,
		CreatedAt:     m.CreatedAt,
	}
}

func ToDomainOccurrenceDetailSlice(ms []models.OccurrenceDetail) []domain.OccurrenceDetail {
	ds := make([]domain.OccurrenceDetail, len(ms))
	for i, m := range ms {
		ds[i] = domain.OccurrenceDetail{
			RecurringOccurrence: domain.RecurringOccurrence{
				ID:            m.ID,
				RecurringID:   m.RecurringID,
				DueDate:       m.DueDate,
				Status:        domain.OccurrenceStatus(m.Status),
				TransactionID: m.TransactionID,
				CreatedAt:     m.CreatedAt,
			},
			Name:     m.Name,
			TxnType:  domain.TxnType(m.TxnType),
			Amount:   m.Amount,
			Category: m.Category,
		}
	}
	return ds
}

func ToDomainMonthlyBudget(m models.MonthlyBudget) domain.MonthlyBudget {
	return domain.MonthlyBudget{
		ID:             m.ID,
		Year:           int(m.Year),
		Month:          int(m.Month),
		TotalBudget:    m.TotalBudget,
		RolloverUnused: m.RolloverUnused,
		Timestamps:     domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

func ToDomainMonthlyBudgetSlice(ms []models.MonthlyBudget) []domain.MonthlyBudget {
	ds := make([]domain.MonthlyBudget, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMonthlyBudget(m)
	}
	return ds
}

func ToDomainCategoryBudget(m models.CategoryBudget) domain.CategoryBudget {
	return domain.CategoryBudget{
		ID:             m.ID,
		Year:           int(m.Year),
		Month:          int(m.Month),
		Category:       m.Category,
		LimitAmount:    m.LimitAmount,
		RolloverUnused: m.RolloverUnused,
		Timestamps:     domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

func ToDomainCategoryBudgetSlice(ms []models.CategoryBudget) []domain.CategoryBudget {
	ds := make([]domain.CategoryBudget, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategoryBudget(m)
	}
	return ds
}

func ToDomainGoal(m models.Goal) domain.Goal {
	return domain.Goal{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		Category:      m.Category,
		TargetDate:    m.TargetDate,
		IsActive:      m.IsActive,
		Timestamps:    domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

func ToDomainGoalSlice(ms []models.Goal) []domain.Goal {
	ds := make([]domain.Goal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGoal(m)
	}
	return ds
}

func ToDomainGoalAllocation(m models.GoalAllocation) domain.GoalAllocation {
	return domain.GoalAllocation{
		ID:              m.ID,
		GoalID:          m.GoalID,
		AssetID:         m.AssetID,
		AllocatedAmount: m.AllocatedAmount,
		Timestamps:      domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

func ToDomainGoalAllocationSlice(ms []models.GoalAllocation) []domain.GoalAllocation {
	ds := make([]domain.GoalAllocation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGoalAllocation(m)
	}
	return ds
}
