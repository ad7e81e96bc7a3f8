package repositories

import (
	"context"

	"github.com/SscSPs/personal_os/internal/core/domain"
)

// RecurringRuleRepository stores recurring rules.
type RecurringRuleRepository interface {
	SaveRecurringRule(ctx context.Context, rule domain.RecurringRule) (*domain.RecurringRule, error)
	UpdateRecurringRule(ctx context.Context, rule domain.RecurringRule) error
	FindRecurringRuleByID(ctx context.Context, ruleID int64) (*domain.RecurringRule, error)
	// ListRecurringRules orders by next_due_date then id.
	ListRecurringRules(ctx context.Context) ([]domain.RecurringRule, error)
}

// OccurrenceRepository stores recurring occurrences.
type OccurrenceRepository interface {
	SaveOccurrence(ctx context.Context, occ domain.RecurringOccurrence) (*domain.RecurringOccurrence, error)
	FindOccurrenceByID(ctx context.Context, occurrenceID int64) (*domain.RecurringOccurrence, error)
	UpdateOccurrence(ctx context.Context, occ domain.RecurringOccurrence) error
	// ListOccurrences joins each occurrence with its rule; an empty status lists all.
	ListOccurrences(ctx context.Context, status domain.OccurrenceStatus) ([]domain.OccurrenceDetail, error)
}

type RecurringRepositoryFacade interface {
	RecurringRuleRepository
	OccurrenceRepository
}
