package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/personal_os/internal/apperrors"
	"github.com/SscSPs/personal_os/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_os/internal/core/ports/repositories"
	"github.com/SscSPs/personal_os/internal/models"
	"github.com/SscSPs/personal_os/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const recurringRuleColumns = `id, name, txn_type, amount, category, description, schedule, day_of_month, day_of_week,
	next_due_date, auto_create, is_active, asset_id, liability_id, created_at, updated_at`

const occurrenceColumns = `id, recurring_id, due_date, status, transaction_id, created_at`

type PgxRecurringRepository struct {
	BaseRepository
}

func newPgxRecurringRepository(base BaseRepository) portsrepo.RecurringRepositoryFacade {
	return &PgxRecurringRepository{BaseRepository: base}
}

var _ portsrepo.RecurringRepositoryFacade = (*PgxRecurringRepository)(nil)

func (r *PgxRecurringRepository) SaveRecurringRule(ctx context.Context, rule domain.RecurringRule) (*domain.RecurringRule, error) {
	m := mapping.ToModelRecurringRule(rule)
	query := `
		INSERT INTO finance_recurring_rules (name, txn_type, amount, category, description, schedule, day_of_month,
			day_of_week, next_due_date, auto_create, is_active, asset_id, liability_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id;
	`
	err := r.DB.QueryRow(ctx, query,
		m.Name, m.TxnType, m.Amount, m.Category, m.Description, m.Schedule, m.DayOfMonth,
		m.DayOfWeek, m.NextDueDate, m.AutoCreate, m.IsActive, m.AssetID, m.LiabilityID, m.CreatedAt,
	).Scan(&rule.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperrors.Validationf("recurring rule references an unknown account")
		}
		return nil, fmt.Errorf("failed to save recurring rule %q: %w", rule.Name, err)
	}
	return &rule, nil
}

func (r *PgxRecurringRepository) UpdateRecurringRule(ctx context.Context, rule domain.RecurringRule) error {
	m := mapping.ToModelRecurringRule(rule)
	query := `
		UPDATE finance_recurring_rules
		SET name = $2, txn_type = $3, amount = $4, category = $5, description = $6, schedule = $7, day_of_month = $8,
			day_of_week = $9, next_due_date = $10, auto_create = $11, is_active = $12, asset_id = $13,
			liability_id = $14, updated_at = $15
		WHERE id = $1;
	`
	tag, err := r.DB.Exec(ctx, query,
		m.ID, m.Name, m.TxnType, m.Amount, m.Category, m.Description, m.Schedule, m.DayOfMonth,
		m.DayOfWeek, m.NextDueDate, m.AutoCreate, m.IsActive, m.AssetID, m.LiabilityID, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update recurring rule %d: %w", rule.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundf("recurring rule %d", rule.ID)
	}
	return nil
}

func (r *PgxRecurringRepository) FindRecurringRuleByID(ctx context.Context, ruleID int64) (*domain.RecurringRule, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+recurringRuleColumns+` FROM finance_recurring_rules WHERE id = $1`, ruleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring rule %d: %w", ruleID, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.RecurringRule])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("recurring rule %d", ruleID)
		}
		return nil, fmt.Errorf("failed to scan recurring rule %d: %w", ruleID, err)
	}
	rule := mapping.ToDomainRecurringRule(m)
	return &rule, nil
}

func (r *PgxRecurringRepository) ListRecurringRules(ctx context.Context) ([]domain.RecurringRule, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+recurringRuleColumns+` FROM finance_recurring_rules ORDER BY next_due_date ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring rules: %w", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.RecurringRule])
	if err != nil {
		return nil, fmt.Errorf("failed to scan recurring rules: %w", err)
	}
	return mapping.ToDomainRecurringRuleSlice(items), nil
}

func (r *PgxRecurringRepository) SaveOccurrence(ctx context.Context, occ domain.RecurringOccurrence) (*domain.RecurringOccurrence, error) {
	query := `
		INSERT INTO finance_recurring_occurrences (recurring_id, due_date, status, transaction_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	err := r.DB.QueryRow(ctx, query, occ.RecurringID, occ.DueDate, string(occ.Status), occ.TransactionID, occ.CreatedAt).Scan(&occ.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperrors.NotFoundf("recurring rule %d", occ.RecurringID)
		}
		return nil, fmt.Errorf("failed to save occurrence for rule %d: %w", occ.RecurringID, err)
	}
	return &occ, nil
}

func (r *PgxRecurringRepository) FindOccurrenceByID(ctx context.Context, occurrenceID int64) (*domain.RecurringOccurrence, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+occurrenceColumns+` FROM finance_recurring_occurrences WHERE id = $1`, occurrenceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query occurrence %d: %w", occurrenceID, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.RecurringOccurrence])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("occurrence %d", occurrenceID)
		}
		return nil, fmt.Errorf("failed to scan occurrence %d: %w", occurrenceID, err)
	}
	occ := mapping.ToDomainOccurrence(m)
	return &occ, nil
}

func (r *PgxRecurringRepository) UpdateOccurrence(ctx context.Context, occ domain.RecurringOccurrence) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE finance_recurring_occurrences SET due_date = $2, status = $3, transaction_id = $4 WHERE id = $1`,
		occ.ID, occ.DueDate, string(occ.Status), occ.TransactionID,
	)
	if err != nil {
		return fmt.Errorf("failed to update occurrence %d: %w", occ.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundf("occurrence %d", occ.ID)
	}
	return nil
}

func (r *PgxRecurringRepository) ListOccurrences(ctx context.Context, status domain.OccurrenceStatus) ([]domain.OccurrenceDetail, error) {
	query := `
		SELECT o.id, o.recurring_id, o.due_date, o.status, o.transaction_id, o.created_at,
			r.name, r.txn_type, r.amount, r.category
		FROM finance_recurring_occurrences o
		JOIN finance_recurring_rules r ON r.id = o.recurring_id
		WHERE ($1 = '' OR o.status = $1)
		ORDER BY o.due_date ASC, o.id ASC
	`
	rows, err := r.DB.Query(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to query occurrences: %w", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.OccurrenceDetail])
	if err != nil {
		return nil, fmt.Errorf("failed to scan occurrences: %w", err)
	}
	return mapping.ToDomainOccurrenceDetailSlice(items), nil
}
