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

const (
	goalColumns       = `id, name, description, target_amount, current_amount, category, target_date, is_active, created_at, updated_at`
	allocationColumns = `id, goal_id, asset_id, allocated_amount, created_at, updated_at`
)

type upsertedGoalAllocation struct {
	models.GoalAllocation
	Inserted bool `db:"inserted"`
}

type PgxGoalRepository struct {
	BaseRepository
}

func newPgxGoalRepository(base BaseRepository) portsrepo.GoalRepositoryFacade {
	return &PgxGoalRepository{BaseRepository: base}
}

var _ portsrepo.GoalRepositoryFacade = (*PgxGoalRepository)(nil)

func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) (*domain.Goal, error) {
	query := `
		INSERT INTO finance_goals (name, description, target_amount, current_amount, category, target_date, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	err := r.DB.QueryRow(ctx, query,
		goal.Name, goal.Description, goal.TargetAmount, goal.CurrentAmount, goal.Category, goal.TargetDate, goal.IsActive, goal.CreatedAt,
	).Scan(&goal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to save goal %q: %w", goal.Name, err)
	}
	return &goal, nil
}

func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	query := `
		UPDATE finance_goals
		SET name = $2, description = $3, target_amount = $4, current_amount = $5, category = $6, target_date = $7,
			is_active = $8, updated_at = $9
		WHERE id = $1;
	`
	tag, err := r.DB.Exec(ctx, query,
		goal.ID, goal.Name, goal.Description, goal.TargetAmount, goal.CurrentAmount, goal.Category, goal.TargetDate,
		goal.IsActive, goal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal %d: %w", goal.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundf("goal %d", goal.ID)
	}
	return nil
}

func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, goalID int64) (*domain.Goal, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+goalColumns+` FROM finance_goals WHERE id = $1`, goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goal %d: %w", goalID, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Goal])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("goal %d", goalID)
		}
		return nil, fmt.Errorf("failed to scan goal %d: %w", goalID, err)
	}
	g := mapping.ToDomainGoal(m)
	return &g, nil
}

func (r *PgxGoalRepository) ListGoals(ctx context.Context, activeOnly bool) ([]domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM finance_goals WHERE (NOT $1 OR is_active) ORDER BY is_active DESC, id DESC`
	rows, err := r.DB.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Goal])
	if err != nil {
		return nil, fmt.Errorf("failed to scan goals: %w", err)
	}
	return mapping.ToDomainGoalSlice(items), nil
}

func (r *PgxGoalRepository) FindGoalAllocation(ctx context.Context, goalID, assetID int64) (*domain.GoalAllocation, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+allocationColumns+` FROM finance_goal_allocations WHERE goal_id = $1 AND asset_id = $2`, goalID, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goal allocation: %w", err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.GoalAllocation])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan goal allocation: %w", err)
	}
	a := mapping.ToDomainGoalAllocation(m)
	return &a, nil
}

func (r *PgxGoalRepository) UpsertGoalAllocation(ctx context.Context, alloc domain.GoalAllocation) (*domain.GoalAllocation, bool, error) {
	query := `
		INSERT INTO finance_goal_allocations (goal_id, asset_id, allocated_amount, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (goal_id, asset_id) DO UPDATE
		SET allocated_amount = EXCLUDED.allocated_amount,
			updated_at = EXCLUDED.created_at
		RETURNING ` + allocationColumns + `, (xmax = 0) AS inserted;
	`
	rows, err := r.DB.Query(ctx, query, alloc.GoalID, alloc.AssetID, alloc.AllocatedAmount, alloc.CreatedAt)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert goal allocation: %w", err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[upsertedGoalAllocation])
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, false, apperrors.NotFoundf("goal %d or asset %d", alloc.GoalID, alloc.AssetID)
		}
		return nil, false, fmt.Errorf("failed to scan upserted goal allocation: %w", err)
	}
	saved := mapping.ToDomainGoalAllocation(m.GoalAllocation)
	return &saved, m.Inserted, nil
}

func (r *PgxGoalRepository) ListGoalAllocations(ctx context.Context, goalID *int64) ([]domain.GoalAllocation, error) {
	query := `
		SELECT ` + allocationColumns + `
		FROM finance_goal_allocations
		WHERE ($1::bigint IS NULL OR goal_id = $1)
		ORDER BY goal_id ASC, id ASC
	`
	rows, err := r.DB.Query(ctx, query, goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goal allocations: %w", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.GoalAllocation])
	if err != nil {
		return nil, fmt.Errorf("failed to scan goal allocations: %w", err)
	}
	return mapping.ToDomainGoalAllocationSlice(items), nil
}
