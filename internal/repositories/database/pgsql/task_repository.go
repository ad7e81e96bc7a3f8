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

const taskColumns = `id, title, description, due_date, priority, recurrence, last_completed_on, completed_at, created_at, updated_at`

type PgxTaskRepository struct {
	BaseRepository
}

func newPgxTaskRepository(base BaseRepository) portsrepo.TaskRepositoryFacade {
	return &PgxTaskRepository{BaseRepository: base}
}

var _ portsrepo.TaskRepositoryFacade = (*PgxTaskRepository)(nil)

func (r *PgxTaskRepository) SaveTask(ctx context.Context, task domain.Task) (*domain.Task, error) {
	query := `
		INSERT INTO tasks (title, description, due_date, priority, recurrence, last_completed_on, completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	err := r.DB.QueryRow(ctx, query,
		task.Title, task.Description, task.DueDate, task.Priority, string(task.Recurrence),
		task.LastCompletedOn, task.CompletedAt, task.CreatedAt, task.UpdatedAt,
	).Scan(&task.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to save task %q: %w", task.Title, err)
	}
	return &task, nil
}

func (r *PgxTaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	query := `
		UPDATE tasks
		SET title = $2, description = $3, due_date = $4, priority = $5, recurrence = $6,
			last_completed_on = $7, completed_at = $8, updated_at = $9
		WHERE id = $1;
	`
	tag, err := r.DB.Exec(ctx, query,
		task.ID, task.Title, task.Description, task.DueDate, task.Priority, string(task.Recurrence),
		task.LastCompletedOn, task.CompletedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update task %d: %w", task.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundf("task %d", task.ID)
	}
	return nil
}

func (r *PgxTaskRepository) DeleteTask(ctx context.Context, taskID int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task %d: %w", taskID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundf("task %d", taskID)
	}
	return nil
}

func (r *PgxTaskRepository) FindTaskByID(ctx context.Context, taskID int64) (*domain.Task, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to query task %d: %w", taskID, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Task])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("task %d", taskID)
		}
		return nil, fmt.Errorf("failed to scan task %d: %w", taskID, err)
	}
	t := mapping.ToDomainTask(m)
	return &t, nil
}

// ListTasks returns tasks in id order; view filtering and ordering depend on "today" and live in the service.
func (r *PgxTaskRepository) ListTasks(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Task])
	if err != nil {
		return nil, fmt.Errorf("failed to scan tasks: %w", err)
	}
	return mapping.ToDomainTaskSlice(items), nil
}

func (r *PgxTaskRepository) SaveTaskHistory(ctx context.Context, entry domain.TaskHistory) error {
	query := `
		INSERT INTO task_history (task_id, action, task_title, changes, created_at)
		VALUES ($1, $2, $3, $4::jsonb, $5);
	`
	if _, err := r.DB.Exec(ctx, query, entry.TaskID, string(entry.Action), entry.TaskTitle, entry.Changes, entry.CreatedAt); err != nil {
		return fmt.Errorf("failed to save task history for task %d: %w", entry.TaskID, err)
	}
	return nil
}

func (r *PgxTaskRepository) ListTaskHistory(ctx context.Context, limit int) ([]domain.TaskHistory, error) {
	query := `
		SELECT id, task_id, action, task_title, changes::text AS changes, created_at
		FROM task_history
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	rows, err := r.DB.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query task history: %w", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.TaskHistory])
	if err != nil {
		return nil, fmt.Errorf("failed to scan task history: %w", err)
	}
	return mapping.ToDomainTaskHistorySlice(items), nil
}

type PgxHabitRepository struct {
	BaseRepository
}

func newPgxHabitRepository(base BaseRepository) portsrepo.HabitRepositoryFacade {
	return &PgxHabitRepository{BaseRepository: base}
}

func (r *PgxHabitRepository) SaveHabit(ctx context.Context, habit domain.Habit) (*domain.Habit, error) {
	query := `INSERT INTO habits (name, frequency, created_at, updated_at) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.DB.QueryRow(ctx, query, habit.Name, habit.Frequency, habit.CreatedAt, habit.UpdatedAt).Scan(&habit.ID); err != nil {
		return nil, fmt.Errorf("failed to save habit %q: %w", habit.Name, err)
	}
	return &habit, nil
}

func (r *PgxHabitRepository) ListHabits(ctx context.Context) ([]domain.Habit, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, name, frequency, created_at, updated_at FROM habits ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query habits: %w", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Habit])
	if err != nil {
		return nil, fmt.Errorf("failed to scan habits: %w", err)
	}
	return mapping.ToDomainHabitSlice(items), nil
}
