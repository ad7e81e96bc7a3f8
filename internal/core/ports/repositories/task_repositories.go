package repositories

import (
	"context"

	"github.com/SscSPs/personal_os/internal/core/domain"
)

// TaskRepository stores tasks.
type TaskRepository interface {
	SaveTask(ctx context.Context, task domain.Task) (*domain.Task, error)
	UpdateTask(ctx context.Context, task domain.Task) error
	DeleteTask(ctx context.Context, taskID int64) error
	FindTaskByID(ctx context.Context, taskID int64) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]domain.Task, error)
}

// TaskHistoryRepository is the append-only task log.
type TaskHistoryRepository interface {
	SaveTaskHistory(ctx context.Context, entry domain.TaskHistory) error
	// ListTaskHistory returns the newest entries first.
	ListTaskHistory(ctx context.Context, limit int) ([]domain.TaskHistory, error)
}

type TaskRepositoryFacade interface {
	TaskRepository
	TaskHistoryRepository
}

// HabitRepositoryFacade stores habits.
type HabitRepositoryFacade interface {
	SaveHabit(ctx context.Context, habit domain.Habit) (*domain.Habit, error)
	// ListHabits returns the newest habits first.
	ListHabits(ctx context.Context) ([]domain.Habit, error)
}
