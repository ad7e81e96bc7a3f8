package services

import (
	"context"
	"time"

	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/SscSPs/personal_os/internal/dto"
)

// TaskSvcFacade manages tasks and their history log.
type TaskSvcFacade interface {
	// Today is the calendar day task statuses are derived against.
	Today() time.Time
	ListTasks(ctx context.Context, view domain.TaskView) ([]domain.Task, error)
	CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*domain.Task, error)
	UpdateTask(ctx context.Context, taskID int64, req dto.UpdateTaskRequest) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID int64) error
	ListTaskHistory(ctx context.Context, limit int) ([]domain.TaskHistory, error)
}

// HabitSvcFacade manages habits.
type HabitSvcFacade interface {
	ListHabits(ctx context.Context) ([]domain.Habit, error)
	CreateHabit(ctx context.Context, req dto.CreateHabitRequest) (*domain.Habit, error)
}
