package services

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/personal_os/internal/apperrors"
	"github.com/SscSPs/personal_os/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_os/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_os/internal/core/ports/services"
	"github.com/SscSPs/personal_os/internal/dto"
	"github.com/SscSPs/personal_os/internal/utils/pagination"
)

const (
	// DefaultTaskHistoryLimit is used when the caller asks for no particular page size.
	DefaultTaskHistoryLimit = 50
	MaxTaskHistoryLimit     = 200
)

type taskService struct {
	BaseService
	taskRepo portsrepo.TaskRepositoryFacade
	uow      portsrepo.UnitOfWork
}

// NewTaskService creates a new task service with the provided options
func NewTaskService(repo portsrepo.TaskRepositoryFacade, uow portsrepo.UnitOfWork, opts ...ServiceOption) portssvc.TaskSvcFacade {
	return &taskService{
		BaseService: newBaseService(opts...),
		taskRepo:    repo,
		uow:         uow,
	}
}

var _ portssvc.TaskSvcFacade = (*taskService)(nil)

func (s *taskService) Today() time.Time {
	return domain.DateOnly(s.Now())
}

func (s *taskService) ListTasks(ctx context.Context, view domain.TaskView) ([]domain.Task, error) {
	if view == "" {
		view = domain.TaskViewAll
	}
	if view != domain.TaskViewAll && view != domain.TaskViewToday {
		return nil, apperrors.Validationf("invalid view %q", view)
	}

	tasks, err := s.taskRepo.ListTasks(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tasks")
		return nil, err
	}

	today := s.Today()
	if view == domain.TaskViewToday {
		tasks = slices.DeleteFunc(tasks, func(t domain.Task) bool { return !dueToday(t, today) })
	}
	SortTasks(tasks, today)
	return tasks, nil
}

// dueToday selects tasks due today plus open tasks that are overdue or undated.
func dueToday(t domain.Task, today time.Time) bool {
	if t.DueDate != nil && domain.DateOnly(*t.DueDate).Equal(today) {
		return true
	}
	if t.IsCompleted(today) {
		return false
	}
	return t.DueDate == nil || domain.DateOnly(*t.DueDate).Before(today)
}

// SortTasks orders incomplete tasks first, dated before undated, earliest
// due date first and newest first within a day.
func SortTasks(tasks []domain.Task, today time.Time) {
	slices.SortStableFunc(tasks, func(a, b domain.Task) int {
		if c := compareBool(a.IsCompleted(today), b.IsCompleted(today)); c != 0 {
			return c
		}
		if c := compareBool(a.DueDate == nil, b.DueDate == nil); c != 0 {
			return c
		}
		if a.DueDate != nil && b.DueDate != nil {
			if c := domain.DateOnly(*a.DueDate).Compare(domain.DateOnly(*b.DueDate)); c != 0 {
				return c
			}
		}
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ID, a.ID))
	})
}

// compareBool sorts false before true.
func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}

func (s *taskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*domain.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.Validationf("title is required")
	}
	priority := domain.PriorityMedium
	if req.Priority != nil {
		priority = *req.Priority
	}
	recurrence := req.Recurrence
	if recurrence == "" {
		recurrence = domain.RecurrenceNone
	}
	if err := validateTaskFields(priority, recurrence); err != nil {
		return nil, err
	}

	now := s.Now()
	task := domain.Task{
		Title:       title,
		Description: req.Description,
		DueDate:     req.DueDate.TimePtr(),
		Priority:    priority,
		Recurrence:  recurrence,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created *domain.Task
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		saved, err := repos.TaskRepo.SaveTask(ctx, task)
		if err != nil {
			return err
		}
		created = saved
		return writeTaskHistory(ctx, repos, *saved, domain.TaskCreated, diffTasks(domain.Task{}, *saved, s.Today()), now)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create task", slog.String("title", title))
		return nil, err
	}
	return created, nil
}

func (s *taskService) UpdateTask(ctx context.Context, taskID int64, req dto.UpdateTaskRequest) (*domain.Task, error) {
	if req.Title.IsNull() || req.Priority.IsNull() || req.Recurrence.IsNull() || req.Completed.IsNull() {
		return nil, apperrors.Validationf("title, priority, recurrence and completed cannot be null")
	}

	now := s.Now()
	today := s.Today()
	var updated *domain.Task
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		current, err := repos.TaskRepo.FindTaskByID(ctx, taskID)
		if err != nil {
			return err
		}

		next := *current
		next.Title = strings.TrimSpace(*req.Title.Merge(&current.Title))
		next.Description = req.Description.Merge(current.Description)
		next.DueDate = req.DueDate.Merge(dto.DatePtr(current.DueDate)).TimePtr()
		next.Priority = *req.Priority.Merge(&current.Priority)
		next.Recurrence = *req.Recurrence.Merge(&current.Recurrence)
		if next.Title == "" {
			return apperrors.Validationf("title is required")
		}
		if err := validateTaskFields(next.Priority, next.Recurrence); err != nil {
			return err
		}

		action := domain.TaskUpdated
		if req.Completed.Set {
			action = setCompletion(&next, *req.Completed.Value, now, today)
		}
		next.UpdatedAt = now

		if err := repos.TaskRepo.UpdateTask(ctx, next); err != nil {
			return err
		}
		updated = &next
		return writeTaskHistory(ctx, repos, next, action, diffTasks(*current, next, today), now)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to update task", slog.Int64("task_id", taskID))
		}
		return nil, err
	}
	return updated, nil
}

// setCompletion toggles completion. Recurring tasks are completed for the
// current day only, one-off tasks until reopened.
func setCompletion(t *domain.Task, completed bool, now, today time.Time) domain.TaskAction {
	switch {
	case t.IsRecurring() && completed:
		t.LastCompletedOn = &today
	case t.IsRecurring():
		t.LastCompletedOn = nil
	case completed:
		if t.CompletedAt == nil {
			t.CompletedAt = &now
		}
	default:
		t.CompletedAt = nil
	}
	if completed {
		return domain.TaskCompleted
	}
	return domain.TaskUncompleted
}

func (s *taskService) DeleteTask(ctx context.Context, taskID int64) error {
	now := s.Now()
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		current, err := repos.TaskRepo.FindTaskByID(ctx, taskID)
		if err != nil {
			return err
		}
		if err := repos.TaskRepo.DeleteTask(ctx, taskID); err != nil {
			return err
		}
		return writeTaskHistory(ctx, repos, *current, domain.TaskDeleted, nil, now)
	})
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to delete task", slog.Int64("task_id", taskID))
	}
	return err
}

func (s *taskService) ListTaskHistory(ctx context.Context, limit int) ([]domain.TaskHistory, error) {
	if limit == 0 {
		limit = DefaultTaskHistoryLimit
	}
	return s.taskRepo.ListTaskHistory(ctx, pagination.Clamp(limit, 1, MaxTaskHistoryLimit))
}

func validateTaskFields(priority int, recurrence domain.Recurrence) error {
	if priority < domain.PriorityLow || priority > domain.PriorityHigh {
		return apperrors.Validationf("priority must be between %d and %d", domain.PriorityLow, domain.PriorityHigh)
	}
	if !recurrence.IsValid() {
		return apperrors.Validationf("invalid recurrence %q", recurrence)
	}
	return nil
}

// fieldChange is one entry of a task history diff.
type fieldChange struct {
	From any `json:"from"`
	To   any `json:"to"`
}

// diffTasks lists the user-visible fields that differ between before and after.
func diffTasks(before, after domain.Task, today time.Time) map[string]fieldChange {
	changes := make(map[string]fieldChange)
	add := func(field string, from, to any) {
		fromJSON, _ := json.Marshal(from)
		toJSON, _ := json.Marshal(to)
		if string(fromJSON) != string(toJSON) {
			changes[field] = fieldChange{From: from, To: to}
		}
	}
	add("title", before.Title, after.Title)
	add("description", before.Description, after.Description)
	add("due_date", dto.DatePtr(before.DueDate), dto.DatePtr(after.DueDate))
	add("priority", before.Priority, after.Priority)
	add("recurrence", before.Recurrence, after.Recurrence)
	add("completed", before.IsCompleted(today), after.IsCompleted(today))
	return changes
}

func writeTaskHistory(ctx context.Context, repos portsrepo.RepositoryProvider, task domain.Task, action domain.TaskAction, changes map[string]fieldChange, now time.Time) error {
	var encoded *string
	if len(changes) > 0 {
		b, err := json.Marshal(changes)
		if err != nil {
			return err
		}
		str := string(b)
		encoded = &str
	}
	return repos.TaskRepo.SaveTaskHistory(ctx, domain.TaskHistory{
		TaskID:    task.ID,
		Action:    action,
		TaskTitle: task.Title,
		Changes:   encoded,
		CreatedAt: now,
	})
}

type habitService struct {
	BaseService
	habitRepo portsrepo.HabitRepositoryFacade
}

// NewHabitService creates a new habit service with the provided options
func NewHabitService(repo portsrepo.HabitRepositoryFacade, opts ...ServiceOption) portssvc.HabitSvcFacade {
	return &habitService{BaseService: newBaseService(opts...), habitRepo: repo}
}

var _ portssvc.HabitSvcFacade = (*habitService)(nil)

func (s *habitService) ListHabits(ctx context.Context) ([]domain.Habit, error) {
	return s.habitRepo.ListHabits(ctx)
}

func (s *habitService) CreateHabit(ctx context.Context, req dto.CreateHabitRequest) (*domain.Habit, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.Validationf("name is required")
	}
	frequency := strings.TrimSpace(req.Frequency)
	if frequency == "" {
		frequency = domain.DefaultHabitFrequency
	}

	now := s.Now()
	habit, err := s.habitRepo.SaveHabit(ctx, domain.Habit{
		Name:      name,
		Frequency: frequency,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create habit", slog.String("name", name))
		return nil, err
	}
	return habit, nil
}
