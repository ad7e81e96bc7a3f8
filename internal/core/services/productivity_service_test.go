package services_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/personal_os/internal/apperrors"
	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/SscSPs/personal_os/internal/core/services"
	"github.com/SscSPs/personal_os/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type TaskServiceTestSuite struct {
	ledgerSuite
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}

func (s *TaskServiceTestSuite) day(offset int) *dto.Date {
	return ptr(dto.NewDate(fixedNow.AddDate(0, 0, offset)))
}

func (s *TaskServiceTestSuite) createTask(title string, due *dto.Date, recurrence domain.Recurrence) *domain.Task {
	task, err := s.svc.Task.CreateTask(s.ctx, dto.CreateTaskRequest{
		Title:      title,
		DueDate:    due,
		Recurrence: recurrence,
	})
	s.Require().NoError(err)
	return task
}

func (s *TaskServiceTestSuite) titles(view domain.TaskView) []string {
	tasks, err := s.svc.Task.ListTasks(s.ctx, view)
	s.Require().NoError(err)
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func (s *TaskServiceTestSuite) TestCreateTask_Defaults() {
	task := s.createTask("  Write report ", nil, "")
	s.Equal("Write report", task.Title)
	s.Equal(domain.PriorityMedium, task.Priority)
	s.Equal(domain.RecurrenceNone, task.Recurrence)
	s.Equal(domain.TaskTodo, task.Status(s.svc.Task.Today()))

	_, err := s.svc.Task.CreateTask(s.ctx, dto.CreateTaskRequest{Title: "x", Priority: ptr(4)})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Task.CreateTask(s.ctx, dto.CreateTaskRequest{Title: "x", Recurrence: "hourly"})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *TaskServiceTestSuite) TestTodayView() {
	s.createTask("overdue", s.day(-2), "")
	s.createTask("today", s.day(0), "")
	s.createTask("later", s.day(3), "")
	s.createTask("undated", nil, "")
	done := s.createTask("done yesterday", s.day(-1), "")
	_, err := s.svc.Task.UpdateTask(s.ctx, done.ID, dto.UpdateTaskRequest{Completed: dto.Some(true)})
	s.Require().NoError(err)

	s.Equal([]string{"overdue", "today", "undated"}, s.titles(domain.TaskViewToday))
	s.Equal([]string{"overdue", "today", "later", "undated", "done yesterday"}, s.titles(domain.TaskViewAll))

	_, err = s.svc.Task.ListTasks(s.ctx, "week")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *TaskServiceTestSuite) TestRecurringCompletionIsPerDay() {
	task := s.createTask("Stretch", nil, domain.RecurrenceDaily)

	updated, err := s.svc.Task.UpdateTask(s.ctx, task.ID, dto.UpdateTaskRequest{Completed: dto.Some(true)})
	s.Require().NoError(err)
	s.Nil(updated.CompletedAt)
	s.Require().NotNil(updated.LastCompletedOn)
	s.Equal(s.svc.Task.Today(), *updated.LastCompletedOn)
	s.Equal(domain.TaskDone, updated.Status(s.svc.Task.Today()))
	s.Equal(domain.TaskTodo, updated.Status(s.svc.Task.Today().AddDate(0, 0, 1)))

	reopened, err := s.svc.Task.UpdateTask(s.ctx, task.ID, dto.UpdateTaskRequest{Completed: dto.Some(false)})
	s.Require().NoError(err)
	s.Nil(reopened.LastCompletedOn)
}

func (s *TaskServiceTestSuite) TestUpdateTask_ClearsDueDate() {
	task := s.createTask("Dentist", s.day(5), "")

	updated, err := s.svc.Task.UpdateTask(s.ctx, task.ID, dto.UpdateTaskRequest{DueDate: dto.Null[dto.Date]()})
	s.Require().NoError(err)
	s.Nil(updated.DueDate)

	_, err = s.svc.Task.UpdateTask(s.ctx, task.ID, dto.UpdateTaskRequest{Title: dto.Null[string]()})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Task.UpdateTask(s.ctx, 404, dto.UpdateTaskRequest{Title: dto.Some("x")})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *TaskServiceTestSuite) TestHistoryRecordsEveryMutation() {
	task := s.createTask("Draft", nil, "")
	_, err := s.svc.Task.UpdateTask(s.ctx, task.ID, dto.UpdateTaskRequest{Title: dto.Some("Final")})
	s.Require().NoError(err)
	_, err = s.svc.Task.UpdateTask(s.ctx, task.ID, dto.UpdateTaskRequest{Completed: dto.Some(true)})
	s.Require().NoError(err)
	_, err = s.svc.Task.UpdateTask(s.ctx, task.ID, dto.UpdateTaskRequest{Completed: dto.Some(false)})
	s.Require().NoError(err)
	s.Require().NoError(s.svc.Task.DeleteTask(s.ctx, task.ID))

	rows, err := s.svc.Task.ListTaskHistory(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(rows, 5)

	actions := make([]domain.TaskAction, len(rows))
	for i, r := range rows {
		actions[i] = r.Action
		s.Equal(task.ID, r.TaskID)
	}
	s.Equal([]domain.TaskAction{
		domain.TaskDeleted,
		domain.TaskUncompleted,
		domain.TaskCompleted,
		domain.TaskUpdated,
		domain.TaskCreated,
	}, actions)
	s.Equal("Final", rows[0].TaskTitle)
	s.Nil(rows[0].Changes)

	s.Require().NotNil(rows[3].Changes)
	var diff map[string]map[string]any
	s.Require().NoError(json.Unmarshal([]byte(*rows[3].Changes), &diff))
	s.Equal(map[string]map[string]any{"title": {"from": "Draft", "to": "Final"}}, diff)

	limited, err := s.svc.Task.ListTaskHistory(s.ctx, -10)
	s.Require().NoError(err)
	s.Len(limited, 1)

	s.ErrorIs(s.svc.Task.DeleteTask(s.ctx, task.ID), apperrors.ErrNotFound)
}

func (s *TaskServiceTestSuite) TestCreateHabit() {
	habit, err := s.svc.Habit.CreateHabit(s.ctx, dto.CreateHabitRequest{Name: " Read "})
	s.Require().NoError(err)
	s.Equal("Read", habit.Name)
	s.Equal(domain.DefaultHabitFrequency, habit.Frequency)

	_, err = s.svc.Habit.CreateHabit(s.ctx, dto.CreateHabitRequest{Name: "Run", Frequency: "weekly"})
	s.Require().NoError(err)

	habits, err := s.svc.Habit.ListHabits(s.ctx)
	s.Require().NoError(err)
	s.Len(habits, 2)

	_, err = s.svc.Habit.CreateHabit(s.ctx, dto.CreateHabitRequest{Name: ""})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func TestSortTasks(t *testing.T) {
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	d := func(offset int) *time.Time {
		v := today.AddDate(0, 0, offset)
		return &v
	}
	older := today.Add(-time.Hour)

	tasks := []domain.Task{
		{ID: 1, Title: "undated", CreatedAt: today},
		{ID: 2, Title: "done", DueDate: d(-3), CompletedAt: d(0), CreatedAt: today},
		{ID: 3, Title: "tomorrow", DueDate: d(1), CreatedAt: today},
		{ID: 4, Title: "today old", DueDate: d(0), CreatedAt: older},
		{ID: 5, Title: "today new", DueDate: d(0), CreatedAt: today},
		{ID: 6, Title: "today same time", DueDate: d(0), CreatedAt: today},
	}
	services.SortTasks(tasks, today)

	got := make([]string, len(tasks))
	for i, task := range tasks {
		got[i] = task.Title
	}
	assert.Equal(t, []string{"today same time", "today new", "today old", "tomorrow", "undated", "done"}, got)
}
