package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/SscSPs/personal_os/internal/apperrors"
	"github.com/SscSPs/personal_os/internal/core/domain"
)

type taskRepository struct{ x session }

func (r *taskRepository) SaveTask(_ context.Context, task domain.Task) (*domain.Task, error) {
	_ = r.x.write(func(st *state) error {
		task.ID = st.nextID()
		st.tasks[task.ID] = task
		return nil
	})
	return &task, nil
}

func (r *taskRepository) UpdateTask(_ context.Context, task domain.Task) error {
	return r.x.write(func(st *state) error {
		cur, ok := st.tasks[task.ID]
		if !ok {
			return apperrors.NotFoundf("task %d", task.ID)
		}
		task.CreatedAt = cur.CreatedAt
		st.tasks[task.ID] = task
		return nil
	})
}

func (r *taskRepository) DeleteTask(_ context.Context, taskID int64) error {
	return r.x.write(func(st *state) error {
		if _, ok := st.tasks[taskID]; !ok {
			return apperrors.NotFoundf("task %d", taskID)
		}
		delete(st.tasks, taskID)
		return nil
	})
}

func (r *taskRepository) FindTaskByID(_ context.Context, taskID int64) (*domain.Task, error) {
	var (
		t  domain.Task
		ok bool
	)
	r.x.read(func(st *state) { t, ok = st.tasks[taskID] })
	if !ok {
		return nil, apperrors.NotFoundf("task %d", taskID)
	}
	return &t, nil
}

func (r *taskRepository) ListTasks(_ context.Context) ([]domain.Task, error) {
	var out []domain.Task
	r.x.read(func(st *state) {
		out = make([]domain.Task, 0, len(st.tasks))
		for _, t := range st.tasks {
			out = append(out, t)
		}
	})
	slices.SortFunc(out, func(a, b domain.Task) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (r *taskRepository) SaveTaskHistory(_ context.Context, entry domain.TaskHistory) error {
	return r.x.write(func(st *state) error {
		entry.ID = st.nextID()
		st.taskHistory = append(st.taskHistory, entry)
		return nil
	})
}

func (r *taskRepository) ListTaskHistory(_ context.Context, limit int) ([]domain.TaskHistory, error) {
	var out []domain.TaskHistory
	r.x.read(func(st *state) { out = slices.Clone(st.taskHistory) })
	slices.SortFunc(out, func(a, b domain.TaskHistory) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ID, a.ID))
	})
	return page(out, limit, 0), nil
}

type habitRepository struct{ x session }

func (r *habitRepository) SaveHabit(_ context.Context, habit domain.Habit) (*domain.Habit, error) {
	_ = r.x.write(func(st *state) error {
		habit.ID = st.nextID()
		st.habits[habit.ID] = habit
		return nil
	})
	return &habit, nil
}

func (r *habitRepository) ListHabits(_ context.Context) ([]domain.Habit, error) {
	var out []domain.Habit
	r.x.read(func(st *state) {
		out = make([]domain.Habit, 0, len(st.habits))
		for _, h := range st.habits {
			out = append(out, h)
		}
	})
	slices.SortFunc(out, func(a, b domain.Habit) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ID, a.ID))
	})
	return out, nil
}
