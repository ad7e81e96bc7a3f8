package mapping

import (
	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/SscSPs/personal_os/internal/models"
)

func ToDomainTask(m models.Task) domain.Task {
	return domain.Task{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		DueDate:         m.DueDate,
		Priority:        int(m.Priority),
		Recurrence:      domain.Recurrence(m.Recurrence),
		LastCompletedOn: m.LastCompletedOn,
		CompletedAt:     m.CompletedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func ToDomainTaskSlice(ms []models.Task) []domain.Task {
	ds := make([]domain.Task, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTask(m)
	}
	return ds
}

func ToDomainTaskHistorySlice(ms []models.TaskHistory) []domain.TaskHistory {
	ds := make([]domain.TaskHistory, len(ms))
	for i, m := range ms {
		ds[i] = domain.TaskHistory{
			ID:        m.ID,
			TaskID:    m.TaskID,
			Action:    domain.TaskAction(m.Action),
			TaskTitle: m.TaskTitle,
			Changes:   m.Changes,
			CreatedAt: m.CreatedAt,
		}
	}
	return ds
}

func ToDomainHabit(m models.Habit) domain.Habit {
	return domain.Habit{
		ID:        m.ID,
		Name:      m.Name,
		Frequency: m.Frequency,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToDomainHabitSlice(ms []models.Habit) []domain.Habit {
	ds := make([]domain.Habit, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainHabit(m)
	}
	return ds
}
