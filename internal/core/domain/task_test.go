package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestTask_Status(t *testing.T) {
	today := time.Date(2024, time.May, 10, 15, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	tests := []struct {
		name string
		task domain.Task
		want domain.TaskStatus
	}{
		{
			name: "no due date",
			task: domain.Task{Recurrence: domain.RecurrenceNone},
			want: domain.TaskTodo,
		},
		{
			name: "due tomorrow",
			task: domain.Task{DueDate: &tomorrow},
			want: domain.TaskTodo,
		},
		{
			name: "due today is not overdue",
			task: domain.Task{DueDate: &today},
			want: domain.TaskTodo,
		},
		{
			name: "past due",
			task: domain.Task{DueDate: &yesterday},
			want: domain.TaskOverdue,
		},
		{
			name: "completed wins over past due",
			task: domain.Task{DueDate: &yesterday, CompletedAt: &yesterday},
			want: domain.TaskDone,
		},
		{
			name: "recurring completed today",
			task: domain.Task{Recurrence: domain.RecurrenceDaily, LastCompletedOn: &today},
			want: domain.TaskDone,
		},
		{
			name: "recurring completed yesterday is open again",
			task: domain.Task{Recurrence: domain.RecurrenceDaily, LastCompletedOn: &yesterday},
			want: domain.TaskTodo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.task.Status(today))
		})
	}
}
