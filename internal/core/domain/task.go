package domain

import "time"

// TaskStatus is derived from completion state and due date; it is never stored.
type TaskStatus string

const (
	TaskTodo    TaskStatus = "todo"
	TaskOverdue TaskStatus = "overdue"
	TaskDone    TaskStatus = "done"
)

// Recurrence marks a task that is done per period rather than once.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

func (r Recurrence) IsValid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

type Task struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Description     *string    `json:"description"`
	DueDate         *time.Time `json:"due_date"`
	Priority        int        `json:"priority"`
	Recurrence      Recurrence `json:"recurrence"`
	LastCompletedOn *time.Time `json:"last_completed_on"`
	CompletedAt     *time.Time `json:"completed_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// IsRecurring reports whether the task repeats.
func (t Task) IsRecurring() bool {
	return t.Recurrence != "" && t.Recurrence != RecurrenceNone
}

// IsCompleted reports whether the task counts as done on the given day.
// A recurring task is done only for the day it was last completed on.
func (t Task) IsCompleted(today time.Time) bool {
	if t.IsRecurring() {
		return t.LastCompletedOn != nil && DateOnly(*t.LastCompletedOn).Equal(DateOnly(today))
	}
	return t.CompletedAt != nil
}

// Status derives the task status for the given day.
func (t Task) Status(today time.Time) TaskStatus {
	if t.IsCompleted(today) {
		return TaskDone
	}
	if t.DueDate != nil && DateOnly(*t.DueDate).Before(DateOnly(today)) {
		return TaskOverdue
	}
	return TaskTodo
}

// TaskView selects which tasks a listing returns.
type TaskView string

const (
	TaskViewAll   TaskView = "all"
	TaskViewToday TaskView = "today"
)

// TaskAction is what a task history row records.
type TaskAction string

const (
	TaskCreated     TaskAction = "created"
	TaskUpdated     TaskAction = "updated"
	TaskDeleted     TaskAction = "deleted"
	TaskCompleted   TaskAction = "completed"
	TaskUncompleted TaskAction = "uncompleted"
)

// TaskHistory is an append-only log row for task mutations. Changes is a JSON document.
type TaskHistory struct {
	ID        int64      `json:"id"`
	TaskID    int64      `json:"task_id"`
	Action    TaskAction `json:"action"`
	TaskTitle string     `json:"task_title"`
	Changes   *string    `json:"changes"`
	CreatedAt time.Time  `json:"created_at"`
}
