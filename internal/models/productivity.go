package models

import "time"

// Task is the tasks row.
type Task struct {
	ID              int64      `db:"id"`
	Title           string     `db:"title"`
	Description     *string    `db:"description"`
	DueDate         *time.Time `db:"due_date"`
	Priority        int32      `db:"priority"`
	Recurrence      string     `db:"recurrence"`
	LastCompletedOn *time.Time `db:"last_completed_on"`
	CompletedAt     *time.Time `db:"completed_at"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

// TaskHistory is the task_history row.
type TaskHistory struct {
	ID        int64     `db:"id"`
	TaskID    int64     `db:"task_id"`
	Action    string    `db:"action"`
	TaskTitle string    `db:"task_title"`
	Changes   *string   `db:"changes"`
	CreatedAt time.Time `db:"created_at"`
}

// Habit is the habits row.
type Habit struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Frequency string    `db:"frequency"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
