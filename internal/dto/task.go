package dto

import (
	"time"

	"github.com/SscSPs/personal_os/internal/core/domain"
)

// CreateTaskRequest defines the data needed to create a task.
type CreateTaskRequest struct {
	Title       string            `json:"title" binding:"required,min=1,max=200"`
	Description *string           `json:"description"`
	DueDate     *Date             `json:"due_date"`
	Priority    *int              `json:"priority" binding:"omitempty,min=1,max=3"`
	Recurrence  domain.Recurrence `json:"recurrence" binding:"omitempty,oneof=none daily weekly monthly"`
}

// UpdateTaskRequest is a partial update. due_date: null clears the due date;
// completed toggles completion.
type UpdateTaskRequest struct {
	Title       Optional[string]            `json:"title"`
	Description Optional[string]            `json:"description"`
	DueDate     Optional[Date]              `json:"due_date"`
	Priority    Optional[int]               `json:"priority"`
	Recurrence  Optional[domain.Recurrence] `json:"recurrence"`
	Completed   Optional[bool]              `json:"completed"`
}

// ListTasksParams defines query parameters for listing tasks.
type ListTasksParams struct {
	View string `form:"view,default=all" binding:"omitempty,oneof=all today"`
}

type TaskResponse struct {
	ID              int64             `json:"id"`
	Title           string            `json:"title"`
	Description     *string           `json:"description"`
	DueDate         *Date             `json:"due_date"`
	Priority        int               `json:"priority"`
	Recurrence      domain.Recurrence `json:"recurrence"`
	LastCompletedOn *Date             `json:"last_completed_on"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	CompletedAt     *time.Time        `json:"completed_at"`
	Status          domain.TaskStatus `json:"status"`
}

// ToTaskResponse renders a task with its status derived for the given day.
func ToTaskResponse(t *domain.Task, today time.Time) TaskResponse {
	return TaskResponse{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		DueDate:         DatePtr(t.DueDate),
		Priority:        t.Priority,
		Recurrence:      t.Recurrence,
		LastCompletedOn: DatePtr(t.LastCompletedOn),
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
		CompletedAt:     t.CompletedAt,
		Status:          t.Status(today),
	}
}

func ToListTaskResponse(tasks []domain.Task, today time.Time) []TaskResponse {
	res := make([]TaskResponse, len(tasks))
	for i := range tasks {
		res[i] = ToTaskResponse(&tasks[i], today)
	}
	return res
}

// ListTaskHistoryParams defines query parameters for the task history.
// Limit is clamped to [1, 200] by the service.
type ListTaskHistoryParams struct {
	Limit int `form:"limit,default=50"`
}

type TaskHistoryResponse struct {
	ID        int64             `json:"id"`
	TaskID    int64             `json:"task_id"`
	Action    domain.TaskAction `json:"action"`
	TaskTitle string            `json:"task_title"`
	Changes   *string           `json:"changes"`
	CreatedAt time.Time         `json:"created_at"`
}

func ToListTaskHistoryResponse(items []domain.TaskHistory) []TaskHistoryResponse {
	res := make([]TaskHistoryResponse, len(items))
	for i, h := range items {
		res[i] = TaskHistoryResponse{
			ID:        h.ID,
			TaskID:    h.TaskID,
			Action:    h.Action,
			TaskTitle: h.TaskTitle,
			Changes:   h.Changes,
			CreatedAt: h.CreatedAt,
		}
	}
	return res
}
