package dto

import (
	"time"

	"github.com/SscSPs/personal_os/internal/core/domain"
)

// CreateHabitRequest defines the data needed to create a habit.
type CreateHabitRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=120"`
	Frequency string `json:"frequency" binding:"omitempty,max=40"`
}

type HabitResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Frequency string    `json:"frequency"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToHabitResponse(h *domain.Habit) HabitResponse {
	return HabitResponse{
		ID:        h.ID,
		Name:      h.Name,
		Frequency: h.Frequency,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

func ToListHabitResponse(items []domain.Habit) []HabitResponse {
	res := make([]HabitResponse, len(items))
	for i := range items {
		res[i] = ToHabitResponse(&items[i])
	}
	return res
}
