package domain

import "time"

// DefaultHabitFrequency is applied when a habit is created without a frequency.
const DefaultHabitFrequency = "daily"

type Habit struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Frequency string    `json:"frequency"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
