package models

import "time"

// DateLayout is the calendar-date form check-ins are recorded in (UTC).
const DateLayout = "2006-01-02"

type Habit struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID      string    `json:"userId" gorm:"type:uuid;index;not null"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HabitPatch carries the fields of a partial update; nil means "leave as is".
type HabitPatch struct {
	Name        *string
	Description *string
}

// CheckRecord marks a habit done on one calendar day. The composite key keeps
// check-ins idempotent per (habit, date).
type CheckRecord struct {
	HabitID   string    `gorm:"primaryKey;type:uuid"`
	Date      string    `gorm:"primaryKey;type:char(10)"`
	CreatedAt time.Time
}
