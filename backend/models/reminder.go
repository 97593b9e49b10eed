package models

import "time"

type Reminder struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid"`
	UserID    string     `json:"-" gorm:"type:uuid;index;not null"`
	HabitID   string     `json:"habitId" gorm:"type:uuid;index;not null"`
	RemindAt  time.Time  `json:"date" gorm:"index"`
	SentAt    *time.Time `json:"sentAt,omitempty"`
	CreatedAt time.Time  `json:"-"`
}
