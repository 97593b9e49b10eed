// Package store holds the persistence boundary of the service: a Store groups
// one repository per aggregate and is built once at process start.
package store

import (
	"context"
	"errors"
	"time"

	"habittracker/backend/models"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

type Store interface {
	Users() UserRepository
	Habits() HabitRepository
	Checks() CheckRepository
	Categories() CategoryRepository
	Tokens() TokenRepository
	Reminders() ReminderRepository
	Close() error
}

type UserRepository interface {
	// Create fails with ErrConflict when the email is taken.
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

type HabitRepository interface {
	Create(ctx context.Context, habit *models.Habit) error
	Get(ctx context.Context, id string) (*models.Habit, error)
	// ListByUser returns the user's habits oldest first.
	ListByUser(ctx context.Context, userID string) ([]models.Habit, error)
	Update(ctx context.Context, habit *models.Habit) error
	// Delete removes the habit together with its checks and reminders.
	Delete(ctx context.Context, id string) error
}

type CheckRepository interface {
	// Add records date for the habit, or returns ErrConflict if it is already there.
	Add(ctx context.Context, habitID, date string) error
	// List returns the habit's check dates in insertion order.
	List(ctx context.Context, habitID string) ([]string, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	Get(ctx context.Context, id string) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
}

type TokenRepository interface {
	SaveRefresh(ctx context.Context, token models.RefreshToken) error
	GetRefresh(ctx context.Context, userID string) (*models.RefreshToken, error)
	SaveReset(ctx context.Context, token models.ResetToken) error
	GetReset(ctx context.Context, token string) (*models.ResetToken, error)
	DeleteReset(ctx context.Context, token string) error
}

type ReminderRepository interface {
	Create(ctx context.Context, reminder *models.Reminder) error
	Get(ctx context.Context, id string) (*models.Reminder, error)
	ListByUser(ctx context.Context, userID string) ([]models.Reminder, error)
	// ListDue returns unsent reminders whose time is at or before now.
	ListDue(ctx context.Context, now time.Time) ([]models.Reminder, error)
	MarkSent(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}
