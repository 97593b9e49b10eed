package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"habittracker/backend/metrics"
	"habittracker/backend/models"
	"habittracker/backend/store"
)

type ReminderService struct {
	store  store.Store
	clock  Clock
	logger *zap.Logger
}

func NewReminderService(s store.Store, clock Clock, logger *zap.Logger) *ReminderService {
	return &ReminderService{store: s, clock: clock, logger: logger}
}

// ParseReminderDate accepts an RFC 3339 timestamp or a bare YYYY-MM-DD date,
// the latter meaning midnight UTC.
func ParseReminderDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(models.DateLayout, value); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}

func (s *ReminderService) Schedule(ctx context.Context, userID, habitID, date string) (*models.Reminder, error) {
	at, err := ParseReminderDate(date)
	if err != nil {
		return nil, err
	}

	habit, err := s.store.Habits().Get(ctx, habitID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrHabitNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get habit: %w", err)
	}
	if habit.UserID != userID {
		return nil, ErrHabitForbidden
	}

	reminder := &models.Reminder{
		ID:        uuid.NewString(),
		UserID:    userID,
		HabitID:   habitID,
		RemindAt:  at,
		CreatedAt: s.clock.now(),
	}
	if err := s.store.Reminders().Create(ctx, reminder); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, fmt.Errorf("create reminder: %w", err)
	}
	return reminder, nil
}

func (s *ReminderService) List(ctx context.Context, userID string) ([]models.Reminder, error) {
	reminders, err := s.store.Reminders().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	return reminders, nil
}

func (s *ReminderService) Delete(ctx context.Context, id, userID string) error {
	reminder, err := s.store.Reminders().Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrReminderNotFound
	}
	if err != nil {
		return fmt.Errorf("get reminder: %w", err)
	}
	if reminder.UserID != userID {
		return ErrReminderForbid
	}

	if err := s.store.Reminders().Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrReminderNotFound
		}
		return fmt.Errorf("delete reminder: %w", err)
	}
	return nil
}

// DispatchDue fires every reminder whose time has come and returns how many
// were sent. A failure on one reminder does not stop the rest.
func (s *ReminderService) DispatchDue(ctx context.Context) (int, error) {
	now := s.clock.now()
	due, err := s.store.Reminders().ListDue(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("list due reminders: %w", err)
	}

	sent := 0
	for _, r := range due {
		habit, err := s.store.Habits().Get(ctx, r.HabitID)
		if err != nil {
			s.logger.Warn("reminder habit lookup failed",
				zap.String("reminder_id", r.ID),
				zap.Error(err),
			)
			continue
		}

		if err := s.store.Reminders().MarkSent(ctx, r.ID, now); err != nil {
			s.logger.Warn("mark reminder sent failed",
				zap.String("reminder_id", r.ID),
				zap.Error(err),
			)
			continue
		}

		s.logger.Info("time to check "+habit.Name,
			zap.String("reminder_id", r.ID),
			zap.String("habit_id", habit.ID),
			zap.String("user_id", r.UserID),
		)
		metrics.RecordReminderDispatched()
		sent++
	}
	return sent, nil
}
