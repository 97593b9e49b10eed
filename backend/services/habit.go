// Package services holds the business rules of the habit tracker. Services are
// constructed once with the process-wide store and shared by all requests.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"habittracker/backend/metrics"
	"habittracker/backend/models"
	"habittracker/backend/store"
)

// Clock returns the current time; tests pin it.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}

const minNameLength = 3

type CreateHabitInput struct {
	Name        string
	Description string
}

type HabitService struct {
	store store.Store
	clock Clock
}

func NewHabitService(s store.Store, clock Clock) *HabitService {
	return &HabitService{store: s, clock: clock}
}

func validateName(name string) error {
	if len([]rune(strings.TrimSpace(name))) < minNameLength {
		return newValidationError(fmt.Sprintf("name must be at least %d characters", minNameLength))
	}
	return nil
}

func (s *HabitService) Create(ctx context.Context, userID string, in CreateHabitInput) (*models.Habit, error) {
	if err := validateName(in.Name); err != nil {
		return nil, err
	}

	habit := &models.Habit{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   s.clock.now(),
	}
	if err := s.store.Habits().Create(ctx, habit); err != nil {
		return nil, fmt.Errorf("create habit: %w", err)
	}
	return habit, nil
}

func (s *HabitService) List(ctx context.Context, userID string) ([]models.Habit, error) {
	habits, err := s.store.Habits().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	return habits, nil
}

// Get returns the habit if it exists and requesterID owns it.
func (s *HabitService) Get(ctx context.Context, habitID, requesterID string) (*models.Habit, error) {
	habit, err := s.store.Habits().Get(ctx, habitID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrHabitNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get habit: %w", err)
	}
	if habit.UserID != requesterID {
		return nil, ErrHabitForbidden
	}
	return habit, nil
}

// Update applies only the non-nil fields of patch.
func (s *HabitService) Update(ctx context.Context, habitID, requesterID string, patch models.HabitPatch) (*models.Habit, error) {
	if patch.Name != nil {
		if err := validateName(*patch.Name); err != nil {
			return nil, err
		}
	}

	habit, err := s.Get(ctx, habitID, requesterID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		habit.Name = *patch.Name
	}
	if patch.Description != nil {
		habit.Description = *patch.Description
	}

	if err := s.store.Habits().Update(ctx, habit); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, fmt.Errorf("update habit: %w", err)
	}
	return habit, nil
}

// Delete removes the habit; its checks and reminders go with it.
func (s *HabitService) Delete(ctx context.Context, habitID, requesterID string) error {
	if _, err := s.Get(ctx, habitID, requesterID); err != nil {
		return err
	}
	if err := s.store.Habits().Delete(ctx, habitID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrHabitNotFound
		}
		return fmt.Errorf("delete habit: %w", err)
	}
	return nil
}

// CheckIn records today's UTC date for the habit and returns the streak ending
// today. A second check-in on the same date fails with ErrAlreadyChecked.
func (s *HabitService) CheckIn(ctx context.Context, habitID, requesterID string) (*models.CheckResult, error) {
	if _, err := s.Get(ctx, habitID, requesterID); err != nil {
		return nil, err
	}

	today := s.clock.now().Format(models.DateLayout)
	switch err := s.store.Checks().Add(ctx, habitID, today); {
	case errors.Is(err, store.ErrConflict):
		metrics.RecordCheckIn("duplicate")
		return nil, ErrAlreadyChecked
	case errors.Is(err, store.ErrNotFound):
		return nil, ErrHabitNotFound
	case err != nil:
		return nil, fmt.Errorf("add check: %w", err)
	}
	metrics.RecordCheckIn("ok")

	dates, err := s.store.Checks().List(ctx, habitID)
	if err != nil {
		return nil, fmt.Errorf("list checks: %w", err)
	}
	streak, _ := CurrentStreak(dates)

	return &models.CheckResult{HabitID: habitID, Date: today, CurrentStreak: streak}, nil
}

func (s *HabitService) Streak(ctx context.Context, habitID, requesterID string) (*models.StreakResult, error) {
	if _, err := s.Get(ctx, habitID, requesterID); err != nil {
		return nil, err
	}

	dates, err := s.store.Checks().List(ctx, habitID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrHabitNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("list checks: %w", err)
	}

	streak, last := CurrentStreak(dates)
	return &models.StreakResult{HabitID: habitID, CurrentStreak: streak, LastCheckDate: last}, nil
}
