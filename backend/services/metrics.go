package services

import (
	"context"
	"errors"
	"fmt"

	"habittracker/backend/models"
	"habittracker/backend/store"
)

type MetricsService struct {
	store store.Store
}

func NewMetricsService(s store.Store) *MetricsService {
	return &MetricsService{store: s}
}

// Get aggregates over every habit the user owns.
func (s *MetricsService) Get(ctx context.Context, userID string) (*models.Metrics, error) {
	habits, err := s.store.Habits().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}

	result := &models.Metrics{TotalHabits: len(habits)}
	for _, h := range habits {
		dates, err := s.store.Checks().List(ctx, h.ID)
		if errors.Is(err, store.ErrNotFound) {
			// deleted since the listing
			result.TotalHabits--
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("list checks of %s: %w", h.ID, err)
		}
		result.TotalChecks += len(dates)
		if longest := LongestStreak(dates); longest > result.LongestStreak {
			result.LongestStreak = longest
		}
	}
	return result, nil
}
