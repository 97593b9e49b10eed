package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"habittracker/backend/store"
)

func TestParseReminderDate(t *testing.T) {
	got, err := ParseReminderDate("2025-08-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseReminderDate("2025-08-02T10:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 8, 2, 8, 30, 0, 0, time.UTC), got)

	_, err = ParseReminderDate("tomorrow")
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestReminderService(t *testing.T) {
	clock := newTestClock("2025-08-01")
	s := store.NewMemoryStore()
	core, logs := observer.New(zapcore.InfoLevel)
	habits := NewHabitService(s, clock.Now)
	reminders := NewReminderService(s, clock.Now, zap.New(core))
	ctx := context.Background()

	habit, err := habits.Create(ctx, "u1", CreateHabitInput{Name: "Read"})
	require.NoError(t, err)

	_, err = reminders.Schedule(ctx, "u1", habit.ID, "soon")
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = reminders.Schedule(ctx, "u1", "missing", "2025-08-02")
	assert.ErrorIs(t, err, ErrHabitNotFound)
	_, err = reminders.Schedule(ctx, "u2", habit.ID, "2025-08-02")
	assert.ErrorIs(t, err, ErrHabitForbidden)

	due, err := reminders.Schedule(ctx, "u1", habit.ID, "2025-08-01T08:00:00Z")
	require.NoError(t, err)
	later, err := reminders.Schedule(ctx, "u1", habit.ID, "2025-08-03")
	require.NoError(t, err)

	sent, err := reminders.DispatchDue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, 1, logs.FilterMessage("time to check Read").Len())

	// already sent reminders are not fired again
	sent, err = reminders.DispatchDue(ctx)
	require.NoError(t, err)
	assert.Zero(t, sent)

	list, err := reminders.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, r := range list {
		if r.ID == due.ID {
			assert.NotNil(t, r.SentAt)
		} else {
			assert.Nil(t, r.SentAt)
		}
	}

	assert.ErrorIs(t, reminders.Delete(ctx, later.ID, "u2"), ErrReminderForbid)
	require.NoError(t, reminders.Delete(ctx, later.ID, "u1"))
	assert.ErrorIs(t, reminders.Delete(ctx, later.ID, "u1"), ErrReminderNotFound)

	require.NoError(t, reminders.Delete(ctx, due.ID, "u1"))
}
