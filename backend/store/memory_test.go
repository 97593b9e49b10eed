package store

import (
	"context"
	"sync"
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habittracker/backend/models"
)

func seedHabit(t *testing.T, s *MemoryStore, id, userID string, createdAt time.Time) {
	t.Helper()
	require.NoError(t, s.Habits().Create(context.Background(), &models.Habit{
		ID: id, UserID: userID, Name: "Read", CreatedAt: createdAt,
	}))
}

func TestMemoryHabitsListByUserIsOrdered(t *testing.T) {
	s := NewMemoryStore()
	base := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	seedHabit(t, s, "h2", "u1", base.Add(time.Hour))
	seedHabit(t, s, "h1", "u1", base)
	seedHabit(t, s, "h3", "u2", base)

	habits, err := s.Habits().ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, habits, 2)
	assert.Equal(t, "h1", habits[0].ID)
	assert.Equal(t, "h2", habits[1].ID)

	empty, err := s.Habits().ListByUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestMemoryHabitsGetReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	seedHabit(t, s, "h1", "u1", time.Now())

	h, err := s.Habits().Get(context.Background(), "h1")
	require.NoError(t, err)
	h.Name = "changed"

	again, err := s.Habits().Get(context.Background(), "h1")
	require.NoError(t, err)
	assert.Equal(t, "Read", again.Name)
}

func TestMemoryDeleteHabitCascades(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	seedHabit(t, s, "h1", "u1", time.Now())
	require.NoError(t, s.Checks().Add(ctx, "h1", "2025-08-01"))
	require.NoError(t, s.Reminders().Create(ctx, &models.Reminder{ID: "r1", UserID: "u1", HabitID: "h1"}))

	require.NoError(t, s.Habits().Delete(ctx, "h1"))

	_, err := s.Habits().Get(ctx, "h1")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Checks().List(ctx, "h1")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Reminders().Get(ctx, "r1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Habits().Delete(ctx, "h1"), ErrNotFound)
}

func TestMemoryChecksRejectDuplicateDate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	seedHabit(t, s, "h1", "u1", time.Now())

	require.NoError(t, s.Checks().Add(ctx, "h1", "2025-08-01"))
	assert.ErrorIs(t, s.Checks().Add(ctx, "h1", "2025-08-01"), ErrConflict)
	assert.ErrorIs(t, s.Checks().Add(ctx, "missing", "2025-08-01"), ErrNotFound)

	dates, err := s.Checks().List(ctx, "h1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-08-01"}, dates)
}

func TestMemoryChecksConcurrentSameDate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	seedHabit(t, s, "h1", "u1", time.Now())

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Checks().Add(ctx, "h1", "2025-08-01"); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
}

func TestMemoryUsersEmailUniqueness(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Users().Create(ctx, &models.User{ID: "u1", Email: "a@test.com"}))
	require.NoError(t, s.Users().Create(ctx, &models.User{ID: "u2", Email: "b@test.com"}))

	assert.ErrorIs(t, s.Users().Create(ctx, &models.User{ID: "u3", Email: "a@test.com"}), ErrConflict)
	assert.ErrorIs(t, s.Users().Update(ctx, &models.User{ID: "u2", Email: "a@test.com"}), ErrConflict)

	require.NoError(t, s.Users().Update(ctx, &models.User{ID: "u2", Email: "c@test.com"}))
	_, err := s.Users().GetByEmail(ctx, "b@test.com")
	assert.ErrorIs(t, err, ErrNotFound)
	u, err := s.Users().GetByEmail(ctx, "c@test.com")
	require.NoError(t, err)
	assert.Equal(t, "u2", u.ID)
}

func TestMemoryCategoriesNameUniqueness(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Categories().Create(ctx, &models.Category{ID: "c1", Name: "Health"}))
	require.NoError(t, s.Categories().Create(ctx, &models.Category{ID: "c2", Name: "Work"}))

	assert.ErrorIs(t, s.Categories().Create(ctx, &models.Category{ID: "c3", Name: "Health"}), ErrConflict)
	assert.ErrorIs(t, s.Categories().Update(ctx, &models.Category{ID: "c2", Name: "Health"}), ErrConflict)
	require.NoError(t, s.Categories().Update(ctx, &models.Category{ID: "c1", Name: "Health"}))
	assert.ErrorIs(t, s.Categories().Delete(ctx, "missing"), ErrNotFound)
}

func TestMemoryRemindersDue(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	seedHabit(t, s, "h1", "u1", time.Now())
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.Reminders().Create(ctx, &models.Reminder{ID: "past", UserID: "u1", HabitID: "h1", RemindAt: now.Add(-time.Minute)}))
	require.NoError(t, s.Reminders().Create(ctx, &models.Reminder{ID: "now", UserID: "u1", HabitID: "h1", RemindAt: now}))
	require.NoError(t, s.Reminders().Create(ctx, &models.Reminder{ID: "future", UserID: "u1", HabitID: "h1", RemindAt: now.Add(time.Minute)}))
	assert.ErrorIs(t, s.Reminders().Create(ctx, &models.Reminder{ID: "x", HabitID: "missing"}), ErrNotFound)

	due, err := s.Reminders().ListDue(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, "past", due[0].ID)

	require.NoError(t, s.Reminders().MarkSent(ctx, "past", now))
	due, err = s.Reminders().ListDue(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "now", due[0].ID)
}

func TestMemoryTokens(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Tokens().GetRefresh(ctx, "u1")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, s.Tokens().SaveRefresh(ctx, models.RefreshToken{UserID: "u1", Token: "a"}))
	require.NoError(t, s.Tokens().SaveRefresh(ctx, models.RefreshToken{UserID: "u1", Token: "b"}))
	tok, err := s.Tokens().GetRefresh(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "b", tok.Token)

	require.NoError(t, s.Tokens().SaveReset(ctx, models.ResetToken{Token: "r", UserID: "u1"}))
	require.NoError(t, s.Tokens().DeleteReset(ctx, "r"))
	_, err = s.Tokens().GetReset(ctx, "r")
	assert.ErrorIs(t, err, ErrNotFound)
}

// fasthttp hands out strings that share a buffer reused by the next request.
func TestMemoryChecksKeysSurviveReusedBuffer(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	seedHabit(t, s, "habit-one", "u1", time.Now())

	buf := []byte("habit-one")
	aliased := unsafe.String(&buf[0], len(buf))
	require.NoError(t, s.Checks().Add(ctx, aliased, "2025-08-01"))

	copy(buf, "xxxxxxxxx")

	dates, err := s.Checks().List(ctx, "habit-one")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-08-01"}, dates)
	assert.ErrorIs(t, s.Checks().Add(ctx, "habit-one", "2025-08-01"), ErrConflict)
}
