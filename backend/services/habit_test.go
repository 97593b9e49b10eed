package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habittracker/backend/models"
	"habittracker/backend/store"
)

// testClock is a settable clock shared by the services under test.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(date string) *testClock {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		panic(err)
	}
	return &testClock{now: t.Add(9 * time.Hour)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(days int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.AddDate(0, 0, days)
}

func newHabitFixture(t *testing.T, date string) (*HabitService, *testClock, store.Store) {
	t.Helper()
	clock := newTestClock(date)
	s := store.NewMemoryStore()
	return NewHabitService(s, clock.Now), clock, s
}

func TestHabitService_CreateValidatesName(t *testing.T) {
	svc, _, _ := newHabitFixture(t, "2025-08-01")

	_, err := svc.Create(context.Background(), "u1", CreateHabitInput{Name: "ab"})
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))

	habit, err := svc.Create(context.Background(), "u1", CreateHabitInput{Name: "Read", Description: "20 pages"})
	require.NoError(t, err)
	assert.NotEmpty(t, habit.ID)
	assert.Equal(t, "u1", habit.UserID)
	assert.Equal(t, "20 pages", habit.Description)
}

func TestHabitService_ListOnlyOwn(t *testing.T) {
	svc, clock, _ := newHabitFixture(t, "2025-08-01")
	ctx := context.Background()

	first, err := svc.Create(ctx, "u1", CreateHabitInput{Name: "Read"})
	require.NoError(t, err)
	clock.Advance(1)
	second, err := svc.Create(ctx, "u1", CreateHabitInput{Name: "Run"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u2", CreateHabitInput{Name: "Swim"})
	require.NoError(t, err)

	habits, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, habits, 2)
	assert.Equal(t, first.ID, habits[0].ID)
	assert.Equal(t, second.ID, habits[1].ID)

	empty, err := svc.List(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestHabitService_DeleteThenGet(t *testing.T) {
	svc, _, _ := newHabitFixture(t, "2025-08-01")
	ctx := context.Background()

	habit, err := svc.Create(ctx, "u1", CreateHabitInput{Name: "Read"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, habit.ID, "u1"))

	_, err = svc.Get(ctx, habit.ID, "u1")
	assert.ErrorIs(t, err, ErrHabitNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, habit.ID, "u1"), ErrHabitNotFound)
}

func TestHabitService_NonOwnerForbidden(t *testing.T) {
	svc, _, _ := newHabitFixture(t, "2025-08-01")
	ctx := context.Background()

	habit, err := svc.Create(ctx, "u1", CreateHabitInput{Name: "Read"})
	require.NoError(t, err)

	name := "Hijacked"
	_, err = svc.Update(ctx, habit.ID, "u2", models.HabitPatch{Name: &name})
	assert.ErrorIs(t, err, ErrHabitForbidden)

	assert.ErrorIs(t, svc.Delete(ctx, habit.ID, "u2"), ErrHabitForbidden)

	_, err = svc.CheckIn(ctx, habit.ID, "u2")
	assert.ErrorIs(t, err, ErrHabitForbidden)

	_, err = svc.Streak(ctx, habit.ID, "u2")
	assert.ErrorIs(t, err, ErrHabitForbidden)

	got, err := svc.Get(ctx, habit.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Read", got.Name)
}

func TestHabitService_UpdateAppliesOnlyGivenFields(t *testing.T) {
	svc, _, _ := newHabitFixture(t, "2025-08-01")
	ctx := context.Background()

	habit, err := svc.Create(ctx, "u1", CreateHabitInput{Name: "Read", Description: "books"})
	require.NoError(t, err)

	name := "Read more"
	updated, err := svc.Update(ctx, habit.ID, "u1", models.HabitPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Read more", updated.Name)
	assert.Equal(t, "books", updated.Description)

	short := "no"
	_, err = svc.Update(ctx, habit.ID, "u1", models.HabitPatch{Name: &short})
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = svc.Update(ctx, "missing", "u1", models.HabitPatch{Name: &name})
	assert.ErrorIs(t, err, ErrHabitNotFound)
}

func TestHabitService_CheckInTwiceSameDay(t *testing.T) {
	svc, _, _ := newHabitFixture(t, "2025-08-01")
	ctx := context.Background()

	habit, err := svc.Create(ctx, "u1", CreateHabitInput{Name: "Read"})
	require.NoError(t, err)

	res, err := svc.CheckIn(ctx, habit.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, "2025-08-01", res.Date)
	assert.Equal(t, 1, res.CurrentStreak)

	_, err = svc.CheckIn(ctx, habit.ID, "u1")
	assert.ErrorIs(t, err, ErrAlreadyChecked)
	assert.Equal(t, KindAlreadyChecked, KindOf(err))
}

func TestHabitService_CheckInMissingHabit(t *testing.T) {
	svc, _, _ := newHabitFixture(t, "2025-08-01")

	_, err := svc.CheckIn(context.Background(), "missing", "u1")
	assert.ErrorIs(t, err, ErrHabitNotFound)
}

func TestHabitService_ConsecutiveCheckIns(t *testing.T) {
	svc, clock, _ := newHabitFixture(t, "2025-08-01")
	ctx := context.Background()

	habit, err := svc.Create(ctx, "u1", CreateHabitInput{Name: "Read"})
	require.NoError(t, err)

	var res *models.CheckResult
	for day := 1; day <= 4; day++ {
		res, err = svc.CheckIn(ctx, habit.ID, "u1")
		require.NoError(t, err)
		assert.Equal(t, day, res.CurrentStreak)
		clock.Advance(1)
	}
	assert.Equal(t, "2025-08-04", res.Date)
	assert.Equal(t, 4, res.CurrentStreak)
}

func TestHabitService_GapResetsStreak(t *testing.T) {
	svc, clock, _ := newHabitFixture(t, "2025-08-01")
	ctx := context.Background()

	habit, err := svc.Create(ctx, "u1", CreateHabitInput{Name: "Read"})
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, habit.ID, "u1")
	require.NoError(t, err)
	clock.Advance(2)
	res, err := svc.CheckIn(ctx, habit.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, "2025-08-03", res.Date)
	assert.Equal(t, 1, res.CurrentStreak)
}

func TestHabitService_StreakWithoutChecks(t *testing.T) {
	svc, _, _ := newHabitFixture(t, "2025-08-01")
	ctx := context.Background()

	habit, err := svc.Create(ctx, "u1", CreateHabitInput{Name: "Read"})
	require.NoError(t, err)

	res, err := svc.Streak(ctx, habit.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, res.CurrentStreak)
	assert.Empty(t, res.LastCheckDate)
}

func TestHabitService_StreakCountsFromLastCheck(t *testing.T) {
	svc, clock, _ := newHabitFixture(t, "2025-08-01")
	ctx := context.Background()

	habit, err := svc.Create(ctx, "u1", CreateHabitInput{Name: "Read"})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = svc.CheckIn(ctx, habit.ID, "u1")
		require.NoError(t, err)
		clock.Advance(1)
	}
	clock.Advance(10)

	res, err := svc.Streak(ctx, habit.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, res.CurrentStreak)
	assert.Equal(t, "2025-08-03", res.LastCheckDate)
}

func TestHabitService_ConcurrentCheckIns(t *testing.T) {
	svc, _, _ := newHabitFixture(t, "2025-08-01")
	ctx := context.Background()

	habit, err := svc.Create(ctx, "u1", CreateHabitInput{Name: "Read"})
	require.NoError(t, err)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.CheckIn(ctx, habit.ID, "u1"); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
}

func TestMetricsService_Aggregates(t *testing.T) {
	svc, clock, s := newHabitFixture(t, "2025-08-01")
	ctx := context.Background()

	a, err := svc.Create(ctx, "u1", CreateHabitInput{Name: "Read"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, "u1", CreateHabitInput{Name: "Run"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u2", CreateHabitInput{Name: "Swim"})
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, a.ID, "u1")
	require.NoError(t, err)
	clock.Advance(1)
	_, err = svc.CheckIn(ctx, a.ID, "u1")
	require.NoError(t, err)
	_, err = svc.CheckIn(ctx, b.ID, "u1")
	require.NoError(t, err)

	m, err := NewMetricsService(s).Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, &models.Metrics{TotalHabits: 2, TotalChecks: 3, LongestStreak: 2}, m)

	empty, err := NewMetricsService(s).Get(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, &models.Metrics{}, empty)
}
