package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habittracker/backend/store"
)

func TestCategoryService(t *testing.T) {
	clock := newTestClock("2025-08-01")
	svc := NewCategoryService(store.NewMemoryStore(), clock.Now)
	ctx := context.Background()

	_, err := svc.Create(ctx, "ab")
	assert.Equal(t, KindValidation, KindOf(err))

	health, err := svc.Create(ctx, "Health")
	require.NoError(t, err)
	clock.Advance(1)
	study, err := svc.Create(ctx, "Study")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "Health")
	assert.ErrorIs(t, err, ErrCategoryExists)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, health.ID, list[0].ID)
	assert.Equal(t, study.ID, list[1].ID)

	_, err = svc.Update(ctx, study.ID, "Health")
	assert.ErrorIs(t, err, ErrCategoryExists)

	renamed, err := svc.Update(ctx, study.ID, "Learning")
	require.NoError(t, err)
	assert.Equal(t, "Learning", renamed.Name)

	got, err := svc.Get(ctx, study.ID)
	require.NoError(t, err)
	assert.Equal(t, "Learning", got.Name)

	require.NoError(t, svc.Delete(ctx, study.ID))
	_, err = svc.Get(ctx, study.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, study.ID), ErrCategoryNotFound)
	_, err = svc.Update(ctx, study.ID, "Anything")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
