package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/domain"
	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()

	t.Run("empty store", func(t *testing.T) {
		_, err := store.Find(ctx)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		exists, err := store.Exists(ctx)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	plan := samplePlan(t)

	t.Run("insert then find", func(t *testing.T) {
		require.NoError(t, store.Insert(ctx, plan))
		assert.Equal(t, 1, store.Count())

		got, err := store.Find(ctx)
		require.NoError(t, err)
		assert.Equal(t, plan.ID, got.ID)
		assert.Equal(t, plan.Company, got.Company)
		assert.True(t, plan.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("second insert is rejected", func(t *testing.T) {
		other := samplePlan(t)
		other.Company.Name = "Other"

		err := store.Insert(ctx, other)
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
		assert.Equal(t, 1, store.Count())

		got, err := store.Find(ctx)
		require.NoError(t, err)
		assert.Equal(t, "SHANGHAI CLOUD KITCHEN PROJECT", got.Company.Name)
	})

	t.Run("returned plans are independent copies", func(t *testing.T) {
		first, err := store.Find(ctx)
		require.NoError(t, err)
		first.Menu.Proteins[0] = "changed"
		first.Locations = nil

		second, err := store.Find(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Grilled Chicken", second.Menu.Proteins[0])
		assert.Len(t, second.Locations, 4)
	})

	t.Run("simulated outage", func(t *testing.T) {
		store.FailWith = errors.New("backend down")
		defer func() { store.FailWith = nil }()

		_, err := store.Find(ctx)
		assert.EqualError(t, err, "backend down")
		assert.Error(t, store.Ping(ctx))
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := store.Find(cctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
