package repository_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/domain"
	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/repository"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	err = client.Ping(context.Background()).Err()
	require.NoError(t, err)

	return client, mr
}

func TestRedisStore(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()
	store := repository.NewRedisStore(client)

	t.Run("not found before insert", func(t *testing.T) {
		_, err := store.Find(ctx)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		exists, err := store.Exists(ctx)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	plan := samplePlan(t)

	t.Run("insert stores a single document", func(t *testing.T) {
		require.NoError(t, store.Insert(ctx, plan))

		exists, err := store.Exists(ctx)
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, []string{"bizplan:document"}, mr.Keys())

		got, err := store.Find(ctx)
		require.NoError(t, err)
		assert.Equal(t, plan.ID, got.ID)
		assert.Equal(t, plan.FinancialData, got.FinancialData)
		assert.Equal(t, plan.Locations, got.Locations)
	})

	t.Run("second insert does not overwrite", func(t *testing.T) {
		other := samplePlan(t)
		other.Company.Name = "Other"

		err := store.Insert(ctx, other)
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)

		got, err := store.Find(ctx)
		require.NoError(t, err)
		assert.Equal(t, plan.ID, got.ID)
		assert.Equal(t, "SHANGHAI CLOUD KITCHEN PROJECT", got.Company.Name)
	})

	t.Run("corrupt document is an error, not not-found", func(t *testing.T) {
		mr.Set("bizplan:document", "{not json")
		defer mr.Del("bizplan:document")

		_, err := store.Find(ctx)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unreachable server", func(t *testing.T) {
		mr.SetError("LOADING server is loading")
		defer mr.SetError("")

		_, err := store.Find(ctx)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
		assert.Error(t, store.Ping(ctx))
	})
}
