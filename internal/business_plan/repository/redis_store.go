package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/domain"
	"github.com/redis/go-redis/v9"
)

const planKey = "bizplan:document" // JSON-encoded business plan

// RedisStore keeps the business plan as a single JSON value.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Find retrieves the stored plan
func (r *RedisStore) Find(ctx context.Context) (*domain.BusinessPlan, error) {
	data, err := r.client.Get(ctx, planKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get business plan: %w", err)
	}

	var plan domain.BusinessPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal business plan: %w", err)
	}

	return &plan, nil
}

func (r *RedisStore) Exists(ctx context.Context) (bool, error) {
	n, err := r.client.Exists(ctx, planKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check business plan: %w", err)
	}
	return n > 0, nil
}

// Insert stores the plan unless a plan is already present. SETNX keeps the
// document a singleton even when two seeds race.
func (r *RedisStore) Insert(ctx context.Context, plan *domain.BusinessPlan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal business plan: %w", err)
	}

	ok, err := r.client.SetNX(ctx, planKey, data, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to insert business plan: %w", err)
	}
	if !ok {
		return domain.ErrAlreadyExists
	}

	return nil
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
