package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudkitchen-sh/bizplan-backend/config"
	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/repository"
	"github.com/cloudkitchen-sh/bizplan-backend/internal/storage/postgres"
	"github.com/redis/go-redis/v9"
)

// StoreOptions controls how long OpenStore waits for the backend.
type StoreOptions struct {
	ConnectTO time.Duration
}

// OpenStore connects the document store selected by cfg.Store.Driver. The
// returned close func releases the backend connection.
func OpenStore(ctx context.Context, cfg *config.Config, opt StoreOptions) (repository.Store, func(), error) {
	if opt.ConnectTO == 0 {
		opt.ConnectTO = 5 * time.Second
	}

	cctx, cancel := context.WithTimeout(ctx, opt.ConnectTO)
	defer cancel()

	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		db, err := postgres.NewConnection(cctx, &cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("db connect: %w", err)
		}
		store := repository.NewPostgresStore(db)
		if err := store.EnsureSchema(cctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, func() { db.Close() }, nil

	case config.StoreDriverRedis:
		client, err := OpenRedis(cctx, &cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRedisStore(client), func() { client.Close() }, nil

	case config.StoreDriverMemory:
		return repository.NewMemoryStore(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// OpenRedis creates a client and fails fast if the server does not answer.
func OpenRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
