package repository

import (
	"context"
	"fmt"

	"course-order-export/internal/config"
	"course-order-export/internal/ports"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OpenTokenStore connects the backend named in cfg. The returned close function
// releases the connection and is safe to call once.
func OpenTokenStore(ctx context.Context, cfg config.StoreConfig, logger zerolog.Logger) (ports.TokenStore, func(), error) {
	switch cfg.Backend {
	case config.StoreMemory:
		logger.Warn().Msg("Using in-memory token store; tokens are lost on restart")
		return NewMemoryTokenStore(), func() {}, nil

	case config.StoreRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		logger.Info().Str("addr", opts.Addr).Msg("Connected to Redis")
		return NewRedisTokenStore(client), func() { _ = client.Close() }, nil

	case config.StoreMongo:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		if err := client.Ping(ctx, nil); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
		}
		logger.Info().Str("database", cfg.MongoDatabase).Msg("Connected to MongoDB")

		store := NewMongoTokenStore(client.Database(cfg.MongoDatabase)).(*MongoTokenStore)
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, err
		}
		return store, func() { _ = client.Disconnect(context.Background()) }, nil

	case config.StorePostgres:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect db: %w", err)
		}
		store := NewPostgresTokenStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		logger.Info().Msg("Connected to Postgres")
		return store, pool.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown token store backend %q", cfg.Backend)
}
