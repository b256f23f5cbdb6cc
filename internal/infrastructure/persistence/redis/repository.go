// Package redis provides the Redis-backed state repository. Each (kind,
// scope) pair maps to one JSON blob under a stable key, so the data layout
// matches the in-memory repository byte for byte.
package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/recipify/v2/internal/domain/user"
	"github.com/recipify/v2/internal/infrastructure/config"
	"github.com/recipify/v2/internal/ports/outbound"
	apperrors "github.com/recipify/v2/pkg/errors"
)

// NewClient dials Redis with the configured pool settings and verifies the
// connection before handing it out.
func NewClient(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.Database,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, apperrors.NewExternalServiceError("redis", err)
	}
	logger.Info("connected to redis", zap.String("addr", cfg.Addr()), zap.Int("db", cfg.Database))
	return client, nil
}

// Repository implements outbound.StateRepository on a Redis client.
type Repository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRepository creates a Redis-backed state repository.
func NewRepository(client *redis.Client, logger *zap.Logger) *Repository {
	return &Repository{
		client: client,
		logger: logger.Named("redis-state"),
	}
}

// Load reads and unmarshals the blob for (kind, scope) into v. A missing
// key is (false, nil).
func (r *Repository) Load(ctx context.Context, scope user.Scope, kind outbound.EntityKind, v any) (bool, error) {
	key := outbound.Key(kind, scope)

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, apperrors.NewStorageError(string(kind), err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		r.logger.Warn("corrupt state blob",
			zap.String("key", key),
			zap.Error(err))
		return false, apperrors.NewStorageError(string(kind), err)
	}
	return true, nil
}

// Save marshals v and stores it under (kind, scope) without expiry. State
// blobs live until explicitly deleted.
func (r *Repository) Save(ctx context.Context, scope user.Scope, kind outbound.EntityKind, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return apperrors.NewStorageError(string(kind), err)
	}

	if err := r.client.Set(ctx, outbound.Key(kind, scope), data, 0).Err(); err != nil {
		return apperrors.NewStorageError(string(kind), err)
	}
	return nil
}

// Delete removes the blob for (kind, scope). Missing keys are not an error.
func (r *Repository) Delete(ctx context.Context, scope user.Scope, kind outbound.EntityKind) error {
	if err := r.client.Del(ctx, outbound.Key(kind, scope)).Err(); err != nil {
		return apperrors.NewStorageError(string(kind), err)
	}
	return nil
}
