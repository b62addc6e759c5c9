package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/porchfest-map/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type stateRepository struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewStateRepository - хранилище состояния в Redis.
// ttl=0 - записи хранятся без срока жизни.
func NewStateRepository(conn *Redis, ttl time.Duration) repository.StateRepository {
	return &stateRepository{
		client: conn.Client(),
		ttl:    ttl,
		logger: conn.logger,
	}
}

func (r *stateRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get state", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("state get error: %w", err)
	}

	r.logger.Debug("State loaded", zap.String("key", key))
	return val, nil
}

func (r *stateRepository) Set(ctx context.Context, key string, value []byte) error {
	err := r.client.Set(ctx, key, value, r.ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set state", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("state set error: %w", err)
	}

	r.logger.Debug("State saved", zap.String("key", key), zap.Duration("ttl", r.ttl))
	return nil
}

func (r *stateRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete state", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("state delete error: %w", err)
	}

	r.logger.Debug("State deleted", zap.String("key", key))
	return nil
}
