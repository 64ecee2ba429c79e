package cartstore

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"petbhai-backend/internal/cart"
)

// Carts are abandoned, not deleted; the TTL sweeps them up eventually.
const cartTTL = 30 * 24 * time.Hour

type RedisStore struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisStore(addr string, logger *zap.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &RedisStore{client: client, logger: logger}, nil
}

func (s *RedisStore) Load(ctx context.Context, key string) (cart.State, error) {
	raw, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err == redis.Nil {
		return cart.Empty(), nil
	}
	if err != nil {
		return cart.Empty(), fmt.Errorf("failed to load cart: %w", err)
	}

	state, valid := decode(raw)
	if !valid {
		s.logger.Warn("dropping corrupted cart slot", zap.String("key", key))
		if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
			s.logger.Warn("failed to clear corrupted cart slot",
				zap.String("key", key), zap.Error(err))
		}
		return cart.Empty(), nil
	}
	return state, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, state cart.State) error {
	raw, err := encode(state)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, keyPrefix+key, raw, cartTTL).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
