// Package redis implements the short code counter on top of Redis.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultCounterKey is the key the short code sequence is stored under.
const DefaultCounterKey = "shorty:counter"

// CounterRepository allocates short code sequence numbers with INCR, which is atomic on the server.
type CounterRepository struct {
	client *redis.Client
	key    string
}

func NewCounterRepository(client *redis.Client, key string) *CounterRepository {
	if key == "" {
		key = DefaultCounterKey
	}

	return &CounterRepository{
		client: client,
		key:    key,
	}
}

func (r *CounterRepository) Next(ctx context.Context) (int64, error) {
	const op = "adapter.repository.redis.CounterRepository.Next"

	value, err := r.client.Incr(ctx, r.key).Result()
	if err != nil {
		return 0, fmt.Errorf("%s: failed to increment counter: %w", op, err)
	}

	return value, nil
}
