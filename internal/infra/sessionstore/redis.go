package sessionstore

import (
	"context"
	"time"

	"theater-tickets/internal/pkg/config"
	"theater-tickets/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const bookedKeyPrefix = "session:booked:"

// RedisSessionStore keeps the advisory has-booked flag per buyer. Losing
// a flag only costs the buyer a short-circuit; the store stays
// authoritative, so every operation failure is surfaced but safe to
// ignore at the call site.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, cfg config.RedisConfig) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: cfg.SessionTTL}
}

func (s *RedisSessionStore) MarkBooked(ctx context.Context, buyerEmail string) error {
	return s.client.Set(ctx, bookedKeyPrefix+buyerEmail, "1", s.ttl).Err()
}

func (s *RedisSessionStore) HasBooked(ctx context.Context, buyerEmail string) (bool, error) {
	n, err := s.client.Exists(ctx, bookedKeyPrefix+buyerEmail).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

var _ shared.SessionStore = (*RedisSessionStore)(nil)
