// internal/domain/wishlist/store.go
package wishlist

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionTTL is how long an untouched session wishlist survives.
const SessionTTL = 24 * time.Hour

// Store persists the per-session wishlist as an ordered product id list.
type Store interface {
	Load(ctx context.Context, sessionID string) ([]uint, error)
	Save(ctx context.Context, sessionID string, ids []uint) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisStore keeps wishlists in Redis under per-session keys with a
// rolling TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed wishlist store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = SessionTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func wishlistKey(sessionID string) string {
	return fmt.Sprintf("wishlist:session:%s", sessionID)
}

// Load retrieves the session's wishlist ids. A missing key yields an
// empty list; an unparseable payload resets the same way.
func (s *RedisStore) Load(ctx context.Context, sessionID string) ([]uint, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required for wishlist")
	}

	data, err := s.client.Get(ctx, wishlistKey(sessionID)).Result()
	if err == redis.Nil {
		return []uint{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load wishlist: %w", err)
	}

	var ids []uint
	if err := json.Unmarshal([]byte(data), &ids); err != nil {
		return []uint{}, nil
	}
	return ids, nil
}

// Save writes the session's wishlist ids and refreshes the TTL.
func (s *RedisStore) Save(ctx context.Context, sessionID string, ids []uint) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to encode wishlist: %w", err)
	}
	return s.client.Set(ctx, wishlistKey(sessionID), data, s.ttl).Err()
}

// Clear removes the session's wishlist entirely.
func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, wishlistKey(sessionID)).Err()
}
