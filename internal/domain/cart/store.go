// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/your-org/urbanwear-backend/internal/domain/pricing"
)

// SessionTTL is how long an untouched session cart survives.
const SessionTTL = 24 * time.Hour

// Store persists per-session cart state. The pricing engines never see
// a Store; callers load a snapshot, compute, and write the result back.
type Store interface {
	Load(ctx context.Context, sessionID string) (*State, error)
	Save(ctx context.Context, sessionID string, state *State) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisStore keeps cart state in Redis under per-session keys with a
// rolling TTL, the same layout used for guest carts elsewhere.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed cart store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = SessionTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

// Load retrieves the session's cart state. A missing key yields an
// empty cart; an unparseable payload is treated the same way, so a
// corrupt entry resets instead of wedging the session.
func (s *RedisStore) Load(ctx context.Context, sessionID string) (*State, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required for cart")
	}

	data, err := s.client.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return emptyState(), nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var state State
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return emptyState(), nil
	}
	if state.Rows == nil {
		state.Rows = []pricing.CartRow{}
	}

	return &state, nil
}

// Save writes the session's cart state and refreshes its TTL.
func (s *RedisStore) Save(ctx context.Context, sessionID string, state *State) error {
	if sessionID == "" {
		return fmt.Errorf("session ID required for cart")
	}

	state.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	return s.client.Set(ctx, cartKey(sessionID), data, s.ttl).Err()
}

// Clear removes the session's cart state entirely.
func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, cartKey(sessionID)).Err()
}

func emptyState() *State {
	return &State{
		Rows:      []pricing.CartRow{},
		UpdatedAt: time.Now().UTC(),
	}
}
