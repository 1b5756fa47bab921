package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const intentTTL = time.Hour

// IntentStore keeps issued payment-intent client secrets keyed by the
// caller's idempotency key, so replayed requests within intentTTL return
// the original intent instead of charging twice.
// Key format: intent:<idempotency_key>
type IntentStore struct {
	client *redis.Client
}

// NewIntentStore creates an IntentStore wrapping the given Redis client.
func NewIntentStore(client *redis.Client) *IntentStore {
	return &IntentStore{client: client}
}

// Lookup returns the client secret recorded for key, or empty when unseen.
func (s *IntentStore) Lookup(ctx context.Context, key string) (string, error) {
	secret, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("intent lookup: %w", err)
	}
	return secret, nil
}

// Save records the client secret issued for key (expires after intentTTL).
func (s *IntentStore) Save(ctx context.Context, key, clientSecret string) error {
	return s.client.Set(ctx, s.key(key), clientSecret, intentTTL).Err()
}

func (s *IntentStore) key(idempotencyKey string) string {
	return "intent:" + idempotencyKey
}
