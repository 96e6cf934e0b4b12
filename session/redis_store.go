package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/promptpilot/prompt-pilot-service/types"
)

const (
	// Redis key patterns
	sessionKeyPrefix = "session:"
	timelineKey      = "sessions:timeline"
)

// RedisStore is the server-side session cache. Each session is stored as a
// JSON string with a TTL and indexed in a creation-time sorted set so the
// maintenance CLI can list and prune them.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Save(ctx context.Context, key string, sess *types.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, sessionKeyPrefix+key, data, r.ttl)
	pipe.ZAdd(ctx, timelineKey, redis.Z{
		Score:  float64(time.Now().Unix()),
		Member: key,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store session %s: %w", key, err)
	}
	return nil
}

func (r *RedisStore) Load(ctx context.Context, key string) (*types.Session, error) {
	data, err := r.client.Get(ctx, sessionKeyPrefix+key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session %s: %w", key, err)
	}

	var sess types.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session %s: %w", key, err)
	}
	return &sess, nil
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	pipe := r.client.Pipeline()
	pipe.Del(ctx, sessionKeyPrefix+key)
	pipe.ZRem(ctx, timelineKey, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", key, err)
	}
	return nil
}

// ListIDs returns all cached session ids in creation order. Used by the
// -list and -delete maintenance modes.
func (r *RedisStore) ListIDs(ctx context.Context) ([]string, error) {
	ids, err := r.client.ZRange(ctx, timelineKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session ids: %w", err)
	}
	return ids, nil
}
