// Package presence adapts the external presence tracker to the read-only
// view the scheduling engine needs. The tracker writes one redis hash per
// user with the last recorded exit and return transitions; this adapter only
// reads them.
package presence

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"escala/internal/domain/scheduling"
)

const (
	keyPrefix       = "presence:"
	fieldLastExit   = "last_exit"
	fieldLastReturn = "last_return"
)

// RedisPresenceProvider reads presence state from the tracker's redis hashes.
// A missing hash or missing fields mean no transition was ever recorded, so
// the user counts as present.
type RedisPresenceProvider struct {
	client *redis.Client
}

func NewRedisPresenceProvider(client *redis.Client) *RedisPresenceProvider {
	return &RedisPresenceProvider{client: client}
}

// StatusFor fetches the user's presence hash. Timestamps are stored by the
// tracker in RFC 3339; a malformed value is an error rather than a silent
// "present", so a broken tracker cannot put absent users on duty.
func (p *RedisPresenceProvider) StatusFor(ctx context.Context, userID string) (scheduling.PresenceStatus, error) {
	fields, err := p.client.HGetAll(ctx, keyPrefix+userID).Result()
	if err != nil {
		return scheduling.PresenceStatus{}, fmt.Errorf("failed to read presence for user %s: %w", userID, err)
	}

	var status scheduling.PresenceStatus

	if raw, ok := fields[fieldLastExit]; ok && raw != "" {
		exit, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return scheduling.PresenceStatus{}, fmt.Errorf("invalid %s for user %s: %w", fieldLastExit, userID, err)
		}
		status.LastExit = &exit
	}

	if raw, ok := fields[fieldLastReturn]; ok && raw != "" {
		ret, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return scheduling.PresenceStatus{}, fmt.Errorf("invalid %s for user %s: %w", fieldLastReturn, userID, err)
		}
		status.LastReturn = &ret
	}

	return status, nil
}
