package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const revokedKeyPrefix = "fittrack-revoked-token||"

// RedisRevocations keeps logged-out token ids until the token would expire anyway.
type RedisRevocations struct {
	redisClient *redis.Client
}

func NewRedisRevocations(redisClient *redis.Client) *RedisRevocations {
	return &RedisRevocations{
		redisClient: redisClient,
	}
}

func (rr *RedisRevocations) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return rr.redisClient.Set(ctx, revokedKeyPrefix+tokenID, 1, ttl).Err()
}

func (rr *RedisRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := rr.redisClient.Get(ctx, revokedKeyPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
