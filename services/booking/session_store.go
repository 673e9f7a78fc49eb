package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"indodjija/models"
)

const (
	sessionKeyPrefix = "booking:session:"
	commitKeyPrefix  = "booking:commit:"

	// commitClaimTTL outlives a commit; it only matters if the holder dies.
	commitClaimTTL = 30 * time.Second
)

// RedisSessionStore keeps drafts as JSON with a sliding TTL. A draft that
// is never confirmed simply expires.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (r *RedisSessionStore) Save(ctx context.Context, s models.BookingSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKeyPrefix+s.SessionID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (r *RedisSessionStore) Load(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := r.client.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, newBookingError(CodeSessionNotFound, "booking session not found or expired", ErrSessionNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var s models.BookingSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &s, nil
}

func (r *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	n, err := r.client.Del(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	if n == 0 {
		return newBookingError(CodeSessionNotFound, "booking session not found or expired", ErrSessionNotFound)
	}
	return nil
}

// ClaimCommit takes the per-session commit claim with SETNX.
func (r *RedisSessionStore) ClaimCommit(ctx context.Context, sessionID string) (bool, error) {
	ok, err := r.client.SetNX(ctx, commitKeyPrefix+sessionID, 1, commitClaimTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim booking session: %w", err)
	}
	return ok, nil
}

func (r *RedisSessionStore) ReleaseCommit(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, commitKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to release booking session: %w", err)
	}
	return nil
}
