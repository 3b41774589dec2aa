// Package session implements the revocable session protocol: a single
// server-side session record per subject, written at login, overwritten at
// re-login, deleted at logout. Any service instance can check a bearer
// token against the shared record without in-process state.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// Store holds the currently valid session id per subject. An absent key is
// valid business state ("no live session"), not an error.
type Store interface {
	Put(ctx context.Context, subjectID, sessionID string) error
	Get(ctx context.Context, subjectID string) (string, bool, error)
	Delete(ctx context.Context, subjectID string) error
}

// RedisStore implements Store against the shared Redis backend.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore constructs a RedisStore. When ttl is positive the record
// expires on its own; tokens referencing it are bounded by their own expiry
// either way.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Put writes the session record, replacing any previous one for the subject.
func (s *RedisStore) Put(ctx context.Context, subjectID, sessionID string) error {
	return s.client.Set(ctx, keyPrefix+subjectID, sessionID, s.ttl).Err()
}

// Get returns the stored session id and whether a record exists.
func (s *RedisStore) Get(ctx context.Context, subjectID string) (string, bool, error) {
	value, err := s.client.Get(ctx, keyPrefix+subjectID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// Delete removes the session record. Deleting an absent record is a no-op.
func (s *RedisStore) Delete(ctx context.Context, subjectID string) error {
	if err := s.client.Del(ctx, keyPrefix+subjectID).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
