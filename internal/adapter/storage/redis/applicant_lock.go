package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ApplicantLock implements ports.ApplicantLock using Redis SET NX.
// It serializes concurrent webhook deliveries for the same applicantId
// across instances. The TTL bounds how long a crashed holder can block
// other deliveries.
type ApplicantLock struct {
	client *goredis.Client
	prefix string
}

// NewApplicantLock creates a new Redis-backed applicant lock.
func NewApplicantLock(client *goredis.Client) *ApplicantLock {
	return &ApplicantLock{
		client: client,
		prefix: "applicant-lock:",
	}
}

// Acquire atomically takes the lock for an applicant. Returns true if
// this caller now holds it, false if another delivery does.
func (l *ApplicantLock) Acquire(ctx context.Context, applicantID string, ttl time.Duration) (bool, error) {
	key := l.prefix + applicantID
	result, err := l.client.SetArgs(ctx, key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists, another delivery holds the lock
			return false, nil
		}
		return false, fmt.Errorf("redis lock acquire: %w", err)
	}
	return result == "OK", nil
}

// Release drops the lock. Safe to call on a lock that already expired.
func (l *ApplicantLock) Release(ctx context.Context, applicantID string) error {
	if err := l.client.Del(ctx, l.prefix+applicantID).Err(); err != nil {
		return fmt.Errorf("redis lock release: %w", err)
	}
	return nil
}
