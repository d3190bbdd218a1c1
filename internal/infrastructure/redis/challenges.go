package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-otp-gateway/internal/domain"
	"github.com/redis/go-redis/v9"
)

const challengeKeyPrefix = "otp:challenge:"

// ChallengeStore stores challenges as JSON values keyed by email, with the
// Redis TTL set to the challenge expiry.
type ChallengeStore struct {
	client *redis.Client
}

func NewChallengeStore(client *redis.Client) *ChallengeStore {
	return &ChallengeStore{client: client}
}

func (s *ChallengeStore) key(email string) string {
	return challengeKeyPrefix + email
}

func (s *ChallengeStore) Put(ctx context.Context, c *domain.Challenge) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal challenge: %w", err)
	}
	ttl := time.Until(c.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("challenge for %s already expired", c.Email)
	}
	if err := s.client.Set(ctx, s.key(c.Email), data, ttl).Err(); err != nil {
		return fmt.Errorf("store challenge: %w", err)
	}
	return nil
}

func (s *ChallengeStore) Get(ctx context.Context, email string) (*domain.Challenge, error) {
	data, err := s.client.Get(ctx, s.key(email)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("no challenge for %s: %w", email, domain.ErrChallengeNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load challenge: %w", err)
	}
	var c domain.Challenge
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal challenge: %w", err)
	}
	return &c, nil
}

func (s *ChallengeStore) Delete(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, s.key(email)).Err(); err != nil {
		return fmt.Errorf("delete challenge: %w", err)
	}
	return nil
}
