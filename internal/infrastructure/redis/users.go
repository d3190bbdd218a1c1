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

const userKeyPrefix = "otp:user:"

// userRecord is the storage shape of a user. domain.User hides the password
// hash from JSON responses, so the store needs its own tags.
type userRecord struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserStore stores verified user records as JSON values keyed by email.
// Records have no TTL; durability is whatever the Redis deployment provides.
type UserStore struct {
	client *redis.Client
}

func NewUserStore(client *redis.Client) *UserStore {
	return &UserStore{client: client}
}

func (s *UserStore) key(email string) string {
	return userKeyPrefix + email
}

func (s *UserStore) Put(ctx context.Context, u *domain.User) error {
	rec := userRecord{
		UserID:       u.UserID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Verified:     u.Verified,
		CreatedAt:    u.CreatedAt,
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	if err := s.client.Set(ctx, s.key(u.Email), data, 0).Err(); err != nil {
		return fmt.Errorf("store user: %w", err)
	}
	return nil
}

func (s *UserStore) Get(ctx context.Context, email string) (*domain.User, error) {
	data, err := s.client.Get(ctx, s.key(email)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("no user for %s: %w", email, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	var rec userRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal user: %w", err)
	}
	return &domain.User{
		UserID:       rec.UserID,
		Email:        rec.Email,
		PasswordHash: rec.PasswordHash,
		Verified:     rec.Verified,
		CreatedAt:    rec.CreatedAt,
	}, nil
}

func (s *UserStore) Exists(ctx context.Context, email string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(email)).Result()
	if err != nil {
		return false, fmt.Errorf("check user: %w", err)
	}
	return n > 0, nil
}
