package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-otp-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func challenge(email, code string, ttl time.Duration) *domain.Challenge {
	now := time.Now().UTC()
	return &domain.Challenge{
		Email:     email,
		Code:      code,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestChallengeStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewChallengeStore()

	_, err := s.Get(ctx, "a@x.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrChallengeNotFound))

	require.NoError(t, s.Put(ctx, challenge("a@x.com", "123456", 10*time.Minute)))

	got, err := s.Get(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "123456", got.Code)

	require.NoError(t, s.Delete(ctx, "a@x.com"))
	_, err = s.Get(ctx, "a@x.com")
	assert.True(t, errors.Is(err, domain.ErrChallengeNotFound))
}

func TestChallengeStore_PutReplaces(t *testing.T) {
	ctx := context.Background()
	s := NewChallengeStore()

	require.NoError(t, s.Put(ctx, challenge("a@x.com", "111111", 10*time.Minute)))
	require.NoError(t, s.Put(ctx, challenge("a@x.com", "222222", 10*time.Minute)))

	got, err := s.Get(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "222222", got.Code)
	assert.Equal(t, 1, s.Len())
}

func TestChallengeStore_ReapRemovesOnlyExpired(t *testing.T) {
	ctx := context.Background()
	s := NewChallengeStore()

	require.NoError(t, s.Put(ctx, challenge("stale@x.com", "111111", -time.Minute)))
	require.NoError(t, s.Put(ctx, challenge("fresh@x.com", "222222", 10*time.Minute)))

	n := s.reap(time.Now())
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, s.Len())

	_, err := s.Get(ctx, "fresh@x.com")
	require.NoError(t, err)
}

func TestChallengeStore_ReaperSweepsInBackground(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewChallengeStore()
	require.NoError(t, s.Put(ctx, challenge("stale@x.com", "111111", -time.Minute)))

	s.StartReaper(ctx, 10*time.Millisecond)

	require.Eventually(t, func() bool {
		return s.Len() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestUserStore_PutGetExists(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()

	exists, err := s.Exists(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = s.Get(ctx, "a@x.com")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	u := &domain.User{UserID: "01ARZ3NDEKTSV4RRFFQ69G5FAV", Email: "a@x.com", Verified: true, CreatedAt: time.Now().UTC()}
	require.NoError(t, s.Put(ctx, u))

	exists, err = s.Exists(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := s.Get(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.UserID, got.UserID)
	assert.True(t, got.Verified)
}
