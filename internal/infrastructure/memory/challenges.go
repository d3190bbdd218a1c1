// Package memory provides the default, in-process store backends. All state
// is volatile and lost on restart.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-otp-gateway/internal/domain"
)

// ChallengeStore holds at most one challenge per email in a mutex-guarded
// map. Expired entries are checked lazily on read and additionally removed
// by a background reaper so the map does not grow with every email ever
// challenged.
type ChallengeStore struct {
	mu         sync.RWMutex
	challenges map[string]domain.Challenge
}

func NewChallengeStore() *ChallengeStore {
	return &ChallengeStore{challenges: make(map[string]domain.Challenge)}
}

// Put stores the challenge, replacing any prior challenge for the same email.
func (s *ChallengeStore) Put(_ context.Context, c *domain.Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[c.Email] = *c
	return nil
}

func (s *ChallengeStore) Get(_ context.Context, email string) (*domain.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.challenges[email]
	if !ok {
		return nil, fmt.Errorf("no challenge for %s: %w", email, domain.ErrChallengeNotFound)
	}
	return &c, nil
}

func (s *ChallengeStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.challenges, email)
	return nil
}

// StartReaper sweeps expired challenges every interval until ctx is done.
func (s *ChallengeStore) StartReaper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if n := s.reap(now); n > 0 {
					slog.Debug("reaped expired challenges", "count", n)
				}
			}
		}
	}()
}

func (s *ChallengeStore) reap(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for email, c := range s.challenges {
		if c.Expired(now) {
			delete(s.challenges, email)
			n++
		}
	}
	return n
}

// Len reports the number of stored challenges, expired or not.
func (s *ChallengeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.challenges)
}
