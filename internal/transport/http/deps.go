package http

import (
	"context"

	"github.com/go-otp-gateway/internal/domain"
	jwtinfra "github.com/go-otp-gateway/internal/infrastructure/jwt"
	"github.com/go-otp-gateway/internal/infrastructure/mail"
)

// ChallengeStore is the minimal interface the router requires from a
// challenge store. Satisfied by the memory and redis backends.
type ChallengeStore interface {
	Put(ctx context.Context, c *domain.Challenge) error
	Get(ctx context.Context, email string) (*domain.Challenge, error)
	Delete(ctx context.Context, email string) error
}

// UserStore is the minimal interface the router requires from a user store.
type UserStore interface {
	Put(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, email string) (*domain.User, error)
	Exists(ctx context.Context, email string) (bool, error)
}

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	Challenges ChallengeStore
	Users      UserStore
	Mailer     mail.Mailer
	Tokens     *jwtinfra.Provider
}
