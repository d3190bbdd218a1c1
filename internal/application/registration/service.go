// Package registration implements the OTP lifecycle: issue a challenge,
// deliver the code, and promote a pending registration into a verified user
// with a signed session token.
package registration

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-otp-gateway/internal/domain"
	"github.com/go-otp-gateway/internal/infrastructure/mail"
	"github.com/go-otp-gateway/internal/pkg/id"
	"github.com/go-otp-gateway/internal/pkg/keylock"
	"github.com/go-otp-gateway/internal/pkg/otp"
	"golang.org/x/crypto/bcrypt"
)

// IssueResult is the outcome of a challenge issuance. DemoCode carries the
// plaintext code only in demo mode, where the API echoes it to the caller.
type IssueResult struct {
	Challenge *domain.Challenge
	DemoCode  string
}

// RegisterResult is the outcome of a successful registration.
type RegisterResult struct {
	Token string
	User  *domain.User
}

type Service interface {
	// RequestOTP issues a challenge for email unless a user already exists.
	RequestOTP(ctx context.Context, email string) (*IssueResult, error)
	// ResendOTP issues a fresh challenge, replacing any outstanding one.
	// Unlike RequestOTP it does not reject already-registered emails.
	ResendOTP(ctx context.Context, email string) (*IssueResult, error)
	// VerifyAndRegister validates the presented code, stores the verified
	// user with a hashed credential, consumes the challenge and signs a
	// session token.
	VerifyAndRegister(ctx context.Context, req domain.RegisterRequest) (*RegisterResult, error)
}

type challengeStore interface {
	Put(ctx context.Context, c *domain.Challenge) error
	Get(ctx context.Context, email string) (*domain.Challenge, error)
	Delete(ctx context.Context, email string) error
}

type userStore interface {
	Put(ctx context.Context, u *domain.User) error
	Exists(ctx context.Context, email string) (bool, error)
}

type tokenSigner interface {
	Sign(email string) (string, error)
}

type service struct {
	challenges challengeStore
	users      userStore
	mailer     mail.Mailer
	tokens     tokenSigner
	locks      *keylock.KeyLock
	otpTTL     time.Duration
	demoMode   bool
}

type ServiceDeps struct {
	Challenges challengeStore
	Users      userStore
	Mailer     mail.Mailer
	Tokens     tokenSigner
	OTPTTL     time.Duration
	DemoMode   bool
}

func NewService(deps ServiceDeps) Service {
	return &service{
		challenges: deps.Challenges,
		users:      deps.Users,
		mailer:     deps.Mailer,
		tokens:     deps.Tokens,
		locks:      keylock.New(),
		otpTTL:     deps.OTPTTL,
		demoMode:   deps.DemoMode,
	}
}

func (s *service) RequestOTP(ctx context.Context, email string) (*IssueResult, error) {
	s.locks.Lock(email)
	defer s.locks.Unlock(email)

	// Duplicate registration is rejected here at issuance time only;
	// VerifyAndRegister does not re-check.
	exists, err := s.users.Exists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("user already exists with this email: %w", domain.ErrConflict)
	}
	return s.issue(ctx, email)
}

func (s *service) ResendOTP(ctx context.Context, email string) (*IssueResult, error) {
	s.locks.Lock(email)
	defer s.locks.Unlock(email)
	return s.issue(ctx, email)
}

// issue stores a fresh challenge (replacing any prior one) and hands the
// code to the delivery collaborator. If delivery fails the challenge stays
// stored; there is no rollback, the caller just sees a delivery error.
func (s *service) issue(ctx context.Context, email string) (*IssueResult, error) {
	code, err := otp.New()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	ch := &domain.Challenge{
		Email:     email,
		Code:      code,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.otpTTL),
	}
	if err := s.challenges.Put(ctx, ch); err != nil {
		return nil, fmt.Errorf("store challenge: %w", err)
	}

	body, err := mail.RenderOTPEmail(code, s.otpTTL)
	if err != nil {
		return nil, err
	}
	if err := s.mailer.Send(ctx, email, mail.OTPSubject, body); err != nil {
		slog.Error("otp delivery failed", "email", email, "err", err)
		return nil, fmt.Errorf("send verification email: %w", domain.ErrDelivery)
	}

	res := &IssueResult{Challenge: ch}
	if s.demoMode {
		res.DemoCode = code
	}
	return res, nil
}

func (s *service) VerifyAndRegister(ctx context.Context, req domain.RegisterRequest) (*RegisterResult, error) {
	s.locks.Lock(req.Email)
	defer s.locks.Unlock(req.Email)

	if s.demoMode {
		// Demo relaxation: any 6-digit code is accepted.
		if len(req.OTP) != otp.Length {
			return nil, fmt.Errorf("otp must be %d digits: %w", otp.Length, domain.ErrBadRequest)
		}
	} else {
		if err := s.validateChallenge(ctx, req.Email, req.OTP); err != nil {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &domain.User{
		UserID:       id.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Verified:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Put(ctx, u); err != nil {
		return nil, fmt.Errorf("store user: %w", err)
	}
	// Single-use enforcement. In demo mode this clears whatever challenge
	// may be outstanding, matching the relaxed validation above.
	if err := s.challenges.Delete(ctx, req.Email); err != nil {
		slog.Warn("failed to delete consumed challenge", "email", req.Email, "err", err)
	}

	token, err := s.tokens.Sign(u.Email)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}
	return &RegisterResult{Token: token, User: u}, nil
}

// validateChallenge runs the production validation sequence: not found,
// expired (discarding the challenge), then code comparison. A mismatch
// leaves the challenge consumable by a later correct attempt; deletion of
// a passing challenge happens after the user record is stored.
func (s *service) validateChallenge(ctx context.Context, email, code string) error {
	ch, err := s.challenges.Get(ctx, email)
	if err != nil {
		return err
	}
	if ch.Expired(time.Now()) {
		if err := s.challenges.Delete(ctx, email); err != nil {
			slog.Warn("failed to delete expired challenge", "email", email, "err", err)
		}
		return fmt.Errorf("otp for %s: %w", email, domain.ErrChallengeExpired)
	}
	if subtle.ConstantTimeCompare([]byte(ch.Code), []byte(code)) != 1 {
		return fmt.Errorf("otp for %s: %w", email, domain.ErrCodeMismatch)
	}
	return nil
}
