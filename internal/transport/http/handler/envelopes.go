package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-otp-gateway/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HealthEnvelope is the health-check response.
type HealthEnvelope struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// OTPEnvelope wraps send-otp and resend-otp responses. DemoOTP is populated
// only in demo mode.
type OTPEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	DemoOTP string `json:"demo_otp,omitempty"`
	Note    string `json:"note,omitempty"`
}

// SafeUser is the client-facing shape of a user record.
type SafeUser struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegisterEnvelope wraps verify-register responses.
type RegisterEnvelope struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    *SafeUser `json:"user"`
}

// MeEnvelope wraps the authenticated introspection response.
type MeEnvelope struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

func toSafeUser(u *domain.User) *SafeUser {
	if u == nil {
		return nil
	}
	return &SafeUser{Email: u.Email, CreatedAt: u.CreatedAt}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}

// httpError maps domain sentinel errors to HTTP status codes. Challenge
// failures and conflicts are user-correctable 400s; delivery and anything
// unexpected surface as 500s with the message sanitized.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrBadRequest),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrChallengeNotFound),
		errors.Is(err, domain.ErrChallengeExpired),
		errors.Is(err, domain.ErrCodeMismatch):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrDelivery):
		writeError(w, http.StatusInternalServerError, "failed to send verification email")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
