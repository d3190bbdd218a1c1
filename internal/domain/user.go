package domain

import "time"

// User is a verified user record. Users are created exactly once at
// successful registration and are immutable afterwards; the store never
// contains an unverified user.
type User struct {
	UserID       string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"created"`
}

// SendOTPRequest is the body of the send-otp and resend-otp endpoints.
// Email is only required to be present; no format validation is performed.
type SendOTPRequest struct {
	Email string `json:"email" validate:"required"`
}

// RegisterRequest is the body of the verify-register endpoint.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,max=72"`
	OTP      string `json:"otp" validate:"required"`
}
