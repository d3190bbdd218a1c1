package domain

import "time"

// Challenge is the OTP stored for an email address awaiting verification.
// At most one live challenge exists per email; a newer issuance replaces
// the prior one unconditionally.
type Challenge struct {
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the challenge is past its expiry at the given instant.
func (c *Challenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
