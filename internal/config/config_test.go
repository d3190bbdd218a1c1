package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DemoDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.AppPort)
	assert.Equal(t, ModeDemo, cfg.Mode)
	assert.True(t, cfg.Demo())
	assert.Equal(t, DemoSigningSecret, cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10*time.Minute, cfg.OTPTTL)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_MODE", string(ModeProduction))
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_FROM", "noreply@example.com")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_ProductionRejectsDemoSecret(t *testing.T) {
	t.Setenv("APP_MODE", string(ModeProduction))
	t.Setenv("JWT_SECRET", DemoSigningSecret)
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_FROM", "noreply@example.com")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "demo fallback secret")
}

func TestLoad_ProductionRequiresSMTP(t *testing.T) {
	t.Setenv("APP_MODE", string(ModeProduction))
	t.Setenv("JWT_SECRET", "a-real-secret")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP_HOST")
}

func TestLoad_ProductionHappyPath(t *testing.T) {
	t.Setenv("APP_MODE", string(ModeProduction))
	t.Setenv("JWT_SECRET", "a-real-secret")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_FROM", "noreply@example.com")
	t.Setenv("OTP_TTL", "5m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Demo())
	assert.Equal(t, 5*time.Minute, cfg.OTPTTL)
	assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
}

func TestLoad_UnknownModeRejected(t *testing.T) {
	t.Setenv("APP_MODE", "staging")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_MODE")
}
