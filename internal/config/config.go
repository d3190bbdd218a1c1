package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Mode selects between the two explicitly labeled operating configurations.
type Mode string

const (
	// ModeDemo logs OTP codes instead of emailing them and echoes the code
	// back in API responses. Never expose a demo instance publicly.
	ModeDemo Mode = "demo"
	// ModeProduction delivers codes over SMTP and enforces full challenge
	// validation. Requires an explicit signing secret at startup.
	ModeProduction Mode = "production"
)

// DemoSigningSecret is the compiled-in fallback secret used when no
// JWT_SECRET is configured in demo mode. Production refuses to start
// without an explicit secret.
const DemoSigningSecret = "demo-secret-key"

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	Mode    Mode

	JWTSecret string
	TokenTTL  time.Duration
	OTPTTL    time.Duration

	SMTP SMTP

	// RedisAddr switches the challenge and user stores from in-process
	// memory to Redis when non-empty.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AllowedOrigins []string
}

// SMTP holds the outbound mail transport settings.
type SMTP struct {
	Host     string
	Port     int
	From     string
	FromName string
	Username string
	Password string
	TLS      bool
}

// Load reads all configuration from environment variables and validates the
// combination for the selected mode. Invalid production configuration is a
// startup error, not a silent fallback.
func Load() (*Config, error) {
	cfg := &Config{
		AppPort:   getEnv("APP_PORT", "5000"),
		Mode:      Mode(getEnv("APP_MODE", string(ModeDemo))),
		JWTSecret: getEnv("JWT_SECRET", ""),
		TokenTTL:  getEnvDuration("TOKEN_TTL", 24*time.Hour),
		OTPTTL:    getEnvDuration("OTP_TTL", 10*time.Minute),
		SMTP: SMTP{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvInt("SMTP_PORT", 587),
			From:     getEnv("SMTP_FROM", ""),
			FromName: getEnv("SMTP_FROM_NAME", ""),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			TLS:      getEnvBool("SMTP_TLS", true),
		},
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Mode {
	case ModeDemo:
		if c.JWTSecret == "" {
			c.JWTSecret = DemoSigningSecret
		}
	case ModeProduction:
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in production mode")
		}
		if c.JWTSecret == DemoSigningSecret {
			return fmt.Errorf("JWT_SECRET must not be the demo fallback secret in production mode")
		}
		if c.SMTP.Host == "" {
			return fmt.Errorf("SMTP_HOST is required in production mode")
		}
		if c.SMTP.From == "" {
			return fmt.Errorf("SMTP_FROM is required in production mode")
		}
	default:
		return fmt.Errorf("APP_MODE must be %q or %q, got %q", ModeDemo, ModeProduction, c.Mode)
	}
	return nil
}

// Demo reports whether the gateway runs with the demo relaxations enabled.
func (c *Config) Demo() bool {
	return c.Mode == ModeDemo
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
