package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-otp-gateway/internal/config"
	jwtinfra "github.com/go-otp-gateway/internal/infrastructure/jwt"
	"github.com/go-otp-gateway/internal/infrastructure/mail"
	"github.com/go-otp-gateway/internal/infrastructure/memory"
	redisstore "github.com/go-otp-gateway/internal/infrastructure/redis"
	transporthttp "github.com/go-otp-gateway/internal/transport/http"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, reading from environment")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := buildDeps(ctx, cfg)
	if err != nil {
		slog.Error("startup failed", "err", err)
		os.Exit(1)
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.AppPort, "mode", cfg.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "err", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// buildDeps wires the store, mailer and token provider for the selected mode.
func buildDeps(ctx context.Context, cfg *config.Config) (*transporthttp.Deps, error) {
	deps := &transporthttp.Deps{}

	if cfg.RedisAddr != "" {
		client, err := redisstore.NewClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		deps.Challenges = redisstore.NewChallengeStore(client)
		deps.Users = redisstore.NewUserStore(client)
		slog.Info("using redis stores", "addr", cfg.RedisAddr)
	} else {
		challenges := memory.NewChallengeStore()
		challenges.StartReaper(ctx, time.Minute)
		deps.Challenges = challenges
		deps.Users = memory.NewUserStore()
	}

	if cfg.Demo() {
		deps.Mailer = mail.NewLogMailer(slog.Default())
		if cfg.JWTSecret == config.DemoSigningSecret {
			slog.Warn("running with the built-in demo signing secret; tokens are forgeable")
		}
	} else {
		mailer, err := mail.NewSMTPMailer(cfg.SMTP)
		if err != nil {
			return nil, err
		}
		deps.Mailer = mailer
	}

	tokens, err := jwtinfra.NewProvider(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}
	deps.Tokens = tokens

	return deps, nil
}

// setupLogger picks a human-readable handler in demo mode and JSON in production.
func setupLogger(cfg *config.Config) {
	var h slog.Handler
	if cfg.Demo() {
		h = tint.NewHandler(os.Stdout, &tint.Options{Level: slog.LevelDebug})
	} else {
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(h))
}
