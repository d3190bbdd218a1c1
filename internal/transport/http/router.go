package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-otp-gateway/internal/application/registration"
	"github.com/go-otp-gateway/internal/config"
	"github.com/go-otp-gateway/internal/transport/http/handler"
	appmiddleware "github.com/go-otp-gateway/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// 5 requests/second, burst of 10 — applied to the public OTP endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	regSvc := registration.NewService(registration.ServiceDeps{
		Challenges: deps.Challenges,
		Users:      deps.Users,
		Mailer:     deps.Mailer,
		Tokens:     deps.Tokens,
		OTPTTL:     cfg.OTPTTL,
		DemoMode:   cfg.Demo(),
	})

	healthH := handler.NewHealthHandler(cfg.Mode)
	otpH := handler.NewOTPHandler(regSvc, cfg.Demo())
	registerH := handler.NewRegisterHandler(regSvc)
	meH := handler.NewMeHandler()

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthH.Status)
		r.With(sensitiveRL.Limit).Post("/send-otp", otpH.Send)
		r.With(sensitiveRL.Limit).Post("/resend-otp", otpH.Resend)
		r.With(sensitiveRL.Limit).Post("/verify-register", registerH.VerifyRegister)

		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.Auth(deps.Tokens))
			r.Get("/me", meH.Current)
		})
	})

	return r
}
