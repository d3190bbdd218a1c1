package handler

import (
	"net/http"

	"github.com/go-otp-gateway/internal/transport/http/middleware"
)

// MeHandler returns the identity asserted by the presented session token.
type MeHandler struct{}

func NewMeHandler() *MeHandler { return &MeHandler{} }

func (h *MeHandler) Current(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, MeEnvelope{
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	})
}
