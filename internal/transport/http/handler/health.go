package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-otp-gateway/internal/config"
)

// HealthHandler handles the health-check endpoint.
type HealthHandler struct {
	mode config.Mode
}

func NewHealthHandler(mode config.Mode) *HealthHandler {
	return &HealthHandler{mode: mode}
}

func (h *HealthHandler) Status(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthEnvelope{
		Status:    fmt.Sprintf("server is running in %s mode", h.mode),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
