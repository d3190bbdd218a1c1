package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-otp-gateway/internal/application/registration"
	"github.com/go-otp-gateway/internal/domain"
	"github.com/go-otp-gateway/internal/pkg/validate"
)

// RegisterHandler handles the verify-register endpoint.
type RegisterHandler struct {
	svc registration.Service
}

func NewRegisterHandler(svc registration.Service) *RegisterHandler {
	return &RegisterHandler{svc: svc}
}

func (h *RegisterHandler) VerifyRegister(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := h.svc.VerifyAndRegister(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, RegisterEnvelope{
		Success: true,
		Message: "Registration successful",
		Token:   res.Token,
		User:    toSafeUser(res.User),
	})
}
