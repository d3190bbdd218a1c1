package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-otp-gateway/internal/application/registration"
	"github.com/go-otp-gateway/internal/domain"
	"github.com/go-otp-gateway/internal/pkg/validate"
)

// OTPHandler handles the send-otp and resend-otp endpoints.
type OTPHandler struct {
	svc      registration.Service
	demoMode bool
}

func NewOTPHandler(svc registration.Service, demoMode bool) *OTPHandler {
	return &OTPHandler{svc: svc, demoMode: demoMode}
}

func (h *OTPHandler) Send(w http.ResponseWriter, r *http.Request) {
	email, ok := h.decodeEmail(w, r)
	if !ok {
		return
	}
	res, err := h.svc.RequestOTP(r.Context(), email)
	if err != nil {
		h.issueError(w, err, "OTP sent in demo mode", "123456")
		return
	}
	h.writeIssued(w, res, "OTP sent successfully")
}

func (h *OTPHandler) Resend(w http.ResponseWriter, r *http.Request) {
	email, ok := h.decodeEmail(w, r)
	if !ok {
		return
	}
	res, err := h.svc.ResendOTP(r.Context(), email)
	if err != nil {
		h.issueError(w, err, "OTP resent in demo mode", "654321")
		return
	}
	h.writeIssued(w, res, "New OTP sent successfully")
}

func (h *OTPHandler) decodeEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req domain.SendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return "", false
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return req.Email, true
}

// issueError translates issuance failures. User-correctable errors map to
// their status; anything unexpected in demo mode falls back to a fabricated
// success response. That best-effort demo fallback mirrors the demo-console
// behavior this gateway replaces and must never leak into production mode.
func (h *OTPHandler) issueError(w http.ResponseWriter, err error, demoMsg, demoCode string) {
	if h.demoMode &&
		!errors.Is(err, domain.ErrConflict) &&
		!errors.Is(err, domain.ErrBadRequest) {
		slog.Error("otp issuance failed, using demo fallback", "err", err)
		writeJSON(w, http.StatusOK, OTPEnvelope{
			Success: true,
			Message: demoMsg,
			DemoOTP: demoCode,
		})
		return
	}
	httpError(w, err)
}

func (h *OTPHandler) writeIssued(w http.ResponseWriter, res *registration.IssueResult, msg string) {
	env := OTPEnvelope{Success: true, Message: msg}
	if res.DemoCode != "" {
		env.Message = msg + " (DEMO MODE)"
		env.DemoOTP = res.DemoCode
		env.Note = "Check server logs for the OTP in demo mode"
	}
	writeJSON(w, http.StatusOK, env)
}
