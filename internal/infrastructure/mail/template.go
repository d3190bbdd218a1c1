package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// OTPSubject is the subject line of the verification email.
const OTPSubject = "Your verification code"

var otpTemplate = template.Must(template.New("otp").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #222;">
    <h2>Email verification</h2>
    <p>Use the following code to verify your email address:</p>
    <p style="font-size: 28px; letter-spacing: 6px; font-weight: bold;">{{.Code}}</p>
    <p>The code expires in {{.Minutes}} minutes. If you did not request it, ignore this email.</p>
  </body>
</html>
`))

// RenderOTPEmail renders the HTML body of the verification email.
func RenderOTPEmail(code string, ttl time.Duration) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Code    string
		Minutes int
	}{
		Code:    code,
		Minutes: int(ttl.Minutes()),
	}
	if err := otpTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render otp email: %w", err)
	}
	return buf.String(), nil
}
