package email

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"time"
)

// Sender delivers a single HTML message.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LoggingSender writes messages to the log instead of delivering them.
// It is used when no provider key is configured.
type LoggingSender struct{}

func NewLoggingSender() *LoggingSender {
	return &LoggingSender{}
}

func (s *LoggingSender) Send(_ context.Context, to, subject, body string) error {
	slog.Info("email not delivered (logging sender)", "to", to, "subject", subject, "bytes", len(body))
	return nil
}

// OTPMessage renders the subject and body for a verification code.
func OTPMessage(code string, ttl time.Duration) (string, string) {
	minutes := int(ttl.Minutes())
	body := fmt.Sprintf("<p>Your OTP is <b>%s</b>. It expires in %d minutes.</p>", html.EscapeString(code), minutes)
	return "Your Pixisphere OTP", body
}
