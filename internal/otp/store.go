package otp

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrNotFound = errors.New("pending registration not found")

// SignupPayload is the prospective account captured when the code was issued.
// It is replayed verbatim on verification; the password is already hashed.
type SignupPayload struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	Phone        string `json:"phone,omitempty"`
	City         string `json:"city,omitempty"`
}

// PendingRegistration is keyed by email. Signup is nil for codes issued
// through the standalone resend path.
type PendingRegistration struct {
	Email     string         `json:"email"`
	Code      string         `json:"code"`
	ExpiresAt time.Time      `json:"expires_at"`
	Signup    *SignupPayload `json:"signup,omitempty"`
}

// Expired reports whether now is past the expiry instant. A code presented
// exactly at ExpiresAt is still valid.
func (p *PendingRegistration) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}

// Store holds at most one pending registration per email.
type Store interface {
	// Put replaces any existing registration for the same email.
	Put(ctx context.Context, reg PendingRegistration) error
	// Get returns ErrNotFound when nothing is stored for email.
	Get(ctx context.Context, email string) (*PendingRegistration, error)
	// Claim deletes the registration only if it still carries code and
	// reports whether this caller removed it.
	Claim(ctx context.Context, email, code string) (bool, error)
}

// NormalizeEmail is the key form used by every Store.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
