package services

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers map these to HTTP status codes with errors.Is.
var (
	ErrValidation           = errors.New("validation error")
	ErrAuth                 = errors.New("authentication error")
	ErrNotFound             = errors.New("not found")
	ErrInvalidOrExpiredCode = errors.New("invalid or expired OTP")
	ErrDuplicateUser        = errors.New("user already exists")
	ErrNoSignupDataFound    = errors.New("no signup data found")
	ErrInternal             = errors.New("internal error")
)

var (
	ErrEmailTaken         = kindError(ErrValidation, "email already registered")
	ErrInvalidCredentials = kindError(ErrAuth, "invalid email or password")
	ErrAccountInactive    = kindError(ErrAuth, "account is deactivated")
	ErrUserNotFound       = kindError(ErrNotFound, "user not found")
	ErrProfileNotFound    = kindError(ErrNotFound, "partner profile not found")
	ErrInquiryNotFound    = kindError(ErrNotFound, "inquiry not found")
	ErrLeadNotFound       = kindError(ErrNotFound, "lead not found")
	ErrPartnerNotFound    = kindError(ErrNotFound, "partner not found")

	ErrPortfolioItemNotFound = kindError(ErrNotFound, "portfolio item not found")

	ErrLeadAlreadyResponded = kindError(ErrValidation, "lead has already been responded to")
)

// kindedError carries a client-facing message and unwraps to its kind.
type kindedError struct {
	kind error
	msg  string
}

func (e *kindedError) Error() string { return e.msg }
func (e *kindedError) Unwrap() error { return e.kind }

func kindError(kind error, msg string) error {
	return &kindedError{kind: kind, msg: msg}
}

func validationErr(format string, args ...any) error {
	return kindError(ErrValidation, fmt.Sprintf(format, args...))
}

func internalErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInternal, op, err)
}
