package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/auth"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/dto"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/email"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/otp"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/repository"
	"github.com/google/uuid"
)

// SignupService gates account creation on a one-time code sent by email.
type SignupService struct {
	users   UserRepository
	pending otp.Store
	codes   *otp.Generator
	mailer  email.Sender
	tokens  *auth.TokenIssuer
	ttl     time.Duration
	now     func() time.Time
}

func NewSignupService(
	users UserRepository,
	pending otp.Store,
	codes *otp.Generator,
	mailer email.Sender,
	tokens *auth.TokenIssuer,
	ttl time.Duration,
) *SignupService {
	return &SignupService{
		users:   users,
		pending: pending,
		codes:   codes,
		mailer:  mailer,
		tokens:  tokens,
		ttl:     ttl,
		now:     time.Now,
	}
}

// RequestSignup validates the prospective account, stores it with a fresh
// code and emails the code. A later request for the same email replaces
// the earlier one.
func (s *SignupService) RequestSignup(ctx context.Context, req *dto.SignupRequest) (*dto.OTPSentResponse, error) {
	addr := otp.NormalizeEmail(req.Email)
	role, err := validateSignup(addr, req)
	if err != nil {
		return nil, err
	}

	if err := s.ensureEmailFree(ctx, addr); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, internalErr("hash password", err)
	}

	payload := &otp.SignupPayload{
		Email:        addr,
		PasswordHash: hash,
		Role:         string(role),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		City:         req.City,
	}
	if err := s.issue(ctx, addr, payload); err != nil {
		return nil, err
	}
	metrics.OTPIssued.WithLabelValues("signup").Inc()
	slog.Info("signup initiated", "email", addr, "role", role, "action", "signup_request")

	return &dto.OTPSentResponse{Email: addr, ExpiresIn: int(s.ttl.Seconds())}, nil
}

// RequestOTP issues a code with no signup payload attached. Verifying such
// a code through VerifySignup yields ErrNoSignupDataFound.
func (s *SignupService) RequestOTP(ctx context.Context, req *dto.RequestOTPRequest) (*dto.OTPSentResponse, error) {
	addr := otp.NormalizeEmail(req.Email)
	if !validEmail(addr) {
		return nil, validationErr("a valid email is required")
	}
	if err := s.issue(ctx, addr, nil); err != nil {
		return nil, err
	}
	metrics.OTPIssued.WithLabelValues("resend").Inc()
	slog.Info("otp issued", "email", addr, "action", "otp_request")

	return &dto.OTPSentResponse{Email: addr, ExpiresIn: int(s.ttl.Seconds())}, nil
}

// VerifySignup consumes the pending registration for email and creates the
// user it describes. The code is single-use: the record is claimed before
// any user is written, so a replay never reaches account creation.
func (s *SignupService) VerifySignup(ctx context.Context, req *dto.VerifyOTPRequest) (*dto.AuthResponse, error) {
	addr := otp.NormalizeEmail(req.Email)
	if addr == "" || req.OTP == "" {
		return nil, validationErr("email and otp are required")
	}

	reg, err := s.pending.Get(ctx, addr)
	if errors.Is(err, otp.ErrNotFound) {
		metrics.SignupVerifications.WithLabelValues("invalid").Inc()
		return nil, ErrInvalidOrExpiredCode
	}
	if err != nil {
		return nil, internalErr("load pending registration", err)
	}
	if reg.Expired(s.now()) || reg.Code != req.OTP {
		metrics.SignupVerifications.WithLabelValues("invalid").Inc()
		return nil, ErrInvalidOrExpiredCode
	}

	claimed, err := s.pending.Claim(ctx, addr, req.OTP)
	if err != nil {
		return nil, internalErr("claim pending registration", err)
	}
	if !claimed {
		metrics.SignupVerifications.WithLabelValues("invalid").Inc()
		return nil, ErrInvalidOrExpiredCode
	}

	if reg.Signup == nil {
		metrics.SignupVerifications.WithLabelValues("no_signup_data").Inc()
		return nil, ErrNoSignupDataFound
	}

	_, err = s.users.FindByEmail(ctx, addr)
	switch {
	case err == nil:
		metrics.SignupVerifications.WithLabelValues("duplicate").Inc()
		return nil, ErrDuplicateUser
	case !errors.Is(err, repository.ErrNotFound):
		return nil, internalErr("check existing user", err)
	}

	p := reg.Signup
	user := &models.User{
		ID:        uuid.New(),
		Email:     addr,
		Password:  p.PasswordHash,
		Role:      models.Role(p.Role),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
		City:      p.City,
		IsActive:  true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			metrics.SignupVerifications.WithLabelValues("duplicate").Inc()
			return nil, ErrDuplicateUser
		}
		return nil, internalErr("create user", err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, internalErr("issue token", err)
	}

	metrics.SignupVerifications.WithLabelValues("verified").Inc()
	slog.Info("user created", "user_id", user.ID.String(), "role", user.Role, "action", "signup_verify")
	return &dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

func (s *SignupService) ensureEmailFree(ctx context.Context, addr string) error {
	_, err := s.users.FindByEmail(ctx, addr)
	switch {
	case err == nil:
		return ErrEmailTaken
	case errors.Is(err, repository.ErrNotFound):
		return nil
	default:
		return internalErr("check existing user", err)
	}
}

// issue stores a new code for addr and dispatches it. In mock mode the
// fixed code is stored and nothing is sent.
func (s *SignupService) issue(ctx context.Context, addr string, payload *otp.SignupPayload) error {
	code, err := s.codes.Generate()
	if err != nil {
		return internalErr("generate code", err)
	}

	reg := otp.PendingRegistration{
		Email:     addr,
		Code:      code,
		ExpiresAt: s.now().Add(s.ttl),
		Signup:    payload,
	}
	if err := s.pending.Put(ctx, reg); err != nil {
		return internalErr("store pending registration", err)
	}

	if s.codes.Mock() {
		slog.Info("mock otp mode, email not sent", "email", addr)
		return nil
	}

	subject, body := email.OTPMessage(code, s.ttl)
	if err := s.mailer.Send(ctx, addr, subject, body); err != nil {
		return internalErr("send otp email", err)
	}
	return nil
}

func validateSignup(addr string, req *dto.SignupRequest) (models.Role, error) {
	if !validEmail(addr) {
		return "", validationErr("a valid email is required")
	}
	if len(req.Password) < 6 {
		return "", validationErr("password must be at least 6 characters")
	}

	role := models.RoleClient
	if req.Role != "" {
		role = models.Role(req.Role)
	}
	if !role.Valid() {
		return "", validationErr("role must be one of client, partner, admin")
	}

	if !optionalLength(req.FirstName, 100) || !optionalLength(req.LastName, 100) {
		return "", validationErr("names must be at most 100 characters")
	}
	if !optionalLength(req.Phone, 15) {
		return "", validationErr("phone must be at most 15 characters")
	}
	if !optionalLength(req.City, 100) {
		return "", validationErr("city must be at most 100 characters")
	}
	return role, nil
}
