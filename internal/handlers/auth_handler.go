package handlers

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SignupFlow interface {
	RequestSignup(ctx context.Context, req *dto.SignupRequest) (*dto.OTPSentResponse, error)
	VerifySignup(ctx context.Context, req *dto.VerifyOTPRequest) (*dto.AuthResponse, error)
	RequestOTP(ctx context.Context, req *dto.RequestOTPRequest) (*dto.OTPSentResponse, error)
}

type Authenticator interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Profile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type AuthHandler struct {
	signup SignupFlow
	auth   Authenticator
}

func NewAuthHandler(signup SignupFlow, auth Authenticator) *AuthHandler {
	return &AuthHandler{signup: signup, auth: auth}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.signup.RequestSignup(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return success(c, fiber.StatusOK, "OTP sent to email", resp)
}

func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var req dto.VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.signup.VerifySignup(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return success(c, fiber.StatusCreated, "Account created", resp)
}

func (h *AuthHandler) RequestOTP(c *fiber.Ctx) error {
	var req dto.RequestOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.signup.RequestOTP(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return success(c, fiber.StatusOK, "OTP sent to email", resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.auth.Login(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return success(c, fiber.StatusOK, "", resp)
}

func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	resp, err := h.auth.Profile(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return success(c, fiber.StatusOK, "", resp)
}
