package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer signs HS256 access tokens. The claim set matches what
// middleware.JWTProtected and middleware.CurrentClaims read back.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (t *TokenIssuer) Issue(user *models.User) (string, error) {
	now := t.now()
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(t.ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Claims is the decoded subset of a token used by handlers.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Role   models.Role
}

var ErrInvalidClaims = errors.New("invalid token claims")

// ParseClaims extracts Claims from a verified token.
func ParseClaims(token *jwt.Token) (*Claims, error) {
	if token == nil {
		return nil, ErrInvalidClaims
	}
	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidClaims
	}
	sub, _ := mc["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrInvalidClaims
	}
	email, _ := mc["email"].(string)
	role, _ := mc["role"].(string)
	return &Claims{UserID: id, Email: email, Role: models.Role(role)}, nil
}
