package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	CodeLength = 6
	// MockCode is issued and accepted when mock OTP mode is on.
	MockCode = "123456"
)

// Generator issues fixed-length numeric codes.
type Generator struct {
	mock bool
}

func NewGenerator(mock bool) *Generator {
	return &Generator{mock: mock}
}

func (g *Generator) Mock() bool { return g.mock }

func (g *Generator) Generate() (string, error) {
	if g.mock {
		return MockCode, nil
	}
	return randomCode(CodeLength)
}

func randomCode(digits int) (string, error) {
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%0*d", digits, n.Int64()), nil
}
