package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenGenerator issues and verifies caller identity tokens.
type TokenGenerator interface {
	GenerateAccessToken(email string) (token string, expiresAt time.Time, err error)
	ValidateToken(tokenString string) (*Claims, error)
}

type AuthTokens struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Claims represents JWT token claims. The subject is the caller's email.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type JWTTokenGenerator struct {
	Secret         []byte
	AccessTokenTTL time.Duration
	Issuer         string
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)

// Roster gate failures, in the order the gate checks them.
var (
	ErrCallerNotFound         = errors.New("employee not found")
	ErrInsufficientPrivileges = errors.New("employee does not have privileges to access department employees")
	ErrDepartmentNotFound     = errors.New("department not found")
)
