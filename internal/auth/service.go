package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/internal/employee"
	"github.com/golang-jwt/jwt/v5"
)

// CredentialSource is the employee lookup used at login. It returns the auth
// view with the password hash.
type CredentialSource interface {
	GetEmployeeByEmail(ctx context.Context, email string) *internal.APIResponse
}

type PasswordVerifier interface {
	Compare(hash, plaintext string) bool
}

// Service is the main auth service with dependencies
type Service struct {
	credentials    CredentialSource
	verifier       PasswordVerifier
	tokenGenerator TokenGenerator
	logger         *slog.Logger
}

// NewService creates a new auth service
func NewService(credentials CredentialSource, verifier PasswordVerifier, tokenGen TokenGenerator, logger *slog.Logger) *Service {
	return &Service{
		credentials:    credentials,
		verifier:       verifier,
		tokenGenerator: tokenGen,
		logger:         logger,
	}
}

// NewJWTTokenGenerator creates a new JWT token generator
func NewJWTTokenGenerator(secret string, accessTTL time.Duration) *JWTTokenGenerator {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	return &JWTTokenGenerator{
		Secret:         []byte(secret),
		AccessTokenTTL: accessTTL,
		Issuer:         "employee-directory",
	}
}

// Authenticate validates credentials and returns tokens
func (s *Service) Authenticate(ctx context.Context, dto LoginDTO) (AuthTokens, error) {
	if errs := dto.Validate(); errs != nil {
		return AuthTokens{}, errs
	}

	resp := s.credentials.GetEmployeeByEmail(ctx, dto.Email)
	if !resp.IsSuccess() {
		if resp.Code == internal.CodeNotFound {
			return AuthTokens{}, ErrInvalidCredentials
		}
		return AuthTokens{}, fmt.Errorf("load credentials: %s", resp.Message)
	}

	view, ok := resp.Data.(employee.AuthView)
	if !ok || view.Password == "" {
		return AuthTokens{}, ErrInvalidCredentials
	}

	if !s.verifier.Compare(view.Password, dto.Password) {
		s.logger.Warn("login rejected", "reason", "password mismatch")
		return AuthTokens{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokenGenerator.GenerateAccessToken(view.Email)
	if err != nil {
		return AuthTokens{}, err
	}

	return AuthTokens{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// ValidateAccessToken validates access token and returns claims
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

// GenerateAccessToken creates a new access token
func (j *JWTTokenGenerator) GenerateAccessToken(email string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(j.AccessTokenTTL)

	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    j.Issuer,
			Subject:   email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.Secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns claims
func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid && claims.Email != "" {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
