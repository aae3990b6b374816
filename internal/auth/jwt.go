// Package auth validates bearer credentials and turns them into principals.
// Tokens are HS256-signed JWTs whose subject is the principal's UUID.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pkordes/hammock-spots/internal/domain"
)

// MinSecretLength is the shortest HMAC secret NewJWTService accepts.
const MinSecretLength = 32

var (
	// ErrInvalidToken indicates the token is malformed, badly signed, or
	// carries no usable subject.
	ErrInvalidToken = fmt.Errorf("%w: invalid token", domain.ErrUnauthenticated)

	// ErrExpiredToken indicates the token's exp claim has passed.
	ErrExpiredToken = fmt.Errorf("%w: token expired", domain.ErrUnauthenticated)
)

// JWTService issues and validates HMAC-SHA256 signed access tokens.
type JWTService struct {
	signingKey []byte
	clockSkew  time.Duration
	now        func() time.Time // injectable for tests
}

// NewJWTService returns a JWTService signing with secret.
// The secret must be at least MinSecretLength bytes.
func NewJWTService(secret string) (*JWTService, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("auth.NewJWTService: secret must be at least %d characters", MinSecretLength)
	}
	return &JWTService{
		signingKey: []byte(secret),
		clockSkew:  time.Minute,
		now:        time.Now,
	}, nil
}

// Issue signs a token for principal p that expires after ttl.
func (s *JWTService) Issue(p domain.Principal, ttl time.Duration) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   p.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("auth.JWTService.Issue: sign: %w", err)
	}
	return signed, nil
}

// Authenticate validates tokenString and returns the principal it names.
// Every failure wraps domain.ErrUnauthenticated.
func (s *JWTService) Authenticate(ctx context.Context, tokenString string) (domain.Principal, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(s.clockSkew),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		slog.DebugContext(ctx, "token validation failed", "error", err)
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Principal{}, ErrExpiredToken
		}
		return domain.Principal{}, ErrInvalidToken
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		slog.DebugContext(ctx, "token subject is not a uuid", "subject", claims.Subject)
		return domain.Principal{}, ErrInvalidToken
	}
	return domain.Principal{ID: id}, nil
}
