// Package auth implements the token and password ports: HS256 JWT bearer
// tokens and bcrypt password hashes.
package auth

import (
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL is how long an issued token stays valid.
const DefaultTokenTTL = time.Hour

var ErrEmptySecret = errors.New("jwt secret must not be empty")

// Claims is the token payload. The claim names match the ones existing
// clients already decode.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	RoleID int64  `json:"role_id"`
}

// JWTService issues and verifies bearer tokens signed with a shared secret.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	clock  kernel.Clock
}

func NewJWTService(secret string, ttl time.Duration, clock kernel.Clock) (*JWTService, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	if clock == nil {
		clock = kernel.SystemClock{}
	}

	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  clock,
	}, nil
}

// Issue signs a token for the principal. The token carries a random jti.
func (s *JWTService) Issue(principal identity.Principal) (string, time.Time, error) {
	now := s.clock.Now()
	expiresAt := now.Add(s.ttl)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   principal.UserID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: principal.UserID.Int64(),
		Email:  principal.Email,
		RoleID: principal.RoleID.Int64(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return token, expiresAt, nil
}

// Verify parses and checks a token. Every failure is reported as
// errs.NotAuthenticatedError; expiry gets its own reason.
func (s *JWTService) Verify(token string) (identity.Principal, error) {
	if token == "" {
		return identity.Principal{}, errs.NewNotAuthenticatedError("access denied, no token provided")
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return identity.Principal{}, errs.NewNotAuthenticatedErrorWithCause("token has expired", err)
		}
		return identity.Principal{}, errs.NewNotAuthenticatedErrorWithCause("invalid token", err)
	}
	if !parsed.Valid || claims.UserID <= 0 {
		return identity.Principal{}, errs.NewNotAuthenticatedError("invalid token")
	}

	return identity.Principal{
		UserID: kernel.ID(claims.UserID),
		Email:  claims.Email,
		RoleID: kernel.ID(claims.RoleID),
	}, nil
}
