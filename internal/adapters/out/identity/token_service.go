// Package identity implements the token and credential collaborators: signed
// bearer tokens carrying the principal, and bcrypt password hashing.
package identity

import (
	"fmt"
	"time"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"

	"github.com/golang-jwt/jwt"
)

const tokenLifetime = 8 * time.Hour

type principalClaims struct {
	UserID uint64 `json:"uid"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

// JwtTokenService issues and verifies HMAC-signed bearer tokens. Tokens carry
// the user ID and role; everything else about the user stays in the store.
type JwtTokenService struct {
	secret []byte
}

// NewJwtTokenService creates a token service signing with the given secret.
func NewJwtTokenService(secret string) (*JwtTokenService, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	return &JwtTokenService{secret: []byte(secret)}, nil
}

// Issue signs a token for the principal, valid for eight hours.
func (s *JwtTokenService) Issue(principal kernel.Principal) (string, error) {
	if err := principal.Validate(); err != nil {
		return "", err
	}

	now := time.Now()
	claims := principalClaims{
		UserID: principal.UserID(),
		Role:   principal.Role().String(),
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(tokenLifetime).Unix(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses a token and reconstructs the principal it carries.
// Any parse, signature, expiry, or claim problem surfaces uniformly as
// errs.ErrUnauthenticated.
func (s *JwtTokenService) Verify(token string) (kernel.Principal, error) {
	claims := &principalClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return kernel.Principal{}, errs.NewUnauthenticatedErrorWithCause("invalid token", err)
	}

	role, err := kernel.RoleFromString(claims.Role)
	if err != nil {
		return kernel.Principal{}, errs.NewUnauthenticatedErrorWithCause("invalid token", err)
	}

	principal, err := kernel.NewPrincipal(claims.UserID, role)
	if err != nil {
		return kernel.Principal{}, errs.NewUnauthenticatedErrorWithCause("invalid token", err)
	}

	return principal, nil
}
