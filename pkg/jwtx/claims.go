package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the default lifetime of a dashboard session.
const DefaultSessionTTL = 8 * time.Hour

// Claims are the session-token claims. The token is a stateless bearer
// credential: validity is fully determined by signature and expiry.
type Claims struct {
	jwt.RegisteredClaims

	// Email identifies the authenticated user.
	Email string `json:"email,omitempty"`
}

// NewSessionClaims builds claims for a session issued at now with the given
// lifetime.
func NewSessionClaims(email, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
	}
}
