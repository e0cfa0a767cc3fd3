package service

import (
	"net/http"
	"time"

	"github.com/rockpoolstays/innboard/pkg/jwtx"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session"

// SessionService mints and verifies stateless session tokens and owns the
// cookie attributes they travel in.
type SessionService struct {
	Signer *jwtx.HS256
	TTL    time.Duration
	// Secure marks cookies Secure; enabled outside local development.
	Secure bool
	Issuer string
}

// Issue mints a signed token for the verified identity, bound to an absolute
// expiry of now+TTL.
func (s *SessionService) Issue(email string, now time.Time) (string, error) {
	return s.Signer.Sign(jwtx.NewSessionClaims(email, s.Issuer, s.TTL, now))
}

// Verify checks signature and expiry and returns the embedded claims.
func (s *SessionService) Verify(token string) (jwtx.Claims, error) {
	return s.Signer.Verify(token)
}

// Cookie wraps a freshly issued token in the session cookie. HttpOnly keeps
// it away from scripts; Max-Age matches the token TTL.
func (s *SessionService) Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.TTL.Seconds()),
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearedCookie returns a cookie that overwrites any live session with an
// empty value and an immediately-past expiry.
func (s *SessionService) ClearedCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
