package service_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/rockpoolstays/innboard/internal/dashboard/service"
	"github.com/rockpoolstays/innboard/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newSessionService(t *testing.T, secure bool) *service.SessionService {
	t.Helper()

	signer, err := jwtx.NewHS256([]byte("test-session-secret"), "innboard")
	require.NoError(t, err)

	return &service.SessionService{
		Signer: signer,
		TTL:    jwtx.DefaultSessionTTL,
		Secure: secure,
		Issuer: "innboard",
	}
}

func TestIssueAndVerify(t *testing.T) {
	svc := newSessionService(t, false)

	token, err := svc.Issue("owner@rockpoolstays.com", time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "owner@rockpoolstays.com", claims.Email)
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := newSessionService(t, false)

	token, err := svc.Issue("owner@rockpoolstays.com", time.Now().Add(-svc.TTL-time.Minute))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestSessionCookie(t *testing.T) {
	svc := newSessionService(t, false)

	c := svc.Cookie("some-token")
	require.Equal(t, service.SessionCookieName, c.Name)
	require.Equal(t, "some-token", c.Value)
	require.Equal(t, "/", c.Path)
	require.Equal(t, int((8 * time.Hour).Seconds()), c.MaxAge)
	require.True(t, c.HttpOnly)
	require.False(t, c.Secure)
	require.Equal(t, http.SameSiteLaxMode, c.SameSite)

	t.Run("secure in production", func(t *testing.T) {
		prod := newSessionService(t, true)
		require.True(t, prod.Cookie("t").Secure)
	})
}

func TestClearedCookie(t *testing.T) {
	svc := newSessionService(t, true)

	c := svc.ClearedCookie()
	require.Equal(t, service.SessionCookieName, c.Name)
	require.Empty(t, c.Value)
	require.Equal(t, "/", c.Path)
	require.Equal(t, -1, c.MaxAge)
	require.True(t, c.Expires.Before(time.Now()))
	require.True(t, c.HttpOnly)
	require.True(t, c.Secure)
}
