package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rockpoolstays/innboard/internal/dashboard/limiter"
	"github.com/rockpoolstays/innboard/internal/dashboard/service"
	"github.com/rockpoolstays/innboard/pkg/httpx"
	"github.com/rockpoolstays/innboard/pkg/slogx"
)

// AuthHandler owns the login and logout endpoints. These are the only
// endpoints reachable without a session.
type AuthHandler struct {
	Auth     *service.AuthService
	Sessions *service.SessionService
	Limiter  limiter.Limiter
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login. The rate limiter is consulted before the
// credentials are ever looked at, so hammering the endpoint burns quota even
// with garbage payloads.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())
	ip := httpx.IPKeyExtractor(r)

	ok, err := h.Limiter.Allow(r.Context(), "login:"+ip)
	if err != nil {
		// Fail closed: an unreachable limiter must not open the brute-force
		// window.
		log.Error("login limiter unavailable", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !ok {
		log.Warn("login attempts rate limited", "ip", ip)
		httpx.WriteMessage(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	if req.Email == "" || req.Password == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.Auth.VerifyCredentials(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Warn("login failed", "ip", ip)
			httpx.WriteMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Error("credential verification failed", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.Sessions.Issue(user.Email, time.Now())
	if err != nil {
		log.Error("failed to sign session token", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.SetCookie(w, h.Sessions.Cookie(token))
	log.Info("login succeeded", "user_id", user.ID)
	httpx.WriteMessage(w, http.StatusOK, "Login successful")
}

// Logout handles GET /api/auth/logout by overwriting the session cookie. The
// token itself stays valid until expiry; there is no server-side revocation.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.Sessions.ClearedCookie())
	httpx.WriteMessage(w, http.StatusOK, "Logout successful")
}
