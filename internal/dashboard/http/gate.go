package http

import (
	"net/http"

	"github.com/rockpoolstays/innboard/internal/dashboard/service"
	"github.com/rockpoolstays/innboard/pkg/httpx"
	"github.com/rockpoolstays/innboard/pkg/slogx"
)

// RouteKind tags a protected route with how denial should be expressed.
// Every gated route declares its kind at registration; the gate never
// guesses from the path.
type RouteKind int

const (
	// RouteAPI routes answer denial with a 401 JSON body.
	RouteAPI RouteKind = iota
	// RoutePage routes answer denial with a redirect to the login page.
	RoutePage
)

// LoginPath is where unauthenticated page requests are sent.
const LoginPath = "/login"

// SessionGate rejects requests that do not carry a valid session cookie.
// Valid sessions have their identity attached to the request context.
func SessionGate(sessions *service.SessionService, kind RouteKind) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			cookie, err := r.Cookie(service.SessionCookieName)
			if err != nil || cookie.Value == "" {
				deny(w, r, kind)
				return
			}

			claims, err := sessions.Verify(cookie.Value)
			if err != nil {
				// Expired, tampered and malformed tokens are all the same
				// outcome for the client; the distinction only matters in logs.
				log.Warn("session rejected", "error", err)
				deny(w, r, kind)
				return
			}

			r = r.WithContext(httpx.WithIdentity(r.Context(), claims.Email))
			next.ServeHTTP(w, r)
		})
	}
}

func deny(w http.ResponseWriter, r *http.Request, kind RouteKind) {
	switch kind {
	case RoutePage:
		http.Redirect(w, r, LoginPath, http.StatusFound)
	default:
		httpx.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
	}
}
