package http

import (
	"context"
	"net/http"
	"time"

	"github.com/rockpoolstays/innboard/pkg/httpx"
	"github.com/rockpoolstays/innboard/pkg/slogx"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler serves the liveness and readiness probes.
type SystemHandler struct {
	Store   Pinger
	Limiter Pinger
}

// Livez reports process liveness. It never touches dependencies.
func (h *SystemHandler) Livez(w http.ResponseWriter, r *http.Request) {
	httpx.WriteMessage(w, http.StatusOK, "ok")
}

// Readyz reports whether the service can serve traffic, checking the store
// and the login limiter backend.
func (h *SystemHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	log := slogx.FromContext(r.Context())

	if err := h.Store.Ping(ctx); err != nil {
		log.Error("readiness: store unreachable", "error", err)
		httpx.WriteMessage(w, http.StatusServiceUnavailable, "store unavailable")
		return
	}

	if h.Limiter != nil {
		if err := h.Limiter.Ping(ctx); err != nil {
			log.Error("readiness: limiter backend unreachable", "error", err)
			httpx.WriteMessage(w, http.StatusServiceUnavailable, "limiter unavailable")
			return
		}
	}

	httpx.WriteMessage(w, http.StatusOK, "ready")
}
