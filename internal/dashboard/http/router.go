package http

import (
	"log/slog"
	"net/http"

	"github.com/rockpoolstays/innboard/internal/dashboard/limiter"
	"github.com/rockpoolstays/innboard/internal/dashboard/service"
	"github.com/rockpoolstays/innboard/internal/dashboard/store"
	"github.com/rockpoolstays/innboard/pkg/httpx"
	"github.com/rockpoolstays/innboard/pkg/slogx"
)

// Router assembles the HTTP surface: public auth endpoints, the gated API
// and pages, and the system probes.
type Router struct {
	Mux *http.ServeMux

	auth     *AuthHandler
	records  *RecordsHandler
	pages    *PagesHandler
	system   *SystemHandler
	sessions *service.SessionService

	middlewares []httpx.Middleware
}

// RouterConfig carries the wired services the router exposes.
type RouterConfig struct {
	Logger   *slog.Logger
	Store    store.Store
	Auth     *service.AuthService
	Sessions *service.SessionService
	Records  *service.RecordsService
	Limiter  limiter.Limiter
}

func NewRouter(cfg RouterConfig) *Router {
	var limiterPinger Pinger
	if p, ok := cfg.Limiter.(Pinger); ok {
		limiterPinger = p
	}

	return &Router{
		Mux: http.NewServeMux(),
		auth: &AuthHandler{
			Auth:     cfg.Auth,
			Sessions: cfg.Sessions,
			Limiter:  cfg.Limiter,
		},
		records:  &RecordsHandler{Records: cfg.Records},
		pages:    &PagesHandler{},
		system:   &SystemHandler{Store: cfg.Store, Limiter: limiterPinger},
		sessions: cfg.Sessions,
		middlewares: []httpx.Middleware{
			slogx.HTTPMiddleware(cfg.Logger),
		},
	}
}

// Handler returns the fully assembled root handler.
func (rt *Router) Handler() http.Handler {
	rt.applyRoutes()
	return httpx.Chain(rt.Mux, rt.middlewares...)
}

func (rt *Router) applyRoutes() {
	rt.registerAuth()
	rt.registerRecords()
	rt.registerPages()
	rt.registerSystem()
}

// registerAuth wires the endpoints that must stay reachable without a
// session. Login carries its own sliding-window limiter inside the handler.
func (rt *Router) registerAuth() {
	rt.Mux.HandleFunc("POST /api/auth/login", rt.auth.Login)
	rt.Mux.HandleFunc("GET /api/auth/logout", rt.auth.Logout)
}

func (rt *Router) registerRecords() {
	gate := SessionGate(rt.sessions, RouteAPI)
	throttle := httpx.RateLimitByIP(httpx.ModerateLimit)

	api := func(pattern string, h http.HandlerFunc) {
		rt.Mux.Handle(pattern, httpx.Chain(h, throttle, gate))
	}

	api("GET /api/check-ins", rt.records.ListCheckIns)
	api("POST /api/check-ins", rt.records.CreateCheckIn)
	api("GET /api/check-ins/{id}", rt.records.GetCheckIn)
	api("PUT /api/check-ins/{id}", rt.records.UpdateCheckIn)

	api("GET /api/incomes", rt.records.ListIncomes)
	api("POST /api/incomes", rt.records.CreateIncome)
	api("GET /api/incomes/{id}", rt.records.GetIncome)
	api("PUT /api/incomes/{id}", rt.records.UpdateIncome)

	api("GET /api/expenses", rt.records.ListExpenses)
	api("POST /api/expenses", rt.records.CreateExpense)
	api("GET /api/expenses/{id}", rt.records.GetExpense)
	api("PUT /api/expenses/{id}", rt.records.UpdateExpense)

	api("GET /api/laundry", rt.records.ListLaundry)
	api("POST /api/laundry", rt.records.CreateLaundry)
	api("GET /api/laundry/{id}", rt.records.GetLaundry)
	api("PUT /api/laundry/{id}", rt.records.UpdateLaundry)
}

func (rt *Router) registerPages() {
	gate := SessionGate(rt.sessions, RoutePage)

	page := func(pattern, title string) {
		rt.Mux.Handle(pattern, gate(rt.pages.dashboard(title)))
	}

	rt.Mux.HandleFunc("GET /login", rt.pages.Login)

	page("GET /dashboard", "Overview")
	page("GET /dashboard/check-ins", "Check-ins")
	page("GET /dashboard/incomes", "Incomes")
	page("GET /dashboard/expenses", "Expenses")
	page("GET /dashboard/laundry", "Laundry")

	// The root is a page route too: straight to the dashboard when signed
	// in, to /login otherwise.
	rt.Mux.Handle("GET /{$}", gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	})))
}

func (rt *Router) registerSystem() {
	throttle := httpx.RateLimitByIP(httpx.LenientLimit)

	rt.Mux.Handle("GET /livez", httpx.Chain(http.HandlerFunc(rt.system.Livez), throttle))
	rt.Mux.Handle("GET /readyz", httpx.Chain(http.HandlerFunc(rt.system.Readyz), throttle))
}
