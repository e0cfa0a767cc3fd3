package http

import (
	"html/template"
	"net/http"

	"github.com/rockpoolstays/innboard/pkg/httpx"
	"github.com/rockpoolstays/innboard/pkg/slogx"
)

// PagesHandler serves the server-rendered shell pages. The login page is the
// only page reachable without a session; the dashboard pages sit behind the
// gate and the browser is bounced to /login when it arrives without one.
type PagesHandler struct{}

var loginPage = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Sign in - Innboard</title>
</head>
<body>
  <main>
    <h1>Innboard</h1>
    <form id="login-form" method="post" action="/api/auth/login">
      <label>Email <input type="email" name="email" required></label>
      <label>Password <input type="password" name="password" required></label>
      <button type="submit">Sign in</button>
    </form>
  </main>
</body>
</html>
`))

var dashboardPage = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}} - Innboard</title>
</head>
<body>
  <main>
    <h1>{{.Title}}</h1>
    <p>Signed in as {{.Identity}}.</p>
    <nav>
      <a href="/dashboard">Overview</a>
      <a href="/dashboard/check-ins">Check-ins</a>
      <a href="/dashboard/incomes">Incomes</a>
      <a href="/dashboard/expenses">Expenses</a>
      <a href="/dashboard/laundry">Laundry</a>
      <a href="/api/auth/logout">Sign out</a>
    </nav>
  </main>
</body>
</html>
`))

type pageData struct {
	Title    string
	Identity string
}

func (h *PagesHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := loginPage.Execute(w, nil); err != nil {
		slogx.FromContext(r.Context()).Error("failed to render login page", "error", err)
	}
}

func (h *PagesHandler) dashboard(title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := httpx.IdentityFromContext(r.Context())

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := dashboardPage.Execute(w, pageData{Title: title, Identity: identity})
		if err != nil {
			slogx.FromContext(r.Context()).Error("failed to render page", "page", title, "error", err)
		}
	}
}
