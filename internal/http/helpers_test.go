package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"

	"stockroom/internal/http/handlers"
	"stockroom/internal/repos"
	"stockroom/internal/services"
)

// newApp wires the full route table against an in-memory database, the same
// way cmd/stockroom does, minus rate limiting tight enough to trip tests.
func newApp(t *testing.T) (*fiber.App, *sqlx.DB, *repos.UserRepo) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Server().MaxRequestBodySize = 1 << 20
	app.Use(requestid.New())
	app.Use(limiter.New(limiter.Config{Max: 100, Expiration: 0}))
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})

	deps := handlers.NewDeps(db, userRepo)
	app.Get("/", deps.InventoryHandler.Home)
	app.Get("/inventory", deps.InventoryHandler.List)
	app.Get("/movement/log", deps.MovementHandler.Log)
	app.Get("/items/add", handlers.RequireAdmin(authSvc), deps.InventoryHandler.AddForm)
	app.Post("/items/add", handlers.RequireAdmin(authSvc), deps.InventoryHandler.Add)
	app.Get("/categories/add", handlers.RequireAdmin(authSvc), deps.CategoryHandler.AddForm)
	app.Post("/categories/add", handlers.RequireAdmin(authSvc), deps.CategoryHandler.Add)
	app.Get("/items/:id/edit", handlers.RequireUser(authSvc), deps.InventoryHandler.EditForm)
	app.Post("/items/:id/edit", handlers.RequireUser(authSvc), deps.InventoryHandler.Edit)
	app.Post("/items/:id/delete", handlers.RequireUser(authSvc), deps.InventoryHandler.Delete)
	app.Get("/movement", handlers.RequireUser(authSvc), deps.MovementHandler.Form)
	app.Post("/movement", handlers.RequireUser(authSvc), deps.MovementHandler.Record)
	app.Get("/register", authH.RegisterForm)
	app.Post("/register", authH.Register)
	app.Get("/login", authH.LoginForm)
	app.Post("/login", authH.Login)
	app.Post("/logout", authH.Logout)

	return app, db, userRepo
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// csrfToken primes the double-submit cookie via any GET page.
func csrfToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/login", nil))
	if err != nil {
		t.Fatal(err)
	}
	tok := extractCookie(resp, "csrf_")
	if tok == "" {
		t.Fatal("csrf token missing")
	}
	return tok
}

// postForm submits an urlencoded form with the csrf pair and optional sid.
func postForm(t *testing.T, app *fiber.App, path, csrfTok, sid, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader("csrf="+csrfTok+"&"+body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}
