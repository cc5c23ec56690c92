package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"

	"stonequote/internal/config"
	"stonequote/internal/http/handlers"
	"stonequote/internal/repos"
)

// newTestApp wires the full route table over a seeded in-memory store.
// CSRF is left out so form posts stay single-request.
func newTestApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())

	deps := handlers.NewDeps(db, config.Config{})

	app.Get("/", deps.HomeHandler.Home)
	app.Get("/materials", deps.MaterialHandler.List)
	app.Post("/materials", deps.MaterialHandler.Create)
	app.Post("/materials/:id", deps.MaterialHandler.Update)
	app.Post("/materials/:id/delete", deps.MaterialHandler.Delete)
	app.Get("/quotes", deps.QuoteHandler.List)
	app.Get("/quotes/export", deps.ExportHandler.QuoteBook)
	app.Get("/quotes/new", deps.QuoteHandler.NewForm)
	app.Post("/quotes", deps.QuoteHandler.Create)
	app.Get("/quotes/:id", deps.QuoteHandler.Detail)
	app.Post("/quotes/:id", deps.QuoteHandler.Update)
	app.Post("/quotes/:id/status", deps.QuoteHandler.SetStatus)
	app.Post("/quotes/:id/delete", deps.QuoteHandler.Delete)
	app.Get("/quotes/:id/pdf", deps.DocumentHandler.Download)

	return app, db
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func quoteForm(area string) url.Values {
	return url.Values{
		"client_name":  {"Dana Fox"},
		"client_email": {"dana@example.com"},
		"material_id":  {"blt-001"},
		"total_area":   {area},
	}
}

func TestQuoteCreatePersistsDerivedTotal(t *testing.T) {
	app, db := newTestApp(t)

	resp := postForm(t, app, "/quotes", quoteForm("10"))
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}
	loc := resp.Header.Get("Location")
	if !strings.HasPrefix(loc, "/quotes/") {
		t.Fatalf("location = %q", loc)
	}

	qs, err := repos.NewQuoteRepo(db).ListWithMaterial()
	if err != nil {
		t.Fatal(err)
	}
	if len(qs) != 1 {
		t.Fatalf("want 1 quote, got %d", len(qs))
	}
	if qs[0].TotalPrice != 450.00 {
		t.Fatalf("stored total = %v, want 450", qs[0].TotalPrice)
	}
	if qs[0].Status != "pending" {
		t.Fatalf("status = %q", qs[0].Status)
	}
}

func TestQuoteCreateRejectsBadInput(t *testing.T) {
	app, _ := newTestApp(t)

	// non-positive area
	resp := postForm(t, app, "/quotes", quoteForm("0"))
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad area expected 400, got %d", resp.StatusCode)
	}

	// unknown material
	form := quoteForm("10")
	form.Set("material_id", "missing")
	resp = postForm(t, app, "/quotes", form)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown material expected 400, got %d", resp.StatusCode)
	}

	// bad email
	form = quoteForm("10")
	form.Set("client_email", "not-an-email")
	resp = postForm(t, app, "/quotes", form)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad email expected 400, got %d", resp.StatusCode)
	}
}

func TestQuoteStatusUpdate(t *testing.T) {
	app, db := newTestApp(t)

	postForm(t, app, "/quotes", quoteForm("10"))
	qs, _ := repos.NewQuoteRepo(db).ListWithMaterial()
	if len(qs) != 1 {
		t.Fatalf("want 1 quote, got %d", len(qs))
	}
	id := qs[0].ID

	resp := postForm(t, app, "/quotes/"+id+"/status", url.Values{"status": {"approved"}})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}

	got, err := repos.NewQuoteRepo(db).GetWithMaterial(id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != "approved" {
		t.Fatalf("status = %q", got.Status)
	}

	resp = postForm(t, app, "/quotes/"+id+"/status", url.Values{"status": {"archived"}})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown status expected 400, got %d", resp.StatusCode)
	}
}
