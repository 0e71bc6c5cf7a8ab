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

	"leadgrid/internal/http/handlers"
	"leadgrid/internal/repos"
	"leadgrid/internal/services"
)

// Minimal admin app without csrf so form posts hit the handlers directly.
func newAdminFormApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	if err := userRepo.BindSession("sid-admin", "u-admin"); err != nil {
		t.Fatalf("bind admin session: %v", err)
	}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())

	deps := handlers.NewDeps(db)
	admin := app.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Post("/rules", deps.AdminHandler.CreateRule)
	admin.Post("/addresses", deps.AdminHandler.CreateAddress)
	return app
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "sid", Value: "sid-admin"})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestCreateRuleRejectsBadEnums(t *testing.T) {
	app := newAdminFormApp(t)

	// Unknown type
	resp := postForm(t, app, "/admin/rules", url.Values{
		"type": {"geo-polygon"}, "effect": {"allow"}, "postal_code": {"78462"},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown type expected 400, got %d", resp.StatusCode)
	}

	// Unknown effect
	resp = postForm(t, app, "/admin/rules", url.Values{
		"type": {"postal-code"}, "effect": {"maybe"}, "postal_code": {"78462"},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown effect expected 400, got %d", resp.StatusCode)
	}

	// postal-code rule without a postal code: syntactically fine, but the
	// authoring service rejects a rule that could never match.
	resp = postForm(t, app, "/admin/rules", url.Values{
		"type": {"postal-code"}, "effect": {"allow"},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("dead rule expected 400, got %d", resp.StatusCode)
	}

	// Valid rule -> redirect
	resp = postForm(t, app, "/admin/rules", url.Values{
		"type": {"postal-code"}, "effect": {"allow"},
		"postal_code": {"78464"}, "product_ids": {"dsl-100"},
	})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("valid rule expected redirect, got %d", resp.StatusCode)
	}
}

func TestCreateAddressValidation(t *testing.T) {
	app := newAdminFormApp(t)

	// PLZ must be exactly five digits for stored records.
	resp := postForm(t, app, "/admin/addresses", url.Values{
		"street": {"Seestraße"}, "house_number": {"8"}, "postal_code": {"784"}, "city": {"Konstanz"},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("short PLZ expected 400, got %d", resp.StatusCode)
	}

	// House number may carry a single letter suffix.
	resp = postForm(t, app, "/admin/addresses", url.Values{
		"street": {"Bodanstraße"}, "house_number": {"12a"}, "postal_code": {"78462"}, "city": {"Konstanz"},
	})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("valid address expected redirect, got %d", resp.StatusCode)
	}

	resp = postForm(t, app, "/admin/addresses", url.Values{
		"street": {"Bodanstraße"}, "house_number": {"zwölf"}, "postal_code": {"78462"}, "city": {"Konstanz"},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("non-numeric house number expected 400, got %d", resp.StatusCode)
	}
}
