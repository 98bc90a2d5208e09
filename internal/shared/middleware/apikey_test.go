package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gofiber/fiber/v2"

	"github.com/catalog-inventory/services/internal/observability"
	"github.com/catalog-inventory/services/internal/shared/middleware"
)

func guardedApp(key string) *fiber.App {
	app := fiber.New()
	app.Use(middleware.APIKey(key, observability.NopLogger()))
	app.Get("/resource", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func request(t *testing.T, app *fiber.App, apiKey string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	if apiKey != "" {
		req.Header.Set("x-api-key", apiKey)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	return resp
}

func TestAPIKeyMatchPasses(t *testing.T) {
	c := qt.New(t)
	resp := request(t, guardedApp("sekrit"), "sekrit")
	c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)
}

func TestAPIKeyMismatchRejected(t *testing.T) {
	c := qt.New(t)
	resp := request(t, guardedApp("sekrit"), "wrong")
	c.Assert(resp.StatusCode, qt.Equals, http.StatusUnauthorized)
}

func TestAPIKeyMissingHeaderRejected(t *testing.T) {
	c := qt.New(t)
	resp := request(t, guardedApp("sekrit"), "")
	c.Assert(resp.StatusCode, qt.Equals, http.StatusUnauthorized)
}

// An unset shared secret must lock the service down, never open it up.
func TestAPIKeyEmptyConfiguredKeyFailsClosed(t *testing.T) {
	c := qt.New(t)

	app := guardedApp("")

	resp := request(t, app, "")
	c.Assert(resp.StatusCode, qt.Equals, http.StatusUnauthorized)

	resp = request(t, app, "anything")
	c.Assert(resp.StatusCode, qt.Equals, http.StatusUnauthorized)
}
