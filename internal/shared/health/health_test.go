package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gofiber/fiber/v2"

	"github.com/catalog-inventory/services/internal/observability"
	"github.com/catalog-inventory/services/internal/shared/health"
)

type pinger struct{ err error }

func (p pinger) PingContext(context.Context) error { return p.err }

func probe(t *testing.T, p health.Pinger) (*http.Response, health.Report) {
	t.Helper()
	app := fiber.New()
	app.Get("/health", health.Handler(p, observability.NopLogger()))
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	var report health.Report
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	return resp, report
}

func TestHealthOK(t *testing.T) {
	c := qt.New(t)

	resp, report := probe(t, pinger{})

	c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)
	c.Assert(report, qt.DeepEquals, health.Report{Status: "ok", Database: "up"})
}

func TestHealthDatabaseDown(t *testing.T) {
	c := qt.New(t)

	resp, report := probe(t, pinger{err: errors.New("connection refused")})

	c.Assert(resp.StatusCode, qt.Equals, http.StatusServiceUnavailable)
	c.Assert(report.Status, qt.Equals, "error")
	c.Assert(report.Database, qt.Equals, "down")
	c.Assert(report.Message, qt.Equals, "connection refused")
}
