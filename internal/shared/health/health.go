// Package health reports per-service liveness. The probe touches only the
// service's own datastore; it deliberately never crosses the service
// boundary, so a healthy inventory service does not imply the products
// service is reachable.
package health

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/catalog-inventory/services/internal/observability"
)

// Pinger is the connectivity probe, satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Report struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Message  string `json:"message,omitempty"`
}

// Handler returns the GET /health endpoint.
func Handler(db Pinger, log observability.Logger) fiber.Handler {
	if log == nil {
		log = observability.NopLogger()
	}
	return func(c *fiber.Ctx) error {
		if err := db.PingContext(c.Context()); err != nil {
			log.Error("health check failed", observability.F("error", err.Error()))
			return c.Status(fiber.StatusServiceUnavailable).JSON(Report{
				Status:   "error",
				Database: "down",
				Message:  err.Error(),
			})
		}
		log.Info("health check passed", observability.F("database", "up"))
		return c.JSON(Report{Status: "ok", Database: "up"})
	}
}
