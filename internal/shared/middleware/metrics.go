package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/catalog-inventory/services/internal/observability"
)

// Metrics records a request counter and a latency histogram labeled by
// method, route, and status.
func Metrics(requests observability.Counter, duration observability.Histogram) fiber.Handler {
	if requests == nil {
		requests = observability.NopCounter()
	}
	if duration == nil {
		duration = observability.NopHistogram()
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		labels := []observability.Label{
			observability.L("method", c.Method()),
			observability.L("route", route),
			observability.L("status", strconv.Itoa(c.Response().StatusCode())),
		}
		requests.Add(1, labels...)
		duration.Observe(time.Since(start).Seconds(), labels...)
		return err
	}
}
