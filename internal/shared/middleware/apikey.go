// Package middleware holds the fiber middleware shared by both services.
package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/catalog-inventory/services/internal/observability"
	"github.com/catalog-inventory/services/internal/shared/httpapi"
)

// APIKey guards resource routes with a shared-secret x-api-key header check.
// The check fails closed: an empty configured key or a missing header rejects
// every request.
func APIKey(key string, log observability.Logger) fiber.Handler {
	if log == nil {
		log = observability.NopLogger()
	}
	return func(c *fiber.Ctx) error {
		provided := c.Get("x-api-key")
		if provided == "" || key == "" ||
			subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			log.Warn("unauthorized request",
				observability.F("method", c.Method()),
				observability.F("path", c.Path()),
			)
			return httpapi.Error(c, fiber.StatusUnauthorized, "unauthorized", "Unauthorized: invalid API key")
		}
		return c.Next()
	}
}
