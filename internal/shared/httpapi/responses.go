// Package httpapi shapes the JSON:API documents both services speak and maps
// error kinds to HTTP statuses. Status mapping lives only here; the core
// packages deal in kinds.
package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/catalog-inventory/services/internal/apperr"
)

// ResourceObject is a single JSON:API resource.
type ResourceObject struct {
	Type       string `json:"type"`
	ID         any    `json:"id"`
	Attributes any    `json:"attributes"`
}

type Document struct {
	Data ResourceObject `json:"data"`
}

type ListDocument struct {
	Data []ResourceObject `json:"data"`
}

type ErrorObject struct {
	Status int    `json:"status"`
	Code   string `json:"code,omitempty"`
	Detail string `json:"detail"`
}

type ErrorDocument struct {
	Errors []ErrorObject `json:"errors"`
}

// Resource writes a single-resource document with the given status.
func Resource(c *fiber.Ctx, status int, resourceType string, id any, attributes any) error {
	ensureRequestID(c)
	return c.Status(status).JSON(Document{
		Data: ResourceObject{Type: resourceType, ID: id, Attributes: attributes},
	})
}

// ResourceList writes a list document. ids and attributes are parallel slices.
func ResourceList(c *fiber.Ctx, resourceType string, ids []any, attributes []any) error {
	ensureRequestID(c)
	data := make([]ResourceObject, len(ids))
	for i := range ids {
		data[i] = ResourceObject{Type: resourceType, ID: ids[i], Attributes: attributes[i]}
	}
	return c.JSON(ListDocument{Data: data})
}

// Error writes a JSON:API error document.
func Error(c *fiber.Ctx, status int, code, detail string) error {
	ensureRequestID(c)
	return c.Status(status).JSON(ErrorDocument{
		Errors: []ErrorObject{{Status: status, Code: code, Detail: detail}},
	})
}

// ErrorFromKind maps a classified error to its boundary status. Directory and
// datastore failures deliberately collapse to a 500.
func ErrorFromKind(c *fiber.Ctx, err error) error {
	kind := apperr.KindOf(err)
	status := fiber.StatusInternalServerError
	switch kind {
	case apperr.NotFound:
		status = fiber.StatusNotFound
	case apperr.InvalidInput:
		status = fiber.StatusBadRequest
	case apperr.Unauthorized:
		status = fiber.StatusUnauthorized
	}
	return Error(c, status, kind.String(), err.Error())
}

// ensureRequestID echoes the caller's X-Request-ID or generates one, so every
// response is correlatable.
func ensureRequestID(c *fiber.Ctx) {
	rid := c.Get("X-Request-ID")
	if rid == "" {
		rid = uuid.New().String()
	}
	c.Set("X-Request-ID", rid)
}
