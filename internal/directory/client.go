// Package directory implements the inventory service's outbound lookup
// against the products service.
package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/otel/attribute"

	"github.com/catalog-inventory/services/internal/apperr"
	"github.com/catalog-inventory/services/internal/config"
	"github.com/catalog-inventory/services/internal/observability"
	"github.com/catalog-inventory/services/internal/retry"
)

// Attributes is a product's attribute map as returned by the products
// service, with the identifier stripped.
type Attributes map[string]any

// Client resolves a product's attributes by id. Any failure, remote not-found
// included, surfaces as a ProductUnavailable error.
type Client interface {
	GetProduct(ctx context.Context, productID int64) (Attributes, error)
}

// HTTPClient calls GET {base}/products/{id} with the shared-secret header,
// retrying transient failures per the configured policy.
type HTTPClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
	policy  retry.Policy
	sleep   retry.Sleep
	log     observability.Logger
	tracer  observability.TraceCtx
	retries observability.Counter
}

// Option adjusts an HTTPClient beyond its configuration.
type Option func(*HTTPClient)

// WithSleep replaces the inter-attempt wait. Tests use this to avoid real
// backoff delays.
func WithSleep(s retry.Sleep) Option {
	return func(c *HTTPClient) { c.sleep = s }
}

// WithRetryCounter wires a metric incremented once per retry attempt.
func WithRetryCounter(counter observability.Counter) Option {
	return func(c *HTTPClient) { c.retries = counter }
}

func NewHTTPClient(cfg config.Directory, log observability.Logger, tracer observability.TraceCtx, opts ...Option) *HTTPClient {
	if log == nil {
		log = observability.NopLogger()
	}
	if tracer == nil {
		tracer = observability.NopTracer()
	}
	c := &HTTPClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		policy: retry.Policy{
			MaxAttempts: cfg.MaxAttempts,
			BaseDelay:   cfg.BaseDelay,
			Retryable:   isTransient,
		},
		sleep:   retry.DefaultSleep,
		log:     log,
		tracer:  tracer,
		retries: observability.NopCounter(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// transientError marks failures worth another attempt: transport errors,
// timeouts, and 5xx responses. 4xx responses and malformed bodies are
// terminal.
type transientError struct{ err error }

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

func isTransient(err error) bool {
	var t *transientError
	return errors.As(err, &t)
}

type document struct {
	Data struct {
		ID         json.RawMessage `json:"id"`
		Attributes map[string]any  `json:"attributes"`
	} `json:"data"`
}

// GetProduct fetches the product's attributes. On success the identifier is
// stripped from the returned map so callers cannot conflate the directory's
// id with their own key.
func (c *HTTPClient) GetProduct(ctx context.Context, productID int64) (Attributes, error) {
	const op = "directory.GetProduct"

	ctx, span := c.tracer.Start(ctx, "directory.get_product",
		attribute.Int64("product.id", productID))
	defer span.End()

	url := fmt.Sprintf("%s/products/%d", c.baseURL, productID)

	var attrs Attributes
	err := retry.Do(ctx, c.policy, c.sleep,
		func(attempt int, err error) {
			c.retries.Add(1)
			c.log.Warn("directory call retry",
				observability.F("attempt", attempt),
				observability.F("url", url),
				observability.F("error", err.Error()),
			)
		},
		func(ctx context.Context) error {
			var ferr error
			attrs, ferr = c.fetch(ctx, url)
			return ferr
		})
	if err != nil {
		return nil, apperr.Wrap(apperr.ProductUnavailable, op, err)
	}
	return attrs, nil
}

func (c *HTTPClient) fetch(ctx context.Context, url string) (Attributes, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &transientError{err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		io.Copy(io.Discard, resp.Body)
		return nil, &transientError{err: fmt.Errorf("products service returned %d", resp.StatusCode)}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("products service returned %d", resp.StatusCode)
	}

	var doc document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode products response: %w", err)
	}
	if doc.Data.Attributes == nil {
		return nil, fmt.Errorf("products response missing data.attributes")
	}

	attrs := Attributes(doc.Data.Attributes)
	delete(attrs, "id")
	return attrs, nil
}
