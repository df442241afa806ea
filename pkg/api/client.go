// Package api implements the fetch-and-validate gateway shared by all REST
// API wrappers in this module, along with the unified error type they report.
//
// The gateway performs a blocking HTTP GET, checks the response envelope
// (status code and content type), parses the body as JSON and validates it
// against a caller-supplied schema descriptor. Every failure mode folds into
// a single [*Error]. No retries are performed; a failure is terminal for that
// call and callers wanting a retry policy must supply their own.
//
// A Client holds no cross-call state, so independent calls are safe to issue
// concurrently.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultTimeout bounds a single HTTP GET issued by the gateway.
const DefaultTimeout = 60 * time.Second

const contentTypeJSON = "application/json"

// Validator is the schema contract the gateway validates payloads against.
// *schema.Schema satisfies it.
type Validator interface {
	Name() string
	Validate(doc any) error
}

// Client is the fetch-and-validate gateway.
type Client struct {
	http *http.Client
	log  *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. Useful for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout overrides the default 60 second request timeout. Zero or
// negative values fall back to the default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		} else {
			c.http.Timeout = DefaultTimeout
		}
	}
}

// WithLogger attaches a logger used for request tracing and schema-validation
// detail. Validation detail is only ever surfaced here, never in errors.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient creates a gateway client with the default timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchAndValidate issues a GET against endpoint, checks the response
// envelope, and validates the JSON body against sch. On success it returns
// the raw body bytes unchanged; the payload is then safe to deserialize into
// typed records under the schema's coarse-shape guarantees.
//
// Every failure is reported as a *Error.
func (c *Client) FetchAndValidate(ctx context.Context, endpoint string, sch Validator) ([]byte, error) {
	c.debugf("performing GET request on: %s", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, Wrap(err, "GET request failed")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, Wrap(err, "GET request failed")
	}
	// Should not be possible when Do returns a nil error, but guard anyway.
	if resp == nil {
		return nil, Errorf("HTTP response was never set")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, Errorf("API returned a %d HTTP status code", resp.StatusCode)
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		return nil, Errorf("API returned with no `content-type` header")
	}
	if contentType != contentTypeJSON {
		return nil, Errorf("API returned a non-JSON `content-type`: %s", contentType)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, Wrap(err, "Failed to parse JSON response")
	}
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, Wrap(err, "Failed to parse JSON response")
	}

	if err := sch.Validate(doc); err != nil {
		c.debugf("validation detail for %s: %v", sch.Name(), err)
		return nil, Wrap(err, "Returned JSON does not match minimum schema")
	}

	return body, nil
}

func (c *Client) debugf(format string, args ...any) {
	if c.log != nil {
		c.log.Debugf(format, args...)
	}
}
