package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// stubSchema implements Validator for gateway tests without dragging in real
// schema definitions.
type stubSchema struct {
	err error
}

func (s *stubSchema) Name() string           { return "stub" }
func (s *stubSchema) Validate(doc any) error { return s.err }

func jsonHandler(status int, contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}
}

func TestFetchAndValidate_Passthrough(t *testing.T) {
	const body = `{"name": "foo", "size": 42}`
	server := httptest.NewServer(jsonHandler(200, "application/json", body))
	defer server.Close()

	c := NewClient()
	got, err := c.FetchAndValidate(context.Background(), server.URL, &stubSchema{})
	if err != nil {
		t.Fatalf("FetchAndValidate failed: %v", err)
	}
	if string(got) != body {
		t.Errorf("payload altered: got %q, want %q", got, body)
	}
}

func TestFetchAndValidate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		schema  Validator
		wantMsg string
	}{
		{
			name:    "non-200 status",
			handler: jsonHandler(500, "application/json", `{}`),
			schema:  &stubSchema{},
			wantMsg: "API returned a 500 HTTP status code",
		},
		{
			name:    "404 status",
			handler: jsonHandler(404, "application/json", `{}`),
			schema:  &stubSchema{},
			wantMsg: "API returned a 404 HTTP status code",
		},
		{
			name: "missing content type",
			handler: func(w http.ResponseWriter, r *http.Request) {
				// WriteHeader before Write suppresses Go's automatic
				// content-type sniffing header only if we delete it.
				w.Header()["Content-Type"] = nil
				w.WriteHeader(200)
				fmt.Fprint(w, `{}`)
			},
			schema:  &stubSchema{},
			wantMsg: "API returned with no `content-type` header",
		},
		{
			name:    "wrong content type",
			handler: jsonHandler(200, "text/html", `{}`),
			schema:  &stubSchema{},
			wantMsg: "API returned a non-JSON `content-type`: text/html",
		},
		{
			name:    "charset suffix is rejected",
			handler: jsonHandler(200, "application/json; charset=utf-8", `{}`),
			schema:  &stubSchema{},
			wantMsg: "API returned a non-JSON `content-type`",
		},
		{
			name:    "malformed JSON",
			handler: jsonHandler(200, "application/json", `{not json`),
			schema:  &stubSchema{},
			wantMsg: "Failed to parse JSON response",
		},
		{
			name:    "schema violation",
			handler: jsonHandler(200, "application/json", `{}`),
			schema:  &stubSchema{err: errors.New("missing required field")},
			wantMsg: "Returned JSON does not match minimum schema",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			c := NewClient()
			payload, err := c.FetchAndValidate(context.Background(), server.URL, tc.schema)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if payload != nil {
				t.Error("expected nil payload on failure")
			}
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *api.Error, got %T: %v", err, err)
			}
			if !strings.Contains(apiErr.Message, tc.wantMsg) {
				t.Errorf("message %q does not contain %q", apiErr.Message, tc.wantMsg)
			}
		})
	}
}

func TestFetchAndValidate_TransportFailure(t *testing.T) {
	server := httptest.NewServer(jsonHandler(200, "application/json", `{}`))
	server.Close() // connection refused from here on

	c := NewClient()
	_, err := c.FetchAndValidate(context.Background(), server.URL, &stubSchema{})
	if err == nil {
		t.Fatal("expected transport error")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *api.Error, got %T", err)
	}
	if apiErr.Message != "GET request failed" {
		t.Errorf("unexpected message: %q", apiErr.Message)
	}
	if apiErr.Cause == nil {
		t.Error("transport cause should be preserved for diagnostics")
	}
}

func TestError_MessageContract(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(cause, "GET request failed")
	if err.Error() != "GET request failed" {
		t.Errorf("cause leaked into message: %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}

	if msg := Errorf("").Error(); msg != "An unknown API issue was encountered." {
		t.Errorf("empty message not defaulted: %q", msg)
	}
}
