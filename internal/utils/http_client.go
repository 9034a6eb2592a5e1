package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the request trace id between client and server.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 5*time.Second)
//	resp, err := client.R().Get("/auth/hello")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client whose requests are resolved against baseURL.
// A positive timeout bounds every request. Each request without an
// [TraceIDHeader] gets a fresh UUIDv7 trace id so client and server logs can
// be correlated.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	traceIDs := NewUUIDGenerator()
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if req.Header.Get(TraceIDHeader) == "" {
			req.SetHeader(TraceIDHeader, traceIDs.Generate())
		}
		return nil
	})

	return &HTTPClient{Client: client}
}
