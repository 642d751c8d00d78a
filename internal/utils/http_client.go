package utils

import (
	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the per-request trace id between the client and the
// server.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client to
// expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent HTTPClient that asks for JSON and
// stamps every request with a fresh [TraceIDHeader] unless the caller set one.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if req.Header.Get(TraceIDHeader) == "" {
				req.SetHeader(TraceIDHeader, NewTraceID())
			}
			return nil
		})

	return &HTTPClient{Client: client}
}
