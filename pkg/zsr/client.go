package zsr

import (
	"net/http"
	"net/url"
)

// Response is a raw HTTP response with its body fully read.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsSuccess reports a 2xx status.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Result is delivered by an AsyncClient once the exchange completes.
type Result struct {
	Response *Response
	Err      error
}

// RestClient resolves endpoint paths against a base URL.
type RestClient interface {
	// RestEndpoint resolves a path relative to the base URL. A leading
	// slash on path is ignored.
	RestEndpoint(path string) (*url.URL, error)
}

// Client is a blocking transport.
type Client interface {
	RestClient
	Rest(req *http.Request) (*Response, error)
}

// AsyncClient is a non-blocking transport. RestAsync returns at once and
// delivers exactly one Result on the channel.
type AsyncClient interface {
	RestClient
	RestAsync(req *http.Request) <-chan Result
}

// Logger is the logging interface used by transports and interceptors.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, map[string]interface{}) {}
func (NopLogger) Info(string, map[string]interface{})  {}
func (NopLogger) Warn(string, map[string]interface{})  {}
func (NopLogger) Error(string, map[string]interface{}) {}
