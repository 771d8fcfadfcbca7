package zsr

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"
)

// RequestInfo is the view of an outgoing request given to interceptors.
// Header changes are applied to the request before it is sent.
type RequestInfo struct {
	Method   string
	URL      string
	Header   http.Header
	Metadata map[string]interface{}
}

// ResponseInfo is the view of a completed exchange given to interceptors.
// Error is set when the transport failed and no response exists.
type ResponseInfo struct {
	StatusCode int
	Header     http.Header
	Duration   time.Duration
	Error      error
}

// RequestInterceptor is called before a request is sent.
type RequestInterceptor func(ctx context.Context, req *RequestInfo) error

// ResponseInterceptor is called after a response is received.
type ResponseInterceptor func(ctx context.Context, req *RequestInfo, resp *ResponseInfo) error

// InterceptorChain manages a chain of interceptors.
type InterceptorChain struct {
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// NewInterceptorChain creates a new interceptor chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{
		requestInterceptors:  make([]RequestInterceptor, 0),
		responseInterceptors: make([]ResponseInterceptor, 0),
	}
}

// AddRequestInterceptor adds a request interceptor to the chain.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) {
	c.requestInterceptors = append(c.requestInterceptors, interceptor)
}

// AddResponseInterceptor adds a response interceptor to the chain.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) {
	c.responseInterceptors = append(c.responseInterceptors, interceptor)
}

// Len returns the total number of interceptors.
func (c *InterceptorChain) Len() int {
	if c == nil {
		return 0
	}

	return len(c.requestInterceptors) + len(c.responseInterceptors)
}

// ExecuteRequestInterceptors runs all request interceptors in order.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *RequestInfo) error {
	if c == nil {
		return nil
	}

	for _, interceptor := range c.requestInterceptors {
		err := interceptor(ctx, req)
		if err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs all response interceptors in order.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *RequestInfo, resp *ResponseInfo) error {
	if c == nil {
		return nil
	}

	for _, interceptor := range c.responseInterceptors {
		err := interceptor(ctx, req, resp)
		if err != nil {
			return fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	return nil
}

// LoggingInterceptor logs requests.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(ctx context.Context, req *RequestInfo) error {
		logger.Debug("API Request", map[string]interface{}{
			"method": req.Method,
			"url":    req.URL,
		})

		return nil
	}
}

// LoggingResponseInterceptor logs responses.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(ctx context.Context, req *RequestInfo, resp *ResponseInfo) error {
		fields := map[string]interface{}{
			"method":      req.Method,
			"url":         req.URL,
			"status_code": resp.StatusCode,
			"duration":    resp.Duration.String(),
		}

		if resp.Error != nil {
			fields["error"] = resp.Error.Error()
			logger.Error("API Response Error", fields)
		} else {
			logger.Debug("API Response", fields)
		}

		return nil
	}
}

// HeaderInterceptor sets fixed headers on every request.
func HeaderInterceptor(headers map[string]string) RequestInterceptor {
	return func(ctx context.Context, req *RequestInfo) error {
		for key, value := range headers {
			req.Header.Set(key, value)
		}

		return nil
	}
}

// RequestIDInterceptor stamps every request with an increasing id header.
func RequestIDInterceptor(header string) RequestInterceptor {
	var counter atomic.Uint64

	return func(ctx context.Context, req *RequestInfo) error {
		id := counter.Add(1)
		req.Header.Set(header, fmt.Sprintf("zsr-%d", id))

		if req.Metadata != nil {
			req.Metadata["request_id"] = id
		}

		return nil
	}
}
