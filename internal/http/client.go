// Package http is the concrete transport behind the zsr engine: a blocking
// client built on go-retryablehttp and an asynchronous client layered on it.
package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/octane-zsr/internal/constants"
	"github.com/fivetwenty-io/octane-zsr/internal/logging"
	"github.com/fivetwenty-io/octane-zsr/pkg/zsr"
	"github.com/hashicorp/go-retryablehttp"
)

// Static errors for err113 compliance.
var (
	ErrNilRequest = errors.New("nil request")
)

// MetricsRecorder receives one observation per exchange.
type MetricsRecorder interface {
	RequestStarted()
	ObserveRequest(method string, status int, duration time.Duration)
}

// TransportError is returned when no response could be obtained.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client is the blocking transport. It implements zsr.Client.
type Client struct {
	baseURL      *url.URL
	httpClient   *retryablehttp.Client
	logger       zsr.Logger
	debug        bool
	userAgent    string
	metrics      MetricsRecorder
	interceptors *zsr.InterceptorChain

	base         *http.Client
	timeout      time.Duration
	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
}

var _ zsr.Client = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger zsr.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug logs every request and response at debug level.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables transport retries on connection errors, 429 and
// 5xx responses.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryMax = maxRetries
		c.retryWaitMin = waitMin
		c.retryWaitMax = waitMax
	}
}

// WithTimeout bounds each attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.base = client
	}
}

// WithMetrics records every exchange on recorder.
func WithMetrics(recorder MetricsRecorder) Option {
	return func(c *Client) {
		c.metrics = recorder
	}
}

// WithInterceptors runs chain around every exchange.
func WithInterceptors(chain *zsr.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a client for baseURL, which must end with a slash for
// relative paths to resolve beneath it.
func NewClient(baseURL *url.URL, opts ...Option) *Client {
	client := &Client{
		baseURL:      baseURL,
		logger:       zsr.NopLogger{},
		userAgent:    constants.DefaultUserAgent,
		timeout:      constants.DefaultHTTPTimeout,
		retryMax:     constants.DefaultRetryMax,
		retryWaitMin: constants.DefaultRetryWaitMin,
		retryWaitMax: constants.DefaultRetryWaitMax,
	}

	for _, opt := range opts {
		opt(client)
	}

	retryClient := retryablehttp.NewClient()
	if client.base != nil {
		retryClient.HTTPClient = client.base
	} else {
		retryClient.HTTPClient.Timeout = client.timeout
	}

	retryClient.RetryMax = client.retryMax
	retryClient.RetryWaitMin = client.retryWaitMin
	retryClient.RetryWaitMax = client.retryWaitMax
	// Non-2xx bodies are decoded by the engine, so they must be returned
	// rather than replaced with a "giving up" error.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil

	if client.debug {
		retryClient.Logger = logging.LeveledLogger{Logger: client.logger}
	}

	client.httpClient = retryClient

	return client
}

// BaseURL returns the URL paths are resolved against.
func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL

	return &u
}

// RestEndpoint implements zsr.RestClient.
func (c *Client) RestEndpoint(path string) (*url.URL, error) {
	u, err := c.baseURL.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", path, err)
	}

	return u, nil
}

// Rest implements zsr.Client. Any response, whatever its status, is
// returned with its body read.
func (c *Client) Rest(req *http.Request) (*zsr.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	ctx := req.Context()

	req.Header.Set("Accept", zsr.ContentTypeJSON)

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	info := &zsr.RequestInfo{
		Method:   req.Method,
		URL:      req.URL.String(),
		Header:   req.Header,
		Metadata: make(map[string]interface{}),
	}

	err := c.interceptors.ExecuteRequestInterceptors(ctx, info)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: info.URL, Err: err}
	}

	if c.debug {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    info.URL,
		})
	}

	retryReq, err := retryablehttp.FromRequest(req)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: info.URL, Err: err}
	}

	if c.metrics != nil {
		c.metrics.RequestStarted()
	}

	start := time.Now()
	resp, body, err := c.exchange(retryReq)
	duration := time.Since(start)

	result := &zsr.ResponseInfo{Duration: duration, Error: err}
	if resp != nil {
		result.StatusCode = resp.StatusCode
		result.Header = resp.Header
	}

	if c.metrics != nil {
		c.metrics.ObserveRequest(req.Method, result.StatusCode, duration)
	}

	if interceptErr := c.interceptors.ExecuteResponseInterceptors(ctx, info, result); interceptErr != nil && err == nil {
		err = interceptErr
	}

	if err != nil {
		c.logger.Warn("HTTP Request Failed", map[string]interface{}{
			"method":   req.Method,
			"url":      info.URL,
			"duration": duration.String(),
			"error":    err.Error(),
		})

		return nil, &TransportError{Method: req.Method, URL: info.URL, Err: err}
	}

	if c.debug {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         info.URL,
			"status_code": resp.StatusCode,
			"duration":    duration.String(),
		})
	}

	return &zsr.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

func (c *Client) exchange(req *retryablehttp.Request) (*http.Response, []byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, fmt.Errorf("reading response body: %w", err)
	}

	return resp, body, nil
}
