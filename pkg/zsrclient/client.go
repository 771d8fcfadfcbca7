// Package zsrclient provides the main entry point for creating zsr.octane.gg
// API clients.
package zsrclient

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/octane-zsr/internal/constants"
	zsrhttp "github.com/fivetwenty-io/octane-zsr/internal/http"
	"github.com/fivetwenty-io/octane-zsr/internal/metrics"
	"github.com/fivetwenty-io/octane-zsr/pkg/zsr"
	"github.com/prometheus/client_golang/prometheus"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired = errors.New("config is required")
	ErrInvalidBaseURL = errors.New("invalid base URL")
)

// Config configures a client. The zero value is usable and targets the
// public API.
type Config struct {
	// BaseURL defaults to https://zsr.octane.gg/. A missing scheme becomes
	// https and a trailing slash is added.
	BaseURL   string
	UserAgent string

	HTTPTimeout time.Duration

	// RetryMax enables transport retries. Zero disables them.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// MaxInFlight bounds concurrent exchanges of an async client.
	MaxInFlight int64

	Debug  bool
	Logger zsr.Logger

	// MetricsRegisterer, when set, receives the transport collectors.
	MetricsRegisterer prometheus.Registerer

	Interceptors *zsr.InterceptorChain
}

// DefaultConfig returns the configuration for the public API.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:      constants.DefaultBaseURL,
		UserAgent:    constants.DefaultUserAgent,
		HTTPTimeout:  constants.DefaultHTTPTimeout,
		RetryWaitMin: constants.DefaultRetryWaitMin,
		RetryWaitMax: constants.DefaultRetryWaitMax,
		MaxInFlight:  constants.DefaultMaxInFlight,
	}
}

// NormalizeBaseURL adds a missing scheme and a trailing slash.
func NormalizeBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = constants.DefaultBaseURL
	}

	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	if u.Host == "" {
		return nil, fmt.Errorf("%w: %q has no host", ErrInvalidBaseURL, raw)
	}

	return u, nil
}

// New creates a blocking client.
func New(config *Config) (zsr.Client, error) {
	return newHTTPClient(config)
}

// NewAsync creates an asynchronous client.
func NewAsync(config *Config) (zsr.AsyncClient, error) {
	client, err := newHTTPClient(config)
	if err != nil {
		return nil, err
	}

	return zsrhttp.NewAsyncClient(client, config.MaxInFlight), nil
}

// NewWithBaseURL creates a blocking client for baseURL with defaults.
func NewWithBaseURL(baseURL string) (zsr.Client, error) {
	config := DefaultConfig()
	config.BaseURL = baseURL

	return New(config)
}

func newHTTPClient(config *Config) (*zsrhttp.Client, error) {
	if config == nil {
		return nil, ErrConfigRequired
	}

	base, err := NormalizeBaseURL(config.BaseURL)
	if err != nil {
		return nil, err
	}

	return zsrhttp.NewClient(base, httpOptions(config)...), nil
}

// httpOptions builds transport options from config.
func httpOptions(config *Config) []zsrhttp.Option {
	var opts []zsrhttp.Option

	if config.Logger != nil {
		opts = append(opts, zsrhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, zsrhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, zsrhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, zsrhttp.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		opts = append(opts, zsrhttp.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.MetricsRegisterer != nil {
		opts = append(opts, zsrhttp.WithMetrics(metrics.NewCollector(config.MetricsRegisterer)))
	}

	if config.Interceptors != nil {
		opts = append(opts, zsrhttp.WithInterceptors(config.Interceptors))
	}

	return opts
}
