//go:build integration

package integration

import (
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/fivetwenty-io/octane-zsr/pkg/zsr"
	"github.com/fivetwenty-io/octane-zsr/pkg/zsrclient"
	"github.com/joho/godotenv"
)

// TestConfig holds configuration for live API tests.
type TestConfig struct {
	Enabled  bool
	BaseURL  string
	RetryMax int
	Verbose  bool
}

// LoadTestConfig reads OCTANE_* variables, from .env when present.
func LoadTestConfig() *TestConfig {
	_ = godotenv.Load("../../.env")

	retryMax, err := strconv.Atoi(os.Getenv("OCTANE_RETRY_MAX"))
	if err != nil {
		retryMax = 2
	}

	return &TestConfig{
		Enabled:  os.Getenv("OCTANE_INTEGRATION") == "true",
		BaseURL:  os.Getenv("OCTANE_BASE_URL"),
		RetryMax: retryMax,
		Verbose:  os.Getenv("OCTANE_VERBOSE") == "true",
	}
}

// SkipIfDisabled skips the test unless OCTANE_INTEGRATION=true.
func (c *TestConfig) SkipIfDisabled(t *testing.T) {
	t.Helper()

	if !c.Enabled {
		t.Skip("set OCTANE_INTEGRATION=true to run live API tests")
	}
}

func (c *TestConfig) clientConfig() *zsrclient.Config {
	config := zsrclient.DefaultConfig()
	config.BaseURL = c.BaseURL
	config.RetryMax = c.RetryMax
	config.HTTPTimeout = 20 * time.Second
	config.Debug = c.Verbose

	return config
}

// Client builds a blocking client for the live API.
func (c *TestConfig) Client(t *testing.T) zsr.Client {
	t.Helper()

	client, err := zsrclient.New(c.clientConfig())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	return client
}

// AsyncClient builds an async client for the live API.
func (c *TestConfig) AsyncClient(t *testing.T) zsr.AsyncClient {
	t.Helper()

	client, err := zsrclient.NewAsync(c.clientConfig())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	return client
}
