package constants

import "time"

// API defaults.
const (
	// DefaultBaseURL is the public zsr.octane.gg API.
	DefaultBaseURL = "https://zsr.octane.gg/"

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "octane-zsr-go"

	// MaxPerPage is the largest page size the API accepts.
	MaxPerPage = 500
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
const DefaultHTTPTimeout = 30 * time.Second

// Retry limits. Retries are off unless RetryMax is set.
const (
	DefaultRetryMax     = 0
	DefaultRetryWaitMin = 1 * time.Second
	DefaultRetryWaitMax = 10 * time.Second
)

// Concurrency limits.
const (
	// DefaultMaxInFlight bounds concurrent requests of an async client.
	DefaultMaxInFlight = 8

	// DefaultConcurrencyLimit bounds ForEachConcurrent in the CLI.
	DefaultConcurrencyLimit = 3
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// CLI configuration.
const (
	ConfigDirName  = ".octane"
	ConfigFileName = "config"
	ConfigFileType = "yml"
	EnvPrefix      = "OCTANE"
)
