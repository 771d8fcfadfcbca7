// Package logging configures zerolog and adapts it to the logger
// interfaces used by the client and its transport.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fivetwenty-io/octane-zsr/pkg/zsr"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Level is a minimum log level.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Config holds logger configuration.
type Config struct {
	Level Level

	// Pretty enables human-readable console output instead of JSON.
	Pretty bool

	// Output defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns info level JSON logging to stderr.
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Output: os.Stderr,
	}
}

// Setup builds a logger from cfg and installs it as the zerolog global.
func Setup(cfg Config) zerolog.Logger {
	logger := New(cfg)
	log.Logger = logger

	return logger
}

// New builds a logger from cfg without touching global state.
func New(cfg Config) zerolog.Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: output}
	}

	return zerolog.New(output).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
}

// ParseLevel converts a level name, defaulting to info.
func ParseLevel(level Level) zerolog.Level {
	switch strings.ToLower(string(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger derives a logger tagged with a component name from the global
// logger.
func NewLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// Adapter exposes a zerolog.Logger as a zsr.Logger.
type Adapter struct {
	logger zerolog.Logger
}

var _ zsr.Logger = (*Adapter)(nil)

// NewZerologAdapter wraps logger.
func NewZerologAdapter(logger zerolog.Logger) *Adapter {
	return &Adapter{logger: logger}
}

func (a *Adapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug().Fields(fields).Msg(msg)
}

func (a *Adapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info().Fields(fields).Msg(msg)
}

func (a *Adapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn().Fields(fields).Msg(msg)
}

func (a *Adapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error().Fields(fields).Msg(msg)
}

// LeveledLogger adapts a zsr.Logger to retryablehttp's LeveledLogger, which
// passes fields as alternating key/value pairs.
type LeveledLogger struct {
	Logger zsr.Logger
}

func (l LeveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, pairs(keysAndValues))
}

func (l LeveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, pairs(keysAndValues))
}

func (l LeveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, pairs(keysAndValues))
}

func (l LeveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, pairs(keysAndValues))
}

func pairs(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2) //nolint:mnd

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	if len(keysAndValues)%2 == 1 {
		fields["extra"] = keysAndValues[len(keysAndValues)-1]
	}

	return fields
}
