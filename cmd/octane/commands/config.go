package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/fivetwenty-io/octane-zsr/internal/constants"
	"github.com/fivetwenty-io/octane-zsr/pkg/zsrclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the persisted CLI configuration.
type Config struct {
	BaseURL   string `json:"base_url,omitempty"   yaml:"base_url,omitempty"`
	Output    string `json:"output,omitempty"     yaml:"output,omitempty"`
	UserAgent string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	RetryMax  *int   `json:"retry_max,omitempty"  yaml:"retry_max,omitempty"`
	Timeout   string `json:"timeout,omitempty"    yaml:"timeout,omitempty"`
}

// configKeys lists the keys accepted by config set and unset.
//
//nolint:gochecknoglobals
var configKeys = []string{keyBaseURL, keyOutput, keyUserAgent, keyRetryMax, keyTimeout}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and persist settings in the CLI configuration file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigPathCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration after merging the file, environment and flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := effectiveSettings()

			return render(cmd, settings, func(w io.Writer) error {
				rows := make([][]string, 0, len(configKeys))
				for _, key := range configKeys {
					rows = append(rows, []string{key, settings[key]})
				}

				return renderTable(w, []string{"Key", "Value"}, rows)
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: " + strings.Join(configKeys, ", "),
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}

			config, err := loadConfig(path)
			if err != nil {
				return err
			}

			err = setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfig(path, config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %s\n", args[0], args[1])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value from the configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}

			config, err := loadConfig(path)
			if err != nil {
				return err
			}

			err = unsetConfigValue(config, args[0])
			if err != nil {
				return err
			}

			err = saveConfig(path, config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)

			return nil
		},
	}
}

func effectiveSettings() map[string]string {
	settings := make(map[string]string, len(configKeys))
	for _, key := range configKeys {
		settings[key] = viper.GetString(key)
	}

	if settings[keyBaseURL] == "" {
		settings[keyBaseURL] = constants.DefaultBaseURL
	}

	if settings[keyUserAgent] == "" {
		settings[keyUserAgent] = constants.DefaultUserAgent
	}

	return settings
}

// configPath returns the file in use, or ~/.octane/config.yml.
func configPath() (string, error) {
	if used := viper.ConfigFileUsed(); used != "" {
		return used, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName+"."+constants.ConfigFileType), nil
}

// loadConfig reads path; a missing file yields an empty configuration.
func loadConfig(path string) (*Config, error) {
	config := &Config{}

	data, err := os.ReadFile(path) //nolint:gosec
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return config, nil
}

func saveConfig(path string, config *Config) error {
	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case keyBaseURL:
		normalized, err := zsrclient.NormalizeBaseURL(value)
		if err != nil {
			return err //nolint:wrapcheck
		}

		config.BaseURL = normalized.String()
	case keyOutput:
		format := strings.ToLower(value)
		if !slices.Contains([]string{constants.FormatTable, constants.FormatJSON, constants.FormatYAML}, format) {
			return fmt.Errorf("%w: %q", constants.ErrInvalidOutput, value)
		}

		config.Output = format
	case keyUserAgent:
		config.UserAgent = value
	case keyRetryMax:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: retry_max must be a non-negative integer", constants.ErrInvalidFlag)
		}

		config.RetryMax = &n
	case keyTimeout:
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: timeout must be a positive duration such as 30s", constants.ErrInvalidFlag)
		}

		config.Timeout = d.String()
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func unsetConfigValue(config *Config, key string) error {
	switch key {
	case keyBaseURL:
		config.BaseURL = ""
	case keyOutput:
		config.Output = ""
	case keyUserAgent:
		config.UserAgent = ""
	case keyRetryMax:
		config.RetryMax = nil
	case keyTimeout:
		config.Timeout = ""
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}
