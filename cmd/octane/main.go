package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fivetwenty-io/octane-zsr/cmd/octane/commands"
	"github.com/fivetwenty-io/octane-zsr/internal/constants"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "octane",
		Short: "Rocket League esports data from zsr.octane.gg",
		Long: `A command-line interface for the Octane ZSR API.

Browse events, matches, games, players and teams, and query aggregated
stats and records.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.octane/config.yml)")
	flags.String("base-url", "", "API base URL (default "+constants.DefaultBaseURL+")")
	flags.StringP("output", "o", "", "output format (table, json, yaml); default depends on the terminal")
	flags.BoolP("verbose", "v", false, "log HTTP traffic to stderr")
	flags.String("user-agent", "", "User-Agent header")
	flags.Int("retry-max", constants.DefaultRetryMax, "transport retries for 429 and 5xx responses")
	flags.Duration("timeout", constants.DefaultHTTPTimeout, "HTTP request timeout")

	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("base_url", flags.Lookup("base-url"))
	_ = viper.BindPFlag("output", flags.Lookup("output"))
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("user_agent", flags.Lookup("user-agent"))
	_ = viper.BindPFlag("retry_max", flags.Lookup("retry-max"))
	_ = viper.BindPFlag("timeout", flags.Lookup("timeout"))

	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewEventsCommand())
	rootCmd.AddCommand(commands.NewMatchesCommand())
	rootCmd.AddCommand(commands.NewGamesCommand())
	rootCmd.AddCommand(commands.NewPlayersCommand())
	rootCmd.AddCommand(commands.NewTeamsCommand())
	rootCmd.AddCommand(commands.NewStatsCommand())
	rootCmd.AddCommand(commands.NewRecordsCommand())

	return rootCmd
}

func initConfig() {
	// A missing .env is not an error.
	_ = godotenv.Load()

	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		viper.AddConfigPath(filepath.Join(home, constants.ConfigDirName))
		viper.SetConfigType(constants.ConfigFileType)
		viper.SetConfigName(constants.ConfigFileName)
	}

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	cobra.OnInitialize(initConfig)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCommand().ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
