// Package cmd provides the CLI commands for the Runway backend.
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/runwayhq/backend/internal/logging"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagDebug    bool
	flagJSONLogs bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "runway-server",
	Short: "HTTP backend for the Runway startup-finance dashboard",
	Long: `runway-server is the API behind the Runway dashboard. It stores
colleagues, activities, assets, liabilities, projects, customers, and
investors as JSON records in an embedded key-value store and serves them
over a small CRUD surface.

Examples:
  runway-server serve
  runway-server serve --addr :9090 --db /var/lib/runway/db
  runway-server serve --in-memory --debug`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := logging.DefaultConfig()
		if flagDebug {
			cfg = logging.DebugConfig()
		}
		if flagJSONLogs {
			cfg.JSON = true
		}
		logging.Init(cfg)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagJSONLogs, "json-logs", false, "emit logs as JSON")
}

// logBuildInfo records the build stamp once at startup.
func logBuildInfo() {
	logging.Info("starting runway-server",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("built", BuildTime))
}
