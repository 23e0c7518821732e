package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/runwayhq/backend/internal/api"
	"github.com/runwayhq/backend/internal/logging"
	"github.com/runwayhq/backend/internal/storage"
)

var (
	flagAddr     string
	flagDBPath   string
	flagInMemory bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		logBuildInfo()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		db, err := storage.Open(storage.Options{
			Path:     flagDBPath,
			InMemory: flagInMemory,
		})
		if err != nil {
			return err
		}
		defer func() {
			if cerr := db.Close(); cerr != nil {
				logging.Error("closing database", "error", cerr)
			}
		}()

		srv := api.NewServer(api.Config{Addr: flagAddr}, db)
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", envOr("RUNWAY_ADDR", ":8080"),
		"address to listen on")
	serveCmd.Flags().StringVar(&flagDBPath, "db", envOr("RUNWAY_DB_PATH", storage.DefaultPath()),
		"database directory")
	serveCmd.Flags().BoolVar(&flagInMemory, "in-memory", false,
		"keep all records in memory (data is lost on exit)")
	rootCmd.AddCommand(serveCmd)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
