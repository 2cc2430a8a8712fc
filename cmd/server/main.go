// Package main is the entry point for the Destiny API server and tools
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/destiny-api/cmd/server/client"
)

var (
	logJSON  bool
	logDebug bool
)

var rootCmd = &cobra.Command{
	Use:   "destiny-api",
	Short: "Destiny Board progression and item power service",
	Long: `Destiny API serves progression tables, character specialization profiles and
item power calculations over gRPC, and ships offline tools for table generation
and profile migration.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit JSON logs")
	rootCmd.PersistentFlags().BoolVar(&logDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

func setupLogging() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if logDebug {
		opts.Level = slog.LevelDebug
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if logJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
