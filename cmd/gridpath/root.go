package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridpath/internal/config"
)

var (
	rootCmd = &cobra.Command{
		Use:          "gridpath",
		Short:        "Visualize A* pathfinding on a square grid",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadSettings(cmd)
		},
	}

	configPath  string
	logLevel    string
	metricsAddr string

	// cfg and logger are populated before any subcommand runs.
	cfg    config.Config
	logger *slog.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to a YAML or JSON settings file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "",
		"serve Prometheus metrics on this address, e.g. :9100")

	rootCmd.AddCommand(solveCmd, playCmd)
}

func loadSettings(cmd *cobra.Command) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if cmd.Flags().Changed("metrics-addr") {
		loaded.MetricsAddr = metricsAddr
	}
	level, err := config.ParseLevel(loaded.LogLevel)
	if err != nil {
		return err
	}

	cfg = loaded
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if cfg.MetricsAddr != "" {
		serveMetrics(cfg.MetricsAddr, logger)
	}
	return nil
}
