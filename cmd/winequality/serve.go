package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/winequality/internal/api"
	"github.com/dshills/winequality/internal/config"
	"github.com/dshills/winequality/internal/logging"
)

type serveFlags struct {
	configPath string
	addr       string
	logLevel   string
	logFile    string
}

func newServeCmd() *cobra.Command {
	f := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the prediction API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveServeConfig(cmd, f)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.configPath, "config", "", "Path to YAML config file")
	flags.StringVar(&f.addr, "addr", "", "Listen address (overrides config)")
	flags.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	flags.StringVar(&f.logFile, "log-file", "", "Write logs to a rotating file (overrides config)")

	return cmd
}

func resolveServeConfig(cmd *cobra.Command, f *serveFlags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, exitError(3, "failed to load config: %v", err)
	}
	if cmd.Flags().Changed("addr") {
		cfg.Server.Addr = f.addr
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = f.logFile
	}
	if err := cfg.Validate(); err != nil {
		return cfg, exitError(3, "invalid config: %v", err)
	}
	return cfg, nil
}

func runServe(ctx context.Context, cfg config.Config) error {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return exitError(3, "failed to initialize logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv := api.New(api.Options{
		Config:   cfg,
		Logger:   logger,
		Version:  version,
		Registry: reg,
	})

	logger.Info("winequality starting",
		zap.String("version", version),
		zap.String("addr", cfg.Server.Addr),
		zap.Bool("metrics", cfg.Metrics.Enabled),
		zap.Float64("rate_limit_rps", cfg.RateLimit.RPS),
	)
	if err := srv.Run(ctx); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return err
	}
	logger.Info("winequality stopped")
	return nil
}
