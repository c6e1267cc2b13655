package main

import (
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/reakt-dev/reakt/internal/config"
	"github.com/reakt-dev/reakt/pkg/reakt"
)

// loadConfig reads the configuration and applies the global flag overrides.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(flags.configDir)
	if err != nil {
		return nil, err
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.Log.Format = flags.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the slog logger described by cfg.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// runtimeOptions translates the configuration into runtime options.
// Metrics are registered on reg when enabled.
func runtimeOptions(cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer) []reakt.Option {
	opts := []reakt.Option{
		reakt.WithLogger(logger),
		reakt.WithHookOrderCheck(cfg.Runtime.HookOrderCheck),
		reakt.WithFalsyAsUnset(cfg.Runtime.FalsyAsUnset),
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, reakt.WithMetrics(reakt.NewMetrics(
			reakt.WithRegistry(reg),
			reakt.WithNamespace(cfg.Metrics.Namespace),
		)))
	}
	return opts
}
