package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/reakt-dev/reakt/internal/config"
	"github.com/reakt-dev/reakt/internal/demo"
	"github.com/reakt-dev/reakt/pkg/host/memdom"
	"github.com/reakt-dev/reakt/pkg/inspect"
	"github.com/reakt-dev/reakt/pkg/reakt"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo behind the live inspector",
		Long: `Mount the counter demo and start the inspector HTTP server.

Routes:
  GET  /tree                      container HTML with node ids
  GET  /tree.json                 JSON snapshot
  POST /nodes/{id}/events/{type}  dispatch an event
  GET  /stats                     runtime counters
  GET  /metrics                   Prometheus metrics
  GET  /ws                        HTML pushed after every render

Examples:
  reakt serve
  reakt serve --addr 127.0.0.1:9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Inspector.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, cmd)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from config)")

	return cmd
}

// serve mounts the demo and runs the inspector until ctx is canceled.
func serve(ctx context.Context, cfg *config.Config, cmd *cobra.Command) error {
	logger := newLogger(cfg, cmd.ErrOrStderr())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	srv := inspect.New(inspect.Config{Logger: logger, Gatherer: reg})
	defer srv.Close()

	doc := memdom.NewDocument()
	container := doc.Element("div")
	container.SetAttribute("id", "root")

	opts := append(runtimeOptions(cfg, logger, reg), reakt.WithErrorHandler(srv.ReportError))
	r := reakt.New(doc, opts...)
	if err := srv.Mount(r, demo.New(cfg.Demo.Title, logger).Root(), container); err != nil {
		return err
	}

	return srv.ListenAndServe(ctx, cfg.Inspector.Addr)
}
