package main

import (
	"context"
	"os"
	"os/signal"
	"sitegen/internal/serve"
	"syscall"

	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site locally and rebuild on changes",
		Long: `Serve performs an initial build, serves the output directory over HTTP
and rebuilds whenever a post, a static asset or the template changes.
Prometheus metrics are exposed on /metrics.`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}
	cmd.Flags().String("addr", "", "Listen address (default from config, :8080)")
	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Serve.Addr = addr
	}
	logger := newLogger(cmd)

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := serve.New(cfg, logger)
	defer s.Close()

	return s.ListenAndServe(ctx, cfg.Serve.Addr)
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
