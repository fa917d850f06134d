package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/agusespa/codesift/internal/api"
	"github.com/agusespa/codesift/pkg/config"
)

type serveParams struct {
	addr string
	ai   bool
	cfg  *config.Config
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	var (
		addr string
		ai   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analyzer over HTTP",
		Long: `Start an HTTP server exposing GET /health and POST /analyze. The analyze
endpoint accepts {"code": "...", "language": "..."} and answers with the
review as JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, serveParams{addr: addr, ai: ai, cfg: opts.cfg})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "",
		"listen address (default: server.addr from config, or :8080)")
	cmd.Flags().BoolVar(&ai, "ai", false,
		"ask the configured LLM first and fall back to heuristics on failure")

	return cmd
}

func runServe(ctx context.Context, p serveParams) error {
	if p.cfg == nil {
		p.cfg = config.Default()
	}
	addr := p.addr
	if addr == "" {
		addr = p.cfg.Server.Addr
	}

	handlers := api.NewHandlers(newService(p.cfg, p.ai), logger)
	server := &http.Server{
		Addr:              addr,
		Handler:           handlers.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr, "ai", p.ai)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "err", err)
		return err
	}
	logger.Info("server stopped")
	return nil
}
