package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/google/subcommands"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/sharesplitter/internal/ledger"
	"github.com/mmynk/sharesplitter/internal/metrics"
	"github.com/mmynk/sharesplitter/internal/middleware"
	"github.com/mmynk/sharesplitter/internal/service"
	"github.com/mmynk/sharesplitter/pkg/api"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the ledger over Connect RPC" }
func (*serveCmd) Usage() string {
	return `sharesplit serve [-addr <host:port>]

  Serves sharesplit.v1.LedgerService (Connect, gRPC and gRPC-Web over h2c),
  /metrics for Prometheus and /healthz. Stops gracefully on SIGINT or SIGTERM.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "", "Listen address. Overrides the addr setting.")
}

func (c *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := configFrom(args)
	if c.addr != "" {
		cfg.Addr = c.addr
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	l, closeStore, err := openLedger(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize ledger", "error", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newHandler(l, cfg.MetricsEnabled),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Connect server starting", "address", cfg.Addr, "backend", cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server failed", "error", err)
		return subcommands.ExitFailure
	}
	slog.Info("Server stopped")
	return subcommands.ExitSuccess
}

// newHandler builds the server's root handler: the LedgerService, optional
// metrics, and a health check, wrapped in logging and CORS middleware and
// served over h2c so HTTP/2 works without TLS.
func newHandler(l *ledger.Ledger, withMetrics bool) http.Handler {
	mux := http.NewServeMux()

	path, handler := api.NewLedgerServiceHandler(
		service.NewLedgerService(l),
		connect.WithInterceptors(middleware.LoggingInterceptor()),
	)
	mux.Handle(path, handler)

	if withMetrics {
		m := metrics.NewManager()
		m.Watch(l)
		mux.Handle("/metrics", m.Handler())
	}

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	return h2c.NewHandler(middleware.Logging(middleware.CORS(mux)), &http2.Server{})
}
