package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/subcommands"

	"github.com/mmynk/sharesplitter/internal/config"
	"github.com/mmynk/sharesplitter/internal/ledger"
	"github.com/mmynk/sharesplitter/internal/storage/backend"
)

// configFrom extracts the configuration passed to Commander.Execute.
func configFrom(args []interface{}) *config.Config {
	for _, a := range args {
		if cfg, ok := a.(*config.Config); ok {
			return cfg
		}
	}
	return config.New()
}

// openLedger opens the configured store and loads the ledger from it.
// The returned function closes the store.
func openLedger(ctx context.Context, cfg *config.Config) (*ledger.Ledger, func(), error) {
	store, err := backend.Open(ctx, cfg.Storage())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}

	l := ledger.New(ctx, store,
		ledger.WithKeyPrefix(cfg.KeyPrefix),
		ledger.WithLogger(slog.Default()),
	)
	closeStore := func() {
		if err := store.Close(); err != nil {
			slog.Warn("Failed to close storage", "error", err)
		}
	}
	return l, closeStore, nil
}

// withLedger runs fn against the configured ledger and reports errors on stderr.
func withLedger(ctx context.Context, args []interface{}, fn func(*ledger.Ledger, *config.Config) error) subcommands.ExitStatus {
	cfg := configFrom(args)
	l, closeStore, err := openLedger(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	if err := fn(l, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
