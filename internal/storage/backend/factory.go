// Package backend opens the storage.Store selected by configuration.
package backend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmynk/sharesplitter/internal/storage"
	"github.com/mmynk/sharesplitter/internal/storage/memory"
	"github.com/mmynk/sharesplitter/internal/storage/redis"
	"github.com/mmynk/sharesplitter/internal/storage/sqlite"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Config selects and configures a backend.
type Config struct {
	Type       Backend
	SQLitePath string
	RedisAddr  string
	RedisDB    int
}

// Open creates the store described by cfg.
func Open(ctx context.Context, cfg Config) (storage.Store, error) {
	switch cfg.Type {
	case MemoryBackend:
		slog.Info("Using in-memory storage; data will not survive a restart")
		return memory.New(), nil
	case SQLiteBackend:
		store, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite storage: %w", err)
		}
		slog.Info("Storage initialized", "backend", cfg.Type, "database", cfg.SQLitePath)
		return store, nil
	case RedisBackend:
		store, err := redis.Connect(ctx, redis.Config{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		if err != nil {
			return nil, fmt.Errorf("failed to open redis storage: %w", err)
		}
		slog.Info("Storage initialized", "backend", cfg.Type, "addr", cfg.RedisAddr, "db", cfg.RedisDB)
		return store, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Type)
	}
}
