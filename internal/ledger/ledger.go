// Package ledger implements the split ledger: the single participant roster,
// the list of bills, the allocation queries over them, and the persistence of
// both rosters to a storage.Store.
//
// Every successful mutation re-saves the affected roster. Persistence is
// best-effort: failures are logged and published as PersistFailed events, and
// the in-memory state stays authoritative.
package ledger

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mmynk/sharesplitter/internal/models"
	"github.com/mmynk/sharesplitter/internal/storage"
)

// DefaultKeyPrefix namespaces the storage keys of a ledger.
const DefaultKeyPrefix = "share-splitter"

// Ledger owns the participant roster and the bills.
// Create one per session with New and share it by pointer.
type Ledger struct {
	mu           sync.RWMutex
	participants []models.Participant
	bills        []models.Bill

	store    storage.Store
	keys     storageKeys
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
	validate *validator.Validate

	listenersMu  sync.Mutex
	listeners    []listenerEntry
	nextListener int
}

// Option applies a configuration option to the Ledger.
type Option func(*Ledger)

// WithKeyPrefix sets the prefix of the two storage keys.
func WithKeyPrefix(prefix string) Option {
	return func(l *Ledger) {
		if prefix != "" {
			l.keys = keysFor(prefix)
		}
	}
}

// WithLogger sets the logger used for persistence failures.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithClock sets the clock used to stamp new bills.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		if now != nil {
			l.now = now
		}
	}
}

// WithIDGenerator sets the generator for participant and bill ids.
func WithIDGenerator(newID func() string) Option {
	return func(l *Ledger) {
		if newID != nil {
			l.newID = newID
		}
	}
}

// New creates a Ledger backed by store and loads both rosters from it.
// A missing or unreadable roster starts empty; New never fails.
func New(ctx context.Context, store storage.Store, opts ...Option) *Ledger {
	l := &Ledger{
		store:    store,
		keys:     keysFor(DefaultKeyPrefix),
		logger:   slog.Default(),
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
		validate: newValidator(),
	}
	for _, opt := range opts {
		opt(l)
	}

	l.participants = l.loadParticipants(ctx)
	l.bills = l.loadBills(ctx)

	l.logger.Debug("Ledger loaded",
		"participants", len(l.participants),
		"bills", len(l.bills),
	)
	return l
}

// ClearAll empties both rosters and erases their persisted records.
func (l *Ledger) ClearAll(ctx context.Context) {
	l.mu.Lock()
	l.participants = nil
	l.bills = nil
	err := l.deleteAll(ctx)
	l.mu.Unlock()

	l.logger.Info("Ledger cleared")
	l.publish(Event{Kind: Cleared}, err)
}
