package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestSQLiteStore(t *testing.T) {
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "sharesplitter-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "nested", "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	t.Run("Get returns not found for missing key", func(t *testing.T) {
		value, ok, err := store.Get(ctx, "missing")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if ok || value != nil {
			t.Errorf("Expected missing key, got ok=%v value=%q", ok, value)
		}
	})

	t.Run("Put then Get round-trips", func(t *testing.T) {
		if err := store.Put(ctx, "share-splitter:participants", []byte(`[{"id":"1"}]`)); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		value, ok, err := store.Get(ctx, "share-splitter:participants")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !ok {
			t.Fatal("Expected key to exist")
		}
		if string(value) != `[{"id":"1"}]` {
			t.Errorf("Value mismatch: got %s", value)
		}
	})

	t.Run("Put replaces existing value", func(t *testing.T) {
		if err := store.Put(ctx, "k", []byte("first")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if err := store.Put(ctx, "k", []byte("second")); err != nil {
			t.Fatalf("second Put failed: %v", err)
		}
		value, _, err := store.Get(ctx, "k")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(value) != "second" {
			t.Errorf("Expected second, got %s", value)
		}
	})

	t.Run("Delete removes key and tolerates missing keys", func(t *testing.T) {
		if err := store.Delete(ctx, "k"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, ok, _ := store.Get(ctx, "k"); ok {
			t.Error("Expected key to be deleted")
		}
		if err := store.Delete(ctx, "never-existed"); err != nil {
			t.Errorf("Delete of missing key failed: %v", err)
		}
	})
}

func TestSQLiteStore_Reopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	if err := store.Put(ctx, "bills", []byte("[]")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	store.Close()

	// Migrations must be a no-op on an up-to-date database
	reopened, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer reopened.Close()

	value, ok, err := reopened.Get(ctx, "bills")
	if err != nil || !ok {
		t.Fatalf("Get after reopen: ok=%v err=%v", ok, err)
	}
	if string(value) != "[]" {
		t.Errorf("Value mismatch after reopen: %s", value)
	}
}
