package lookupcache

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestGetExpiresOldEntries(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "lookups.db"), 30, nil)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	past := time.Now().Add(-31 * 24 * time.Hour)
	store.now = func() time.Time { return past }
	if err := store.Put(ctx, KindTrailer, "stale", "oldvalue123"); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}

	store.now = time.Now
	if _, ok, err := store.Get(ctx, KindTrailer, "stale"); err != nil || ok {
		t.Fatalf("expected expired entry to miss, ok=%v err=%v", ok, err)
	}
}

func TestPruneRemovesOnlyExpired(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "lookups.db"), 30, nil)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	past := time.Now().Add(-31 * 24 * time.Hour)
	store.now = func() time.Time { return past }
	if err := store.Put(ctx, KindTrailer, "stale", "old"); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	store.now = time.Now
	if err := store.Put(ctx, KindTrailer, "fresh", "new"); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}

	removed, err := store.Prune(ctx)
	if err != nil {
		t.Fatalf("Prune returned error: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 pruned entry, got %d", removed)
	}
	if _, ok, _ := store.Get(ctx, KindTrailer, "fresh"); !ok {
		t.Fatal("fresh entry should survive pruning")
	}
}

func TestPruneWithoutTTLIsNoop(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "lookups.db"), 0, nil)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	past := time.Now().Add(-365 * 24 * time.Hour)
	store.now = func() time.Time { return past }
	if err := store.Put(ctx, KindTrailer, "ancient", "v"); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	store.now = time.Now

	removed, err := store.Prune(ctx)
	if err != nil {
		t.Fatalf("Prune returned error: %v", err)
	}
	if removed != 0 {
		t.Fatalf("prune without ttl removed %d entries", removed)
	}
	if _, ok, _ := store.Get(ctx, KindTrailer, "ancient"); !ok {
		t.Fatal("entry should persist without ttl")
	}
}

func TestOpenRejectsSchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lookups.db")
	store, err := Open(path, 30, nil)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if _, err := store.db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	if _, err := Open(path, 30, nil); !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected schema mismatch, got %v", err)
	}
}
