package main

import (
	"context"
	"path/filepath"
	"testing"

	"marquee/internal/logging"
	"marquee/internal/lookupcache"
)

func seedCache(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	store, err := lookupcache.Open(path, 30, logging.NewNop())
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer store.Close()
	for key, value := range entries {
		if err := store.Put(context.Background(), lookupcache.KindTrailer, key, value); err != nil {
			t.Fatalf("seed cache entry %q: %v", key, err)
		}
	}
}

func TestCacheClearReportsRemovedEntries(t *testing.T) {
	srv := newLookupServer(t)
	dir := t.TempDir()
	cachePath := filepath.Join(dir, "cache", "lookups.db")
	cfgPath := writeTestConfig(t, dir, srv.URL, "test-key", cachePath)
	seedCache(t, cachePath, map[string]string{
		"dune +movie +trailer": "Way9Dexny3w",
		"heat +movie +trailer": "0xbVckBm9Tw",
	})

	out, _, err := runCLI(t, []string{"cache", "clear"}, cfgPath, "")
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	requireContains(t, out, "Removed 2 entries")
}

func TestCachePruneKeepsFreshEntries(t *testing.T) {
	srv := newLookupServer(t)
	dir := t.TempDir()
	cachePath := filepath.Join(dir, "cache", "lookups.db")
	cfgPath := writeTestConfig(t, dir, srv.URL, "test-key", cachePath)
	seedCache(t, cachePath, map[string]string{
		"dune +movie +trailer": "Way9Dexny3w",
	})

	out, _, err := runCLI(t, []string{"cache", "prune"}, cfgPath, "")
	if err != nil {
		t.Fatalf("cache prune: %v", err)
	}
	requireContains(t, out, "Removed 0 expired entries")
}

func TestCacheCommandsRequireEnabledCache(t *testing.T) {
	srv := newLookupServer(t)
	dir := t.TempDir()
	cfgPath := writeTestConfig(t, dir, srv.URL, "test-key", "")

	_, _, err := runCLI(t, []string{"cache", "prune"}, cfgPath, "")
	if err == nil {
		t.Fatal("expected prune to fail with cache disabled")
	}
	requireContains(t, err.Error(), "disabled")
}
