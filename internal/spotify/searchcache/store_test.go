package searchcache_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"trackmatch/internal/spotify/searchcache"
)

func openStore(t *testing.T, ttl time.Duration) *searchcache.Store {
	t.Helper()
	store, err := searchcache.Open(filepath.Join(t.TempDir(), "cache.db"), ttl)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenValidatesArguments(t *testing.T) {
	if _, err := searchcache.Open("", time.Hour); err == nil {
		t.Fatal("expected error for empty path")
	}
	if _, err := searchcache.Open(filepath.Join(t.TempDir(), "c.db"), 0); err == nil {
		t.Fatal("expected error for non-positive ttl")
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	store := openStore(t, time.Hour)
	ctx := context.Background()

	payload := []byte(`{"tracks":{"items":[]}}`)
	if err := store.Put(ctx, "track:song artist:name", "m=US|l=10", payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := store.Get(ctx, "track:song artist:name", "m=US|l=10")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(got) != string(payload) {
		t.Fatalf("payload mismatch: %s", got)
	}
}

func TestGetMissOnDifferentOptions(t *testing.T) {
	store := openStore(t, time.Hour)
	ctx := context.Background()

	if err := store.Put(ctx, "track:song", "m=US|l=10", []byte(`{}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, ok, err := store.Get(ctx, "track:song", "m=JP|l=10"); err != nil {
		t.Fatalf("Get: %v", err)
	} else if ok {
		t.Fatal("options must partition the cache key space")
	}
}

func TestExpiredEntryIsAMiss(t *testing.T) {
	store := openStore(t, time.Millisecond)
	ctx := context.Background()

	if err := store.Put(ctx, "track:song", "m=|l=0", []byte(`{}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, ok, err := store.Get(ctx, "track:song", "m=|l=0"); err != nil {
		t.Fatalf("Get: %v", err)
	} else if ok {
		t.Fatal("expected expired entry to miss")
	}
}

func TestPutReplacesExisting(t *testing.T) {
	store := openStore(t, time.Hour)
	ctx := context.Background()

	if err := store.Put(ctx, "q", "o", []byte(`old`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Put(ctx, "q", "o", []byte(`new`)); err != nil {
		t.Fatalf("Put replace: %v", err)
	}
	got, ok, err := store.Get(ctx, "q", "o")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if string(got) != "new" {
		t.Fatalf("expected replacement payload, got %s", got)
	}
}

func TestPrune(t *testing.T) {
	store := openStore(t, time.Millisecond)
	ctx := context.Background()

	if err := store.Put(ctx, "stale", "o", []byte(`{}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	removed, err := store.Prune(ctx)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if removed != 1 {
		t.Fatalf("pruned %d entries, want 1", removed)
	}
}
