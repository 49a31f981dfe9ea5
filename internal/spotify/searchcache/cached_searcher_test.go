package searchcache_test

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"trackmatch/internal/spotify"
	"trackmatch/internal/spotify/searchcache"
)

type fakeSearcher struct {
	calls  int
	result *spotify.SearchResult
	err    error
}

func (f *fakeSearcher) SearchTracks(ctx context.Context, query string, opts spotify.SearchOptions) (*spotify.SearchResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func sampleResult() *spotify.SearchResult {
	raw := json.RawMessage(`{"id":"t1","name":"Song"}`)
	return &spotify.SearchResult{
		Total: 1,
		Tracks: []spotify.Track{
			{ID: "t1", Name: "Song", Artists: []spotify.Artist{{ID: "a1", Name: "Artist"}}, Raw: raw},
		},
	}
}

func TestCachedSearcherAvoidsRepeatLookups(t *testing.T) {
	store, err := searchcache.Open(filepath.Join(t.TempDir(), "cache.db"), time.Hour)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	inner := &fakeSearcher{result: sampleResult()}
	searcher := searchcache.NewSearcher(inner, store, nil)
	ctx := context.Background()
	opts := spotify.SearchOptions{Market: "US", Limit: 10}

	first, err := searcher.SearchTracks(ctx, "track:Song artist:Artist", opts)
	if err != nil {
		t.Fatalf("first search: %v", err)
	}
	second, err := searcher.SearchTracks(ctx, "track:Song artist:Artist", opts)
	if err != nil {
		t.Fatalf("second search: %v", err)
	}

	if inner.calls != 1 {
		t.Fatalf("inner searcher called %d times, want 1", inner.calls)
	}
	if len(second.Tracks) != len(first.Tracks) || second.Tracks[0].ID != "t1" {
		t.Fatalf("cached result mismatch: %#v", second)
	}
	if len(second.Tracks[0].Raw) == 0 {
		t.Fatal("raw payload lost through the cache round trip")
	}
}

func TestCachedSearcherDistinguishesOptions(t *testing.T) {
	store, err := searchcache.Open(filepath.Join(t.TempDir(), "cache.db"), time.Hour)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	inner := &fakeSearcher{result: sampleResult()}
	searcher := searchcache.NewSearcher(inner, store, nil)
	ctx := context.Background()

	if _, err := searcher.SearchTracks(ctx, "track:Song", spotify.SearchOptions{Market: "US"}); err != nil {
		t.Fatalf("search: %v", err)
	}
	if _, err := searcher.SearchTracks(ctx, "track:Song", spotify.SearchOptions{Market: "JP"}); err != nil {
		t.Fatalf("search: %v", err)
	}
	if inner.calls != 2 {
		t.Fatalf("inner searcher called %d times, want 2 for distinct markets", inner.calls)
	}
}

func TestCachedSearcherPropagatesErrors(t *testing.T) {
	store, err := searchcache.Open(filepath.Join(t.TempDir(), "cache.db"), time.Hour)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	inner := &fakeSearcher{err: errors.New("upstream down")}
	searcher := searchcache.NewSearcher(inner, store, nil)

	if _, err := searcher.SearchTracks(context.Background(), "track:Song", spotify.SearchOptions{}); err == nil {
		t.Fatal("expected upstream error to propagate")
	}
}
