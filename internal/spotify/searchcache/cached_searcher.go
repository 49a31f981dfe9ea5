package searchcache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"trackmatch/internal/logging"
	"trackmatch/internal/spotify"
)

// CachedSearcher wraps a Searcher with the on-disk cache. Cache
// failures are logged and degrade to a live search rather than failing
// the lookup.
type CachedSearcher struct {
	inner  spotify.Searcher
	store  *Store
	logger *slog.Logger
}

var _ spotify.Searcher = (*CachedSearcher)(nil)

// NewSearcher builds a caching wrapper around inner. A nil logger
// disables logging.
func NewSearcher(inner spotify.Searcher, store *Store, logger *slog.Logger) *CachedSearcher {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &CachedSearcher{
		inner:  inner,
		store:  store,
		logger: logging.NewComponentLogger(logger, "search-cache"),
	}
}

// SearchTracks serves from the cache when possible, falling through to
// the wrapped searcher and recording its response.
func (c *CachedSearcher) SearchTracks(ctx context.Context, query string, opts spotify.SearchOptions) (*spotify.SearchResult, error) {
	key := opts.CacheKey()

	payload, ok, err := c.store.Get(ctx, query, key)
	if err != nil {
		c.logger.Warn("cache read failed, falling through",
			logging.String(logging.FieldQuery, query),
			logging.Error(err))
	} else if ok {
		var result spotify.SearchResult
		if err := json.Unmarshal(payload, &result); err != nil {
			c.logger.Warn("cache entry corrupt, falling through",
				logging.String(logging.FieldQuery, query),
				logging.Error(err))
		} else {
			return &result, nil
		}
	}

	result, err := c.inner.SearchTracks(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode search result for cache: %w", err)
	}
	if err := c.store.Put(ctx, query, key, encoded); err != nil {
		c.logger.Warn("cache write failed",
			logging.String(logging.FieldQuery, query),
			logging.Error(err))
	}
	return result, nil
}
