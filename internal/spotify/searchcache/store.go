package searchcache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"
)

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

const schema = `
CREATE TABLE IF NOT EXISTS search_cache (
	query      TEXT NOT NULL,
	opts       TEXT NOT NULL,
	payload    BLOB NOT NULL,
	created_at INTEGER NOT NULL,
	PRIMARY KEY (query, opts)
);
CREATE INDEX IF NOT EXISTS idx_search_cache_created ON search_cache(created_at);
`

// Store is a TTL cache for raw search responses backed by SQLite.
// A file lock next to the database keeps concurrent processes from
// interleaving schema changes and pruning.
type Store struct {
	db   *sql.DB
	path string
	ttl  time.Duration
	lock *flock.Flock
}

// Open connects to (or creates) the cache database at path. Entries
// older than ttl are treated as misses and removed on access.
func Open(path string, ttl time.Duration) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("cache path required")
	}
	if ttl <= 0 {
		return nil, errors.New("cache ttl must be positive")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire cache lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("search cache %s is locked by another process", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("init cache schema: %w", err)
	}

	return &Store{db: db, path: path, ttl: ttl, lock: lock}, nil
}

// Get returns the cached payload for the query, if present and fresh.
// Expired entries are deleted on the way out.
func (s *Store) Get(ctx context.Context, query, optsKey string) ([]byte, bool, error) {
	ctx = ensureContext(ctx)
	var (
		payload   []byte
		createdAt int64
	)
	err := retryOnBusy(ctx, func() error {
		row := s.db.QueryRowContext(ctx,
			`SELECT payload, created_at FROM search_cache WHERE query = ? AND opts = ?`,
			query, optsKey)
		return row.Scan(&payload, &createdAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read cache entry: %w", err)
	}

	if time.Since(time.Unix(createdAt, 0)) > s.ttl {
		if err := s.execWithRetry(ctx,
			`DELETE FROM search_cache WHERE query = ? AND opts = ?`,
			query, optsKey); err != nil {
			return nil, false, fmt.Errorf("evict stale cache entry: %w", err)
		}
		return nil, false, nil
	}
	return payload, true, nil
}

// Put stores or replaces the payload for the query.
func (s *Store) Put(ctx context.Context, query, optsKey string, payload []byte) error {
	ctx = ensureContext(ctx)
	if err := s.execWithRetry(ctx,
		`INSERT INTO search_cache (query, opts, payload, created_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (query, opts) DO UPDATE SET
		   payload = excluded.payload,
		   created_at = excluded.created_at`,
		query, optsKey, payload, time.Now().Unix()); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

// Prune removes all expired entries and reports how many were deleted.
func (s *Store) Prune(ctx context.Context) (int64, error) {
	ctx = ensureContext(ctx)
	cutoff := time.Now().Add(-s.ttl).Unix()
	var removed int64
	err := retryOnBusy(ctx, func() error {
		res, execErr := s.db.ExecContext(ctx,
			`DELETE FROM search_cache WHERE created_at < ?`, cutoff)
		if execErr != nil {
			return execErr
		}
		removed, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		return 0, fmt.Errorf("prune cache: %w", err)
	}
	return removed, nil
}

// Close releases the database connection and the file lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var firstErr error
	if s.db != nil {
		firstErr = s.db.Close()
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}

func (s *Store) execWithRetry(ctx context.Context, query string, args ...any) error {
	return retryOnBusy(ctx, func() error {
		_, err := s.db.ExecContext(ctx, query, args...)
		return err
	})
}
