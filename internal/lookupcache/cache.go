package lookupcache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"marquee/internal/logging"
)

// Lookup kinds partition the cache by provider semantics.
const (
	KindTrailer = "trailer"
	KindRelated = "related"
)

// Store manages lookup result persistence backed by SQLite.
type Store struct {
	db     *sql.DB
	path   string
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time
}

// Open initializes or connects to the cache database at path. A ttlDays of
// zero keeps entries forever.
func Open(path string, ttlDays int, logger *slog.Logger) (*Store, error) {
	if path == "" {
		return nil, errors.New("cache path required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.NewComponentLogger(logger, "lookupcache")

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{
		db:     db,
		path:   path,
		logger: logger,
		now:    time.Now,
	}
	if ttlDays > 0 {
		store.ttl = time.Duration(ttlDays) * 24 * time.Hour
	}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the cached value for kind and key. Entries older than the
// store's TTL count as misses; Prune removes them for good.
func (s *Store) Get(ctx context.Context, kind, key string) (string, bool, error) {
	var (
		value     string
		createdAt int64
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT value, created_at FROM lookups WHERE kind = ? AND key = ?",
		kind, key,
	).Scan(&value, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query cache: %w", err)
	}
	if s.ttl > 0 && s.now().Sub(time.Unix(createdAt, 0)) > s.ttl {
		return "", false, nil
	}
	return value, true, nil
}

// Put stores or refreshes the value for kind and key.
func (s *Store) Put(ctx context.Context, kind, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO lookups (kind, key, value, created_at) VALUES (?, ?, ?, ?) "+
			"ON CONFLICT (kind, key) DO UPDATE SET value = excluded.value, created_at = excluded.created_at",
		kind, key, value, s.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("store cache entry: %w", err)
	}
	return nil
}

// Prune deletes entries older than the TTL and reports how many went. With
// no TTL configured it deletes nothing.
func (s *Store) Prune(ctx context.Context) (int64, error) {
	if s.ttl <= 0 {
		return 0, nil
	}
	cutoff := s.now().Add(-s.ttl).Unix()
	res, err := s.db.ExecContext(ctx, "DELETE FROM lookups WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune cache: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count pruned rows: %w", err)
	}
	if removed > 0 {
		s.logger.Debug("pruned expired cache entries", logging.Int("removed", int(removed)))
	}
	return removed, nil
}

// Clear deletes every entry and reports how many went.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM lookups")
	if err != nil {
		return 0, fmt.Errorf("clear cache: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count cleared rows: %w", err)
	}
	return removed, nil
}
