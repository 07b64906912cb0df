// Package diskcache is the on-disk resource cache: payload files under the
// cache directory indexed by a SQLite database, evicted least recently used
// first to stay under a byte quota.
package diskcache

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/logging"
)

// ErrNotConfigured is returned before Configure succeeded.
var ErrNotConfigured = errors.New("disk cache not configured")

const (
	indexName = "index.db"
	blobDir   = "blobs"
	filePerm  = 0o600
)

// Store implements port.DiskCache.
type Store struct {
	mu    sync.Mutex
	db    *sql.DB
	dir   string
	quota uint64
	now   func() time.Time
}

var _ port.DiskCache = (*Store)(nil)

// New returns an unconfigured store.
func New() *Store {
	return &Store{now: time.Now}
}

// Open returns a store configured on dir.
func Open(ctx context.Context, dir string) (*Store, error) {
	s := New()
	if err := s.Configure(ctx, dir); err != nil {
		return nil, err
	}
	return s, nil
}

// Configure opens the index under dir. Reconfiguring with the same dir is a
// no-op; a different dir closes the previous index.
func (s *Store) Configure(ctx context.Context, dir string) error {
	if dir == "" {
		return fmt.Errorf("disk cache directory cannot be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil && s.dir == dir {
		return nil
	}
	if err := os.MkdirAll(filepath.Join(dir, blobDir), dirPerm); err != nil {
		return fmt.Errorf("create blob directory: %w", err)
	}
	db, err := openIndex(ctx, filepath.Join(dir, indexName))
	if err != nil {
		return err
	}
	if s.db != nil {
		_ = s.db.Close()
	}
	s.db, s.dir = db, dir
	logging.FromContext(ctx).Info().Str("dir", dir).Msg("disk cache configured")
	return nil
}

// Dir returns the configured directory.
func (s *Store) Dir() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dir
}

// Quota returns the byte quota.
func (s *Store) Quota() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quota
}

// SetQuota sets the byte quota and evicts down to it.
func (s *Store) SetQuota(ctx context.Context, bytes uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quota = bytes
	if s.db == nil {
		return nil
	}
	_, err := s.evictLocked(ctx)
	return err
}

func blobName(key string) string {
	sum := blake2b.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// Put stores data under key, then evicts to the quota. Entries larger than
// the quota are not stored.
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return ErrNotConfigured
	}
	size := uint64(len(data))
	if size > s.quota {
		return nil
	}

	name := blobName(key)
	if err := os.WriteFile(filepath.Join(s.dir, blobDir, name), data, filePerm); err != nil {
		return fmt.Errorf("write blob: %w", err)
	}
	now := s.now().UnixNano()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (key, blob, size, created_at, last_access)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			blob = excluded.blob,
			size = excluded.size,
			last_access = excluded.last_access`,
		key, name, int64(size), now, now)
	if err != nil {
		return fmt.Errorf("index entry: %w", err)
	}
	_, err = s.evictLocked(ctx)
	return err
}

// Get returns the payload for key and refreshes its access time.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, false, ErrNotConfigured
	}

	var name string
	err := s.db.QueryRowContext(ctx, `SELECT blob FROM entries WHERE key = ?`, key).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("lookup entry: %w", err)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, blobDir, name))
	if errors.Is(err, os.ErrNotExist) {
		_, _ = s.db.ExecContext(ctx, `DELETE FROM entries WHERE key = ?`, key)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read blob: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `UPDATE entries SET last_access = ? WHERE key = ?`, s.now().UnixNano(), key); err != nil {
		return nil, false, fmt.Errorf("touch entry: %w", err)
	}
	return data, true, nil
}

// Usage returns the indexed payload bytes.
func (s *Store) Usage(ctx context.Context) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return 0, ErrNotConfigured
	}
	return s.usageLocked(ctx)
}

func (s *Store) usageLocked(ctx context.Context) (uint64, error) {
	var total sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT SUM(size) FROM entries`).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum usage: %w", err)
	}
	return uint64(total.Int64), nil
}

// Evict removes least recently used entries until usage fits the quota and
// returns how many it removed.
func (s *Store) Evict(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return 0, ErrNotConfigured
	}
	return s.evictLocked(ctx)
}

func (s *Store) evictLocked(ctx context.Context) (int, error) {
	usage, err := s.usageLocked(ctx)
	if err != nil {
		return 0, err
	}
	if usage <= s.quota {
		return 0, nil
	}

	rows, err := s.db.QueryContext(ctx, `SELECT key, blob, size FROM entries ORDER BY last_access ASC`)
	if err != nil {
		return 0, fmt.Errorf("list entries: %w", err)
	}
	type victim struct {
		key, blob string
	}
	var victims []victim
	for rows.Next() && usage > s.quota {
		var (
			v    victim
			size int64
		)
		if err := rows.Scan(&v.key, &v.blob, &size); err != nil {
			_ = rows.Close()
			return 0, fmt.Errorf("scan entry: %w", err)
		}
		victims = append(victims, v)
		usage -= uint64(size)
	}
	if err := rows.Close(); err != nil {
		return 0, err
	}

	for _, v := range victims {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE key = ?`, v.key); err != nil {
			return 0, fmt.Errorf("delete entry: %w", err)
		}
		if err := os.Remove(filepath.Join(s.dir, blobDir, v.blob)); err != nil && !errors.Is(err, os.ErrNotExist) {
			logging.FromContext(ctx).Warn().Err(err).Str("blob", v.blob).Msg("remove blob failed")
		}
	}
	if len(victims) > 0 {
		logging.FromContext(ctx).Debug().Int("evicted", len(victims)).Uint64("quota", s.quota).Msg("disk cache evicted")
	}
	return len(victims), nil
}

// Close closes the index.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
