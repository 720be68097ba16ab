// ============================================================================
// koala - Compiler Front End
// ============================================================================
//
// Package:     buildcache
// Description: SQLite-backed store of generated artifacts keyed by source hash
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package buildcache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/koala/foundation/core/error"
	mdwlog "github.com/msto63/koala/foundation/core/log"
	"github.com/msto63/koala/foundation/koala"
	"github.com/msto63/koala/foundation/koala/codegen"
)

var _ koala.ArtifactCache = (*Store)(nil)

// Config holds configuration for the artifact store
type Config struct {
	Path   string
	Logger *mdwlog.Logger
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Path: filepath.Join(".koala", "cache.db"),
	}
}

// Stats summarizes the store contents
type Stats struct {
	Entries int64     `json:"entries"`
	IRBytes int64     `json:"ir_bytes"`
	Oldest  time.Time `json:"oldest,omitempty"`
	Newest  time.Time `json:"newest,omitempty"`
}

// Store implements koala.ArtifactCache using SQLite
type Store struct {
	db     *sql.DB
	mu     sync.RWMutex
	path   string
	logger *mdwlog.Logger
}

// Open opens or creates the store at cfg.Path
func Open(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		cfg.Path = DefaultConfig().Path
	}
	if cfg.Logger == nil {
		cfg.Logger = mdwlog.GetDefault()
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, cacheError(err, "create cache directory", "buildcache.Open").WithDetail("path", cfg.Path)
	}

	// Open database with WAL mode
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, cacheError(err, "open cache database", "buildcache.Open").WithDetail("path", cfg.Path)
	}

	store := &Store{
		db:     db,
		path:   cfg.Path,
		logger: cfg.Logger.WithField("component", "koala-buildcache"),
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, cacheError(err, "initialize cache schema", "buildcache.Open").WithDetail("path", cfg.Path)
	}

	store.logger.Debug("Artifact cache opened", mdwlog.Fields{"path": cfg.Path})
	return store, nil
}

// initSchema creates the necessary tables
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS artifacts (
		key TEXT PRIMARY KEY,
		module_name TEXT NOT NULL,
		backend TEXT NOT NULL,
		ir TEXT NOT NULL,
		functions TEXT NOT NULL DEFAULT '[]',
		compilation_id TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_artifacts_created ON artifacts(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.path
}

// Get retrieves an artifact by key. A missing key is not an error.
func (s *Store) Get(ctx context.Context, key string) (*codegen.Artifact, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT module_name, backend, ir, functions
		FROM artifacts WHERE key = ?
	`, key)

	var artifact codegen.Artifact
	var functionsJSON string

	err := row.Scan(&artifact.ModuleName, &artifact.Backend, &artifact.IR, &functionsJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, cacheError(err, "read artifact", "buildcache.Get")
	}

	if err := json.Unmarshal([]byte(functionsJSON), &artifact.Functions); err != nil {
		return nil, false, cacheError(err, "decode function list", "buildcache.Get").WithDetail("key", key)
	}

	return &artifact, true, nil
}

// Put stores an artifact, replacing any previous entry for key
func (s *Store) Put(ctx context.Context, key, compilationID string, artifact *codegen.Artifact) error {
	if artifact == nil {
		return mdwerror.New("artifact is required").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("buildcache.Put")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	functions := artifact.Functions
	if functions == nil {
		functions = []string{}
	}
	functionsJSON, err := json.Marshal(functions)
	if err != nil {
		return cacheError(err, "encode function list", "buildcache.Put")
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO artifacts (key, module_name, backend, ir, functions, compilation_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, key, artifact.ModuleName, artifact.Backend, artifact.IR, string(functionsJSON), compilationID, time.Now().UnixNano())
	if err != nil {
		return cacheError(err, "write artifact", "buildcache.Put").WithDetail("key", key)
	}

	return nil
}

// CompilationID returns the ID of the compilation that produced key
func (s *Store) CompilationID(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var id string
	err := s.db.QueryRowContext(ctx, `SELECT compilation_id FROM artifacts WHERE key = ?`, key).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, cacheError(err, "read compilation id", "buildcache.CompilationID")
	}
	return id, true, nil
}

// Purge deletes entries older than olderThan and returns how many were
// removed. A zero duration removes everything.
func (s *Store) Purge(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan).UnixNano()
	res, err := s.db.ExecContext(ctx, `DELETE FROM artifacts WHERE created_at <= ?`, cutoff)
	if err != nil {
		return 0, cacheError(err, "purge artifacts", "buildcache.Purge")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, cacheError(err, "count purged artifacts", "buildcache.Purge")
	}

	s.logger.Debug("Artifact cache purged", mdwlog.Fields{
		"removed":    n,
		"older_than": olderThan.String(),
	})
	return n, nil
}

// Stats returns store statistics
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var entries int64
	var irBytes, oldest, newest sql.NullInt64

	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), SUM(LENGTH(ir)), MIN(created_at), MAX(created_at) FROM artifacts
	`).Scan(&entries, &irBytes, &oldest, &newest)
	if err != nil {
		return nil, cacheError(err, "read statistics", "buildcache.Stats")
	}

	stats := &Stats{Entries: entries}
	if irBytes.Valid {
		stats.IRBytes = irBytes.Int64
	}
	if oldest.Valid {
		stats.Oldest = time.Unix(0, oldest.Int64)
	}
	if newest.Valid {
		stats.Newest = time.Unix(0, newest.Int64)
	}
	return stats, nil
}

// Close closes the database
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

func cacheError(err error, message, operation string) *mdwerror.Error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeCacheError).
		WithOperation(operation)
}
