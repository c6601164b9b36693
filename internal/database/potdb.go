package database

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/hashforge/hashforge/internal/model"
)

// PotDB stores previously cracked digests so repeated crack runs can
// skip targets that are already solved.
type PotDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures PotDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent
	// performance. Recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a PotDB in the specified directory.
// If CreateIfNotExists is true, the directory and database file are
// created as needed; otherwise a missing database is an error.
func Open(dbDir string, opts Options) (*PotDB, error) {
	dbPath := filepath.Join(dbDir, "hashforge.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; limit the pool accordingly.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	pdb := &PotDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := pdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return pdb, nil
}

// Close closes the database connection.
func (pdb *PotDB) Close() error {
	return pdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (pdb *PotDB) createTables() error {
	schema := `
	-- Cracked records store verified digest/plaintext pairs per algorithm
	CREATE TABLE IF NOT EXISTS cracked (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		algorithm TEXT NOT NULL,
		digest_hex TEXT NOT NULL,
		plaintext TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(algorithm, digest_hex)
	);

	CREATE INDEX IF NOT EXISTS idx_cracked_algorithm ON cracked(algorithm);
	CREATE INDEX IF NOT EXISTS idx_cracked_digest ON cracked(digest_hex);
	`

	_, err := pdb.db.ExecContext(context.Background(), schema)
	return err
}

// Lookup partitions digests into already-cracked results and digests
// still unknown to the pot. The returned slices both preserve the input
// order of their members.
func (pdb *PotDB) Lookup(ctx context.Context, algo model.Algorithm, digests [][]byte) ([]model.CrackResult, [][]byte, error) {
	stmt, err := pdb.db.PrepareContext(ctx,
		"SELECT plaintext FROM cracked WHERE algorithm = ? AND digest_hex = ?")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to prepare lookup: %w", err)
	}
	defer stmt.Close() //nolint:errcheck // read-only statement

	var found []model.CrackResult
	var remaining [][]byte

	for _, d := range digests {
		var plaintext string
		err := stmt.QueryRowContext(ctx, algo.String(), hex.EncodeToString(d)).Scan(&plaintext)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			remaining = append(remaining, d)
		case err != nil:
			return nil, nil, fmt.Errorf("failed to query pot database: %w", err)
		default:
			found = append(found, model.CrackResult{Digest: d, Plaintext: plaintext})
		}
	}

	return found, remaining, nil
}

// Record stores verified crack results. Recording a digest that is
// already present is a no-op: the first recovery wins, and re-running a
// crack never churns the pot.
func (pdb *PotDB) Record(ctx context.Context, algo model.Algorithm, results []model.CrackResult) error {
	if len(results) == 0 {
		return nil
	}

	tx, err := pdb.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR IGNORE INTO cracked (algorithm, digest_hex, plaintext) VALUES (?, ?, ?)")
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close() //nolint:errcheck // closed with the transaction

	for _, r := range results {
		if _, err := stmt.ExecContext(ctx, algo.String(), hex.EncodeToString(r.Digest), r.Plaintext); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Count returns the number of stored results across all algorithms.
func (pdb *PotDB) Count(ctx context.Context) (int64, error) {
	var n int64
	err := pdb.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cracked").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count pot entries: %w", err)
	}
	return n, nil
}

// Path returns the database file path.
func (pdb *PotDB) Path() string {
	return pdb.dbPath
}
