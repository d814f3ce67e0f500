package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/sitemanifest/internal/model"
)

// FileName is the name of the history database inside its directory.
const FileName = "sitemanifest.db"

// timestampLayout is fixed width so stored timestamps sort as text.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrRunNotFound is returned when a run ID is not in the history.
var ErrRunNotFound = errors.New("run not found")

// HistoryDB records generation runs and the artifacts they wrote.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// RunSummary is a row of the run history without its artifacts.
type RunSummary struct {
	// ID is the run identifier.
	ID string

	// StartedAt is when the run began.
	StartedAt time.Time

	// OutputDir is where the run wrote its files.
	OutputDir string

	// ArtifactCount is the number of files the run wrote.
	ArtifactCount int
}

// Open opens or creates a HistoryDB in dbDir.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

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

	// mode=rw refuses to create a missing file.
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

	db.SetMaxOpenConns(1) // SQLite only supports one writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Path returns the database file path.
func (hdb *HistoryDB) Path() string {
	return hdb.dbPath
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (hdb *HistoryDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at TEXT NOT NULL,
		output_dir TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);

	CREATE TABLE IF NOT EXISTS artifacts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL REFERENCES runs(id),
		seq INTEGER NOT NULL,
		name TEXT NOT NULL,
		path TEXT NOT NULL,
		bytes INTEGER NOT NULL,
		digest TEXT NOT NULL,
		UNIQUE(run_id, seq)
	);

	CREATE INDEX IF NOT EXISTS idx_artifacts_run ON artifacts(run_id);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveRun stores a run and its artifacts in one transaction.
func (hdb *HistoryDB) SaveRun(ctx context.Context, run *model.Run) error {
	tx, err := hdb.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // no-op after commit
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, output_dir) VALUES (?, ?, ?)`,
		run.ID,
		run.StartedAt.UTC().Format(timestampLayout),
		run.OutputDir,
	)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}

	for i, a := range run.Artifacts {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO artifacts (run_id, seq, name, path, bytes, digest) VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID, i, a.Name, a.Path, a.Bytes, a.Digest,
		)
		if err != nil {
			return fmt.Errorf("failed to save artifact %s: %w", a.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs first.
// A limit of zero or less returns every run.
func (hdb *HistoryDB) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	query := `
	SELECT r.id, r.started_at, r.output_dir, COUNT(a.id)
	FROM runs r
	LEFT JOIN artifacts a ON a.run_id = r.id
	GROUP BY r.id
	ORDER BY r.started_at DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := hdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var s RunSummary
		var startedAt string
		if err := rows.Scan(&s.ID, &startedAt, &s.OutputDir, &s.ArtifactCount); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		s.StartedAt = parseTimestamp(startedAt)
		runs = append(runs, s)
	}

	return runs, rows.Err()
}

// GetRun loads a run with its artifacts.
func (hdb *HistoryDB) GetRun(ctx context.Context, runID string) (*model.Run, error) {
	var startedAt string
	run := &model.Run{ID: runID}

	err := hdb.db.QueryRowContext(ctx,
		`SELECT started_at, output_dir FROM runs WHERE id = ?`, runID,
	).Scan(&startedAt, &run.OutputDir)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	run.StartedAt = parseTimestamp(startedAt)

	artifacts, err := hdb.RunArtifacts(ctx, runID)
	if err != nil {
		return nil, err
	}
	run.Artifacts = artifacts

	return run, nil
}

// RunArtifacts returns the artifacts of a run in generation order.
func (hdb *HistoryDB) RunArtifacts(ctx context.Context, runID string) ([]model.Artifact, error) {
	rows, err := hdb.db.QueryContext(ctx, `
	SELECT name, path, bytes, digest FROM artifacts
	WHERE run_id = ?
	ORDER BY seq
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get artifacts: %w", err)
	}
	defer rows.Close()

	var artifacts []model.Artifact
	for rows.Next() {
		var a model.Artifact
		if err := rows.Scan(&a.Name, &a.Path, &a.Bytes, &a.Digest); err != nil {
			return nil, fmt.Errorf("failed to scan artifact: %w", err)
		}
		artifacts = append(artifacts, a)
	}

	return artifacts, rows.Err()
}

// LatestArtifacts returns, per file name, the artifact written by the most
// recent run that produced it.
func (hdb *HistoryDB) LatestArtifacts(ctx context.Context) (map[string]model.Artifact, error) {
	rows, err := hdb.db.QueryContext(ctx, `
	SELECT a.name, a.path, a.bytes, a.digest
	FROM artifacts a
	JOIN runs r ON r.id = a.run_id
	ORDER BY r.started_at ASC, a.seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest artifacts: %w", err)
	}
	defer rows.Close()

	latest := make(map[string]model.Artifact)
	for rows.Next() {
		var a model.Artifact
		if err := rows.Scan(&a.Name, &a.Path, &a.Bytes, &a.Digest); err != nil {
			return nil, fmt.Errorf("failed to scan artifact: %w", err)
		}
		// Later runs overwrite earlier ones.
		latest[a.Name] = a
	}

	return latest, rows.Err()
}

// timestampFormats contains the timestamp formats the runs table may hold.
var timestampFormats = []string{
	timestampLayout,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05", // SQLite default datetime format
}

// parseTimestamp parses a stored timestamp, returning zero time if no format matches.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
