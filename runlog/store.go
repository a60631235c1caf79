// Package runlog keeps a history of collision searches in a SQLite file.
// It satisfies collide.Recorder, so a Finder can write every run as it ends.
package runlog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/preimage/collide"
)

// ErrRunNotFound is returned by Get for an unknown run id.
var ErrRunNotFound = errors.New("runlog: run not found")

// Run is one stored search.
type Run struct {
	ID        string        `json:"id"`
	Key       string        `json:"key"`
	Strategy  string        `json:"strategy"`
	Mode      string        `json:"mode"`
	Alphabet  string        `json:"alphabet"`
	Target    uint32        `json:"target"`
	Candidate string        `json:"candidate,omitempty"`
	Found     bool          `json:"found"`
	Steps     int           `json:"steps"`
	Frontier  int           `json:"frontier"`
	StartedAt time.Time     `json:"started_at"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	Error     string        `json:"error,omitempty"`
}

// Store is a run history backed by database/sql.
type Store struct {
	db   *sql.DB
	path string
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	key        TEXT NOT NULL,
	strategy   TEXT NOT NULL,
	mode       TEXT NOT NULL,
	alphabet   TEXT NOT NULL,
	target     INTEGER NOT NULL,
	candidate  TEXT NOT NULL DEFAULT '',
	found      INTEGER NOT NULL DEFAULT 0,
	steps      INTEGER NOT NULL,
	frontier   INTEGER NOT NULL DEFAULT 0,
	started_at TEXT NOT NULL,
	elapsed_ns INTEGER NOT NULL,
	error      TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
`

// Open creates or opens the history database at path, creating parent
// directories as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("runlog: create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("runlog: open %s: %w", path, err)
	}
	// one writer; sqlite serializes anyway
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("runlog: initialize schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

// Record stores r. Recording the same run id twice replaces the first row.
func (s *Store) Record(ctx context.Context, r collide.Report) error {
	errText := ""
	if r.Err != nil {
		errText = r.Err.Error()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO runs
			(id, key, strategy, mode, alphabet, target, candidate, found, steps, frontier, started_at, elapsed_ns, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Key, r.Strategy.String(), r.Mode.String(), r.Alphabet,
		int64(r.Target), r.Result.Candidate, boolToInt(r.Result.Found),
		r.Result.Steps, r.Result.Frontier,
		r.Started.UTC().Format(timeLayout), r.Elapsed.Nanoseconds(), errText,
	)
	if err != nil {
		return fmt.Errorf("runlog: insert run %s: %w", r.ID, err)
	}

	return nil
}

// List returns the most recent runs first. limit <= 0 returns all of them.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	q := `SELECT ` + columns + ` FROM runs ORDER BY started_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("runlog: list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("runlog: list runs: %w", err)
	}

	return runs, nil
}

// Get returns the run with the given id.
func (s *Store) Get(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+columns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}

	return run, err
}

// timeLayout is fixed width so started_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const columns = `id, key, strategy, mode, alphabet, target, candidate, found, steps, frontier, started_at, elapsed_ns, error`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		run     Run
		target  int64
		found   int
		started string
		elapsed int64
	)
	err := sc.Scan(&run.ID, &run.Key, &run.Strategy, &run.Mode, &run.Alphabet,
		&target, &run.Candidate, &found, &run.Steps, &run.Frontier,
		&started, &elapsed, &run.Error)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, err
	}
	if err != nil {
		return Run{}, fmt.Errorf("runlog: scan run: %w", err)
	}

	run.Target = uint32(target)
	run.Found = found != 0
	run.Elapsed = time.Duration(elapsed)
	if run.StartedAt, err = time.Parse(timeLayout, started); err != nil {
		return Run{}, fmt.Errorf("runlog: run %s: started_at %q: %w", run.ID, started, err)
	}

	return run, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
