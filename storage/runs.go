// Package storage persists run history in SQLite and player settings through
// gdata. The pure-Go modernc.org/sqlite driver keeps the build CGO-free.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultDBPath is where run history lives unless --db says otherwise.
const DefaultDBPath = "~/.local/share/slimehop/runs.db"

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one recorded play session.
type Run struct {
	ID        int64
	Level     string
	Seed      int64
	Outcome   string
	Steps     int
	ElapsedMs int64
	Coins     int
	Life      int
	Jumps     int
	Hits      int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level TEXT NOT NULL,
			seed INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			steps INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			life INTEGER NOT NULL DEFAULT 0,
			jumps INTEGER NOT NULL DEFAULT 0,
			hits INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(level);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(level, outcome, elapsed_ms);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (level, seed, outcome, steps, elapsed_ms, coins, life, jumps, hits)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Level, r.Seed, r.Outcome, r.Steps, r.ElapsedMs, r.Coins, r.Life, r.Jumps, r.Hits,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const runColumns = `id, level, seed, outcome, steps, elapsed_ms, coins, life, jumps, hits, created_at`

// RecentRuns returns the latest runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// BestRun returns the fastest won run of a level. The bool is false when
// the level has never been won.
func (s *Store) BestRun(level string) (Run, bool, error) {
	row := s.db.QueryRow(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE level = ? AND outcome = 'won'
		 ORDER BY elapsed_ms ASC, coins DESC
		 LIMIT 1`,
		level,
	)

	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, false, nil
	}
	if err != nil {
		return Run{}, false, err
	}
	return r, true, nil
}

// BestRuns returns the best won run of each named level. Levels nobody has
// won yet are left out.
func (s *Store) BestRuns(levels []string) (map[string]Run, error) {
	best := make(map[string]Run, len(levels))
	for _, level := range levels {
		r, ok, err := s.BestRun(level)
		if err != nil {
			return nil, err
		}
		if ok {
			best[level] = r
		}
	}
	return best, nil
}

// Result formats the time and coins of a run, e.g. "7.00s with 1 coins".
func (r Run) Result() string {
	return fmt.Sprintf("%.2fs with %d coins", float64(r.ElapsedMs)/1000, r.Coins)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var r Run
	var createdAt any
	err := sc.Scan(&r.ID, &r.Level, &r.Seed, &r.Outcome, &r.Steps, &r.ElapsedMs,
		&r.Coins, &r.Life, &r.Jumps, &r.Hits, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, err
	}
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}
	return r, nil
}
