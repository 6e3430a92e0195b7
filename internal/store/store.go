// Package store keeps the indexable score fields of analyzed papers in
// SQLite, one row per paper, plus the per-assessment results of each run.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/pthm/contentlint/internal/analysis"

	_ "modernc.org/sqlite" // SQLite driver.
)

var (
	// ErrNotFound is returned when no row matches.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateID is returned when a run holds two papers with one id.
	ErrDuplicateID = errors.New("duplicate paper id")
)

// Store wraps SQLite access for analysis results.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Indexable is the stored score summary of one paper.
type Indexable struct {
	ObjectID                 string    `json:"object_id"`
	Language                 string    `json:"language"`
	ReadabilityScore         *int      `json:"readability_score"`
	PrimaryFocusKeyword      string    `json:"primary_focus_keyword,omitempty"`
	PrimaryFocusKeywordScore *int      `json:"primary_focus_keyword_score"`
	FleschReadingEase        *float64  `json:"flesch_reading_ease,omitempty"`
	RunID                    string    `json:"run_id"`
	AnalyzedAt               time.Time `json:"analyzed_at"`
}

// Run is one stored analysis run.
type Run struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Papers    int       `json:"papers"`
}

// StoredResult is one stored assessment result.
type StoredResult struct {
	ObjectID   string
	Assessment string
	Category   string
	Status     string
	Rating     string
	Score      int
	Message    string
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases alive and serializes writers.
	db.SetMaxOpenConns(1)

	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL,
			papers INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS indexables (
			object_id TEXT PRIMARY KEY,
			language TEXT NOT NULL,
			readability_score INTEGER,
			primary_focus_keyword TEXT NOT NULL DEFAULT '',
			primary_focus_keyword_score INTEGER,
			flesch_reading_ease REAL,
			run_id TEXT NOT NULL,
			analyzed_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS assessment_results (
			run_id TEXT NOT NULL,
			object_id TEXT NOT NULL,
			assessment TEXT NOT NULL,
			category TEXT NOT NULL,
			status TEXT NOT NULL,
			rating TEXT NOT NULL,
			score INTEGER NOT NULL,
			message TEXT NOT NULL,
			PRIMARY KEY (run_id, object_id, assessment)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);`,
		`CREATE INDEX IF NOT EXISTS idx_assessment_results_object ON assessment_results(object_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// objectID names a report; reports without an ID are numbered by position.
func objectID(rep *analysis.Report, i int) string {
	if rep.ID != "" {
		return rep.ID
	}
	return fmt.Sprintf("#%d", i+1)
}

// CheckIDs fails with ErrDuplicateID when ids repeat. An empty id stands
// for "#N", its position in the run, as SaveRun stores it.
func CheckIDs(ids []string) error {
	seen := make(map[string]int, len(ids))
	for i, id := range ids {
		if id == "" {
			id = fmt.Sprintf("#%d", i+1)
		}
		if j, ok := seen[id]; ok {
			return fmt.Errorf("%w %q at positions %d and %d", ErrDuplicateID, id, j+1, i+1)
		}
		seen[id] = i
	}
	return nil
}

// SaveRun stores reports under runID in one transaction. Indexable rows
// are replaced by the newest run; assessment results accumulate per run.
func (s *Store) SaveRun(ctx context.Context, runID string, reports []*analysis.Report) (err error) {
	if runID == "" {
		return errors.New("empty run id")
	}
	ids := make([]string, len(reports))
	for i, rep := range reports {
		ids[i] = rep.ID
	}
	if err := CheckIDs(ids); err != nil {
		return err
	}
	now := s.now().UTC()
	stamp := now.Format(time.RFC3339Nano)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, papers) VALUES (?, ?, ?)`,
		runID, stamp, len(reports)); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	upsert, err := tx.PrepareContext(ctx,
		`INSERT INTO indexables (object_id, language, readability_score, primary_focus_keyword, primary_focus_keyword_score, flesch_reading_ease, run_id, analyzed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(object_id) DO UPDATE SET
			language = excluded.language,
			readability_score = excluded.readability_score,
			primary_focus_keyword = excluded.primary_focus_keyword,
			primary_focus_keyword_score = excluded.primary_focus_keyword_score,
			flesch_reading_ease = excluded.flesch_reading_ease,
			run_id = excluded.run_id,
			analyzed_at = excluded.analyzed_at`)
	if err != nil {
		return err
	}
	defer func() { _ = upsert.Close() }()

	insertResult, err := tx.PrepareContext(ctx,
		`INSERT INTO assessment_results (run_id, object_id, assessment, category, status, rating, score, message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = insertResult.Close() }()

	for i, rep := range reports {
		id := objectID(rep, i)

		var readability, keywordScore sql.NullInt64
		if rep.HasReadabilityScore {
			readability = sql.NullInt64{Int64: int64(rep.ReadabilityScore), Valid: true}
		}
		if rep.Keyword != "" && rep.HasSEOScore {
			keywordScore = sql.NullInt64{Int64: int64(rep.SEOScore), Valid: true}
		}
		var flesch sql.NullFloat64
		if rep.FleschReadingEase != nil {
			flesch = sql.NullFloat64{Float64: *rep.FleschReadingEase, Valid: true}
		}

		if _, err = upsert.ExecContext(ctx, id, rep.Language, readability, rep.Keyword, keywordScore, flesch, runID, stamp); err != nil {
			return fmt.Errorf("upsert %s: %w", id, err)
		}

		for _, res := range rep.Results {
			if _, err = insertResult.ExecContext(ctx, runID, id, res.ID, string(res.Category), string(res.Status), string(res.Rating), res.Score, res.Message); err != nil {
				return fmt.Errorf("insert result %s/%s: %w", id, res.ID, err)
			}
		}
	}

	return tx.Commit()
}

// Indexable returns the stored row for a paper.
func (s *Store) Indexable(ctx context.Context, id string) (*Indexable, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT object_id, language, readability_score, primary_focus_keyword, primary_focus_keyword_score, flesch_reading_ease, run_id, analyzed_at
		 FROM indexables WHERE object_id = ?`, id)

	var (
		ix           Indexable
		readability  sql.NullInt64
		keywordScore sql.NullInt64
		flesch       sql.NullFloat64
		analyzedAt   string
	)
	err := row.Scan(&ix.ObjectID, &ix.Language, &readability, &ix.PrimaryFocusKeyword, &keywordScore, &flesch, &ix.RunID, &analyzedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("indexable %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if readability.Valid {
		v := int(readability.Int64)
		ix.ReadabilityScore = &v
	}
	if keywordScore.Valid {
		v := int(keywordScore.Int64)
		ix.PrimaryFocusKeywordScore = &v
	}
	if flesch.Valid {
		v := flesch.Float64
		ix.FleschReadingEase = &v
	}
	if ix.AnalyzedAt, err = time.Parse(time.RFC3339Nano, analyzedAt); err != nil {
		return nil, fmt.Errorf("indexable %q: analyzed_at: %w", id, err)
	}
	return &ix, nil
}

// Runs returns the newest runs first. limit <= 0 returns all of them.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, papers FROM runs ORDER BY started_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var (
			r       Run
			started string
		)
		if err := rows.Scan(&r.ID, &started, &r.Papers); err != nil {
			return nil, err
		}
		if r.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Results returns the assessment results stored for a run, ordered by
// paper and assessment.
func (s *Store) Results(ctx context.Context, runID string) ([]StoredResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT object_id, assessment, category, status, rating, score, message
		 FROM assessment_results WHERE run_id = ? ORDER BY object_id, assessment`, runID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []StoredResult
	for rows.Next() {
		var r StoredResult
		if err := rows.Scan(&r.ObjectID, &r.Assessment, &r.Category, &r.Status, &r.Rating, &r.Score, &r.Message); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
