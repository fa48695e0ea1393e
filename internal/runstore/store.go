package runstore

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"slugline/internal/breakdown"
	"slugline/internal/textutil"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is recorded at creation. The database is rebuilt on every
// daemon start, so bumping it needs no migration path.
const schemaVersion = 1

// Store holds the run index.
type Store struct {
	db *sql.DB
}

// Open creates the in-memory database and applies the schema.
func Open(ctx context.Context) (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// Every new connection to :memory: is a separate empty database, so
	// the pool must never grow past one.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply pragma: %w", err)
	}

	store := &Store{db: db}
	if err := store.createSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping verifies the database is still reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("run store not open")
	}
	return s.db.PingContext(ctx)
}

// IndexBreakdowns writes one job's scene records. Re-indexing the same
// job replaces its earlier rows.
func (s *Store) IndexBreakdowns(ctx context.Context, jobID string, records []breakdown.Breakdown) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin index tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Child rows cascade.
	if _, err := tx.ExecContext(ctx, "DELETE FROM scenes WHERE job_id = ?", jobID); err != nil {
		return fmt.Errorf("clear job %s: %w", jobID, err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, record := range records {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO scenes (
                job_id, scene_number, placement, time_of_day, location,
                scene_type, synopsis, confidence, is_continuation,
                previous_scene, indexed_at
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			jobID,
			record.SceneNumber,
			string(record.Placement),
			record.TimeOfDay,
			record.Location,
			string(record.SceneType),
			record.Synopsis,
			record.Confidence,
			record.IsContinuation,
			record.PreviousScene,
			now,
		); err != nil {
			return fmt.Errorf("insert scene %d: %w", record.SceneNumber, err)
		}

		for _, name := range record.Cast {
			if _, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO cast_members (job_id, scene_number, name, normalized)
                 VALUES (?, ?, ?, ?)`,
				jobID, record.SceneNumber, name, textutil.Normalize(name),
			); err != nil {
				return fmt.Errorf("insert cast member %q: %w", name, err)
			}
		}

		if err := insertElements(ctx, tx, jobID, record.SceneNumber, breakdown.CategoryProps, record.Props); err != nil {
			return err
		}
		if err := insertElements(ctx, tx, jobID, record.SceneNumber, breakdown.CategorySetDressing, record.SetDressing); err != nil {
			return err
		}
		if err := insertElements(ctx, tx, jobID, record.SceneNumber, breakdown.CategoryVehicles, record.Vehicles); err != nil {
			return err
		}

		for _, flag := range record.LegalFlags {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO legal_flags (job_id, scene_number, kind, entity, detail, severity)
                 VALUES (?, ?, ?, ?, ?, ?)`,
				jobID, record.SceneNumber, flag.Kind, flag.Entity, flag.Detail, string(flag.Severity),
			); err != nil {
				return fmt.Errorf("insert legal flag for %q: %w", flag.Entity, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit index tx: %w", err)
	}
	return nil
}

func insertElements(ctx context.Context, tx *sql.Tx, jobID string, scene int, category breakdown.Category, items []string) error {
	for _, item := range items {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO elements (job_id, scene_number, category, item) VALUES (?, ?, ?, ?)`,
			jobID, scene, string(category), item,
		); err != nil {
			return fmt.Errorf("insert %s %q: %w", category, item, err)
		}
	}
	return nil
}

// SceneRef points a query result back at an indexed scene.
type SceneRef struct {
	JobID       string
	SceneNumber int
	Location    string
	TimeOfDay   string
	Synopsis    string
}

// ScenesByCast lists scenes featuring the named cast member across all
// indexed jobs. Matching tolerates case and Arabic spelling variants.
func (s *Store) ScenesByCast(ctx context.Context, name string) ([]SceneRef, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT c.job_id, c.scene_number, sc.location, sc.time_of_day, sc.synopsis
         FROM cast_members c
         JOIN scenes sc ON sc.job_id = c.job_id AND sc.scene_number = c.scene_number
         WHERE c.normalized = ?
         ORDER BY c.job_id, c.scene_number`,
		textutil.Normalize(name))
	if err != nil {
		return nil, fmt.Errorf("query scenes by cast: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var refs []SceneRef
	for rows.Next() {
		var ref SceneRef
		if err := rows.Scan(&ref.JobID, &ref.SceneNumber, &ref.Location, &ref.TimeOfDay, &ref.Synopsis); err != nil {
			return nil, fmt.Errorf("scan scene ref: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scene refs: %w", err)
	}
	return refs, nil
}

// ElementCount aggregates one tracked item within a category.
type ElementCount struct {
	Category breakdown.Category
	Item     string
	Scenes   int
}

// ElementSummary counts, per category, how many scenes use each item.
// Categories come back in vocabulary order, busiest items first.
func (s *Store) ElementSummary(ctx context.Context) ([]ElementCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category, item, COUNT(DISTINCT job_id || ':' || scene_number) AS scenes
         FROM elements
         GROUP BY category, item
         ORDER BY category, scenes DESC, item`)
	if err != nil {
		return nil, fmt.Errorf("query element summary: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var counts []ElementCount
	for rows.Next() {
		var (
			raw   string
			count ElementCount
		)
		if err := rows.Scan(&raw, &count.Item, &count.Scenes); err != nil {
			return nil, fmt.Errorf("scan element count: %w", err)
		}
		count.Category = breakdown.Category(raw)
		counts = append(counts, count)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate element counts: %w", err)
	}
	return counts, nil
}

// Stats summarizes everything indexed so far.
type Stats struct {
	Jobs          int
	Scenes        int
	CastMembers   int
	Elements      map[breakdown.Category]int
	LegalFlags    int
	AvgConfidence float64
}

// Stats aggregates scene, cast, element, and flag counts across jobs.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{Elements: make(map[breakdown.Category]int)}

	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT job_id), COUNT(1), COALESCE(AVG(confidence), 0) FROM scenes`)
	if err := row.Scan(&stats.Jobs, &stats.Scenes, &stats.AvgConfidence); err != nil {
		return Stats{}, fmt.Errorf("scan scene stats: %w", err)
	}

	row = s.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT normalized) FROM cast_members`)
	if err := row.Scan(&stats.CastMembers); err != nil {
		return Stats{}, fmt.Errorf("scan cast stats: %w", err)
	}

	row = s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM legal_flags`)
	if err := row.Scan(&stats.LegalFlags); err != nil {
		return Stats{}, fmt.Errorf("scan legal stats: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT category, COUNT(DISTINCT item) FROM elements GROUP BY category`)
	if err != nil {
		return Stats{}, fmt.Errorf("query element stats: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var (
			raw   string
			count int
		)
		if err := rows.Scan(&raw, &count); err != nil {
			return Stats{}, fmt.Errorf("scan element stats: %w", err)
		}
		stats.Elements[breakdown.Category(raw)] = count
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("iterate element stats: %w", err)
	}
	return stats, nil
}
