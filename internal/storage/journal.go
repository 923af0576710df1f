package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS batches (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	submitted_at INTEGER NOT NULL,
	trader       TEXT    NOT NULL,
	legs         INTEGER NOT NULL,
	calls        INTEGER NOT NULL,
	status       TEXT    NOT NULL,
	err_code     INTEGER NOT NULL DEFAULT 0,
	err_msg      TEXT    NOT NULL DEFAULT '',
	signature    TEXT    NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_batches_submitted ON batches(submitted_at);
`

// BatchRecord is one journal row: what was submitted, what happened.
// The planner reads these back (via the parquet export) to tune sizing.
type BatchRecord struct {
	ID          int64
	SubmittedAt time.Time
	Trader      string
	Legs        int
	Calls       int
	Status      string // "ok" or "failed"
	ErrCode     uint32
	ErrMsg      string
	Signature   string
}

type Journal struct {
	db *sql.DB
}

func OpenJournal(dbPath string) (*Journal, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create journal dir: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal db: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to initialise schema: %w", err)
	}

	return &Journal{db: db}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

func (j *Journal) Record(ctx context.Context, rec BatchRecord) (int64, error) {
	res, err := j.db.ExecContext(ctx,
		`INSERT INTO batches (submitted_at, trader, legs, calls, status, err_code, err_msg, signature)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SubmittedAt.Unix(), rec.Trader, rec.Legs, rec.Calls,
		rec.Status, rec.ErrCode, rec.ErrMsg, rec.Signature,
	)
	if err != nil {
		return 0, fmt.Errorf("record batch: %w", err)
	}
	return res.LastInsertId()
}

// Recent returns the newest records first, capped at limit.
func (j *Journal) Recent(ctx context.Context, limit int) ([]BatchRecord, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT id, submitted_at, trader, legs, calls, status, err_code, err_msg, signature
		 FROM batches ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BatchRecord
	for rows.Next() {
		var rec BatchRecord
		var ts int64
		if err := rows.Scan(&rec.ID, &ts, &rec.Trader, &rec.Legs, &rec.Calls,
			&rec.Status, &rec.ErrCode, &rec.ErrMsg, &rec.Signature); err != nil {
			return nil, err
		}
		rec.SubmittedAt = time.Unix(ts, 0).UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}

// stats for monitoring journal growth
func (j *Journal) Stats(ctx context.Context) (map[string]int64, error) {
	stats := make(map[string]int64)

	var count int64
	if err := j.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM batches").Scan(&count); err != nil {
		return nil, err
	}
	stats["total_batches"] = count

	if err := j.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM batches WHERE status = 'ok'").Scan(&count); err != nil {
		return nil, err
	}
	stats["ok_batches"] = count

	return stats, nil
}
