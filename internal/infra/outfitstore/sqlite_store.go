package outfitstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/yanqian/styling-advisor/internal/domain/styling"
	"github.com/yanqian/styling-advisor/pkg/util"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS outfit_schema (
	id     INTEGER PRIMARY KEY CHECK (id = 1),
	fields TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS outfit_records (
	id           TEXT PRIMARY KEY,
	seq          INTEGER NOT NULL,
	created_at   TEXT NOT NULL,
	field_values TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS outfit_records_seq_idx ON outfit_records (seq);
`

// SQLiteStore implements styling.OutfitStore on a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (or creates) the database at path and ensures its tables.
func OpenSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create sqlite schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Append implements styling.OutfitStore.
func (s *SQLiteStore) Append(ctx context.Context, record styling.OutfitRecord) error {
	keys, err := json.Marshal(record.Keys())
	if err != nil {
		return err
	}
	values, err := json.Marshal(record.Values())
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin outfit tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO outfit_schema (id, fields) VALUES (1, ?)`, string(keys)); err != nil {
		return fmt.Errorf("establish outfit schema: %w", err)
	}
	established, err := loadSQLiteHeader(ctx, tx)
	if err != nil {
		return err
	}
	if !record.SameLayout(established) {
		return schemaMismatch(established, record.Keys())
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO outfit_records (id, seq, created_at, field_values)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM outfit_records), ?, ?)
	`, uuid.NewString(), util.NowUTC().Format("2006-01-02T15:04:05.000000Z07:00"), string(values)); err != nil {
		return fmt.Errorf("insert outfit record: %w", err)
	}
	return tx.Commit()
}

// List returns up to limit records, newest first.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]styling.OutfitRecord, error) {
	header, err := loadSQLiteHeader(ctx, s.db)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `SELECT field_values FROM outfit_records ORDER BY seq DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []styling.OutfitRecord
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var values []string
		if err := json.Unmarshal([]byte(raw), &values); err != nil {
			return nil, fmt.Errorf("decode outfit row: %w", err)
		}
		out = append(out, toRecord(header, values))
	}
	return out, rows.Err()
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func loadSQLiteHeader(ctx context.Context, q queryRower) ([]string, error) {
	var raw string
	if err := q.QueryRowContext(ctx, `SELECT fields FROM outfit_schema WHERE id = 1`).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("load outfit schema: %w", err)
	}
	var header []string
	if err := json.Unmarshal([]byte(raw), &header); err != nil {
		return nil, fmt.Errorf("decode outfit schema: %w", err)
	}
	return header, nil
}

var _ styling.OutfitStore = (*SQLiteStore)(nil)
