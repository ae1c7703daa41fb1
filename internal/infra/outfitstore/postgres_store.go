package outfitstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/styling-advisor/internal/domain/styling"
	"github.com/yanqian/styling-advisor/pkg/util"
)

// PostgresStore implements styling.OutfitStore using pgx. Tables come from cmd/migrate.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore constructs the store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Append establishes the layout on first use and rejects records with a different field set.
func (s *PostgresStore) Append(ctx context.Context, record styling.OutfitRecord) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin outfit tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		INSERT INTO outfit_schema (id, fields)
		VALUES (1, $1)
		ON CONFLICT (id) DO NOTHING
	`, record.Keys()); err != nil {
		return fmt.Errorf("establish outfit schema: %w", err)
	}

	var established []string
	if err := tx.QueryRow(ctx, `SELECT fields FROM outfit_schema WHERE id = 1 FOR SHARE`).Scan(&established); err != nil {
		return fmt.Errorf("load outfit schema: %w", err)
	}
	if !record.SameLayout(established) {
		return schemaMismatch(established, record.Keys())
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO outfit_records (id, created_at, field_values)
		VALUES ($1, $2, $3)
	`, uuid.New(), util.NowUTC(), record.Values()); err != nil {
		return fmt.Errorf("insert outfit record: %w", err)
	}
	return tx.Commit(ctx)
}

// List returns up to limit records, newest first.
func (s *PostgresStore) List(ctx context.Context, limit int) ([]styling.OutfitRecord, error) {
	var header []string
	err := s.pool.QueryRow(ctx, `SELECT fields FROM outfit_schema WHERE id = 1`).Scan(&header)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load outfit schema: %w", err)
	}

	var max any = limit
	if limit <= 0 {
		max = nil
	}
	rows, err := s.pool.Query(ctx, `
		SELECT field_values
		FROM outfit_records
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, max)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []styling.OutfitRecord
	for rows.Next() {
		var values []string
		if err := rows.Scan(&values); err != nil {
			return nil, err
		}
		out = append(out, toRecord(header, values))
	}
	return out, rows.Err()
}

var _ styling.OutfitStore = (*PostgresStore)(nil)
