package corpus

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore is a Store backed by a PostgreSQL table. The table is
// populated at deployment time; the store only reads.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to the database and verifies the connection.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// AllEntries returns all exemplar rows in insertion order.
func (s *PostgresStore) AllEntries(ctx context.Context) ([]ExemplarResume, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT content, tone FROM exemplar_resumes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query exemplar resumes: %w", err)
	}
	defer rows.Close()

	var entries []ExemplarResume
	for rows.Next() {
		var content, tone string
		if err := rows.Scan(&content, &tone); err != nil {
			return nil, fmt.Errorf("failed to scan exemplar row: %w", err)
		}
		parsed, err := ParseTone(tone)
		if err != nil {
			return nil, fmt.Errorf("invalid exemplar row: %w", err)
		}
		entries = append(entries, ExemplarResume{Content: content, Tone: parsed})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read exemplar rows: %w", err)
	}

	return entries, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
