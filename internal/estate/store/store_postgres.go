package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mirath/internal/estate"
)

// PostgresStore persists estates and rosters in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Schema creates the tables this store needs. Integration tests and fresh
// deployments run it once at startup.
const Schema = `
CREATE TABLE IF NOT EXISTS estates (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	net_amount DOUBLE PRECISION NOT NULL,
	currency   TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS heirs (
	id           TEXT PRIMARY KEY,
	estate_id    TEXT NOT NULL REFERENCES estates(id) ON DELETE CASCADE,
	name         TEXT NOT NULL,
	relationship TEXT NOT NULL,
	gender       TEXT NOT NULL DEFAULT '',
	heir_group   TEXT NOT NULL DEFAULT '',
	portions     DOUBLE PRECISION NOT NULL DEFAULT 0,
	created_at   TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_heirs_estate ON heirs(estate_id);
`

// EnsureSchema applies the schema idempotently.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) SaveEstate(ctx context.Context, e *estate.Estate) error {
	query := `
		INSERT INTO estates (id, name, net_amount, currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, net_amount = EXCLUDED.net_amount,
		    currency = EXCLUDED.currency, updated_at = EXCLUDED.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query,
		e.ID, e.Name, e.NetAmount, e.Currency, e.CreatedAt, e.UpdatedAt); err != nil {
		return fmt.Errorf("save estate: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindEstate(ctx context.Context, id string) (*estate.Estate, error) {
	query := `
		SELECT id, name, net_amount, currency, created_at, updated_at
		FROM estates WHERE id = $1
	`
	var e estate.Estate
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.NetAmount, &e.Currency, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find estate: %w", err)
	}
	return &e, nil
}

func (s *PostgresStore) AddHeir(ctx context.Context, h *estate.HeirRecord) error {
	if _, err := s.FindEstate(ctx, h.EstateID); err != nil {
		return err
	}
	query := `
		INSERT INTO heirs (id, estate_id, name, relationship, gender, heir_group, portions, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := s.db.ExecContext(ctx, query,
		h.ID, h.EstateID, h.Name, h.Relationship, h.Gender, h.HeirGroup, h.Portions, h.CreatedAt); err != nil {
		return fmt.Errorf("add heir: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListHeirs(ctx context.Context, estateID string) ([]*estate.HeirRecord, error) {
	if _, err := s.FindEstate(ctx, estateID); err != nil {
		return nil, err
	}
	query := `
		SELECT id, estate_id, name, relationship, gender, heir_group, portions, created_at
		FROM heirs WHERE estate_id = $1
		ORDER BY created_at, id
	`
	rows, err := s.db.QueryContext(ctx, query, estateID)
	if err != nil {
		return nil, fmt.Errorf("list heirs: %w", err)
	}
	defer rows.Close()

	var out []*estate.HeirRecord
	for rows.Next() {
		var h estate.HeirRecord
		if err := rows.Scan(&h.ID, &h.EstateID, &h.Name, &h.Relationship,
			&h.Gender, &h.HeirGroup, &h.Portions, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan heir: %w", err)
		}
		out = append(out, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list heirs: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) RemoveHeir(ctx context.Context, estateID, heirID string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM heirs WHERE estate_id = $1 AND id = $2`, estateID, heirID)
	if err != nil {
		return fmt.Errorf("remove heir: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove heir: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
