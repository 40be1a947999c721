package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CreateSchema создаёт таблицы. Можно вызывать повторно - IF NOT EXISTS.
func CreateSchema(ctx context.Context, dbc *pgxpool.Pool) error {
	_, err := dbc.Exec(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS games (
    name TEXT PRIMARY KEY,
    votes INTEGER NOT NULL DEFAULT 0 CHECK (votes >= 0),
    voters TEXT[] NOT NULL DEFAULT '{}',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_games_created_at ON games(created_at);

CREATE TABLE IF NOT EXISTS wheel_settings (
    id SMALLINT PRIMARY KEY CHECK (id = 1),
    coefficient DOUBLE PRECISION NOT NULL CHECK (coefficient >= 0),
    zero_votes_weight DOUBLE PRECISION NOT NULL CHECK (zero_votes_weight >= 1),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`
