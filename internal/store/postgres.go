package store

import (
	"context"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/courtside/tennis-predictor/internal/models"
)

//go:embed schema_postgres.sql schema_clickhouse.sql
var schemas embed.FS

// PgPool defines the subset of the PostgreSQL pool the player store uses
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// OpenPostgres connects a pool and verifies it with a ping.
func OpenPostgres(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return pool, nil
}

// PlayerStore persists the players table.
type PlayerStore struct {
	db PgPool
}

func NewPlayerStore(db PgPool) *PlayerStore {
	return &PlayerStore{db: db}
}

// Migrate creates the players table and its indexes when missing.
func (s *PlayerStore) Migrate(ctx context.Context) error {
	sqlBytes, err := schemas.ReadFile("schema_postgres.sql")
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(ctx, string(sqlBytes)); err != nil {
		return fmt.Errorf("postgres migrate: %w", err)
	}
	return nil
}

// UpsertPlayers inserts players, skipping names already present.
// It returns the number of rows actually inserted.
func (s *PlayerStore) UpsertPlayers(ctx context.Context, players []models.Player) (int, error) {
	inserted := 0
	for _, p := range players {
		tag, err := s.db.Exec(ctx, `
			INSERT INTO players (name, first_name, last_name, tour, country, player_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (name) DO NOTHING
		`, p.Name, p.FirstName, p.LastName, p.Tour, p.Country, p.PlayerID)
		if err != nil {
			return inserted, fmt.Errorf("insert player %q: %w", p.Name, err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

// PlayerNames returns every player name in alphabetical order.
func (s *PlayerStore) PlayerNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT name FROM players ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query player names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan player name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// CountByTour returns the number of stored players per tour.
func (s *PlayerStore) CountByTour(ctx context.Context, tour string) (int, error) {
	var n int
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM players WHERE tour = $1`, tour).Scan(&n)
	return n, err
}
