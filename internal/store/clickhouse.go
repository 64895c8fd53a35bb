package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/courtside/tennis-predictor/internal/models"
)

// OpenClickHouse connects using a clickhouse:// DSN and verifies it with a ping.
func OpenClickHouse(ctx context.Context, dsn string) (driver.Conn, error) {
	opts, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("clickhouse dsn: %w", err)
	}
	conn, err := clickhouse.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("clickhouse connect: %w", err)
	}
	if err := conn.Ping(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("clickhouse ping: %w", err)
	}
	return conn, nil
}

// MatchStore reads and appends match history in ClickHouse.
type MatchStore struct {
	ch driver.Conn
}

func NewMatchStore(ch driver.Conn) *MatchStore {
	return &MatchStore{ch: ch}
}

// Migrate executes the schema one statement at a time; the driver rejects multi-statement DDL.
func (s *MatchStore) Migrate(ctx context.Context) error {
	content, err := schemas.ReadFile("schema_clickhouse.sql")
	if err != nil {
		return err
	}
	for _, stmt := range strings.Split(string(content), ";") {
		trimmed := strings.TrimSpace(stmt)
		if trimmed == "" {
			continue
		}
		if err := s.ch.Exec(ctx, trimmed); err != nil {
			return fmt.Errorf("clickhouse migrate: %w", err)
		}
	}
	return nil
}

// Matches returns the full history in chronological order.
func (s *MatchStore) Matches(ctx context.Context) ([]models.Match, error) {
	rows, err := s.ch.Query(ctx, `
		SELECT date, tour, tournament, level, surface, best_of, player_a, player_b, round, y
		FROM tennis.matches
		ORDER BY date, inserted_at
	`)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()

	var out []models.Match
	for rows.Next() {
		var (
			m      models.Match
			date   time.Time
			bestOf uint8
			y      uint8
		)
		if err := rows.Scan(&date, &m.Tour, &m.Tournament, &m.Level, &m.Surface, &bestOf, &m.PlayerA, &m.PlayerB, &m.Round, &y); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		m.Date = date.UTC()
		m.BestOf = int(bestOf)
		m.Y = int(y)
		out = append(out, m)
	}
	return out, rows.Err()
}

// InsertMatches appends matches in a single batch.
func (s *MatchStore) InsertMatches(ctx context.Context, matches []models.Match) error {
	if len(matches) == 0 {
		return nil
	}

	batch, err := s.ch.PrepareBatch(ctx, `
		INSERT INTO tennis.matches (
			date, tour, tournament, level, surface, best_of, player_a, player_b, round, y
		)
	`)
	if err != nil {
		return err
	}

	for _, m := range matches {
		if err := batch.Append(
			m.Date,
			m.Tour,
			m.Tournament,
			m.Level,
			m.Surface,
			uint8(m.BestOf),
			m.PlayerA,
			m.PlayerB,
			m.Round,
			uint8(m.Y),
		); err != nil {
			return fmt.Errorf("append match %s vs %s: %w", m.PlayerA, m.PlayerB, err)
		}
	}
	return batch.Send()
}

// Count returns the number of stored matches.
func (s *MatchStore) Count(ctx context.Context) (uint64, error) {
	var n uint64
	err := s.ch.QueryRow(ctx, "SELECT count() FROM tennis.matches").Scan(&n)
	return n, err
}
