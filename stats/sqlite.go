package stats

import (
	"context"
	"database/sql"
	"fmt"

	"fortio.org/log"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver
)

const schema = `
CREATE TABLE IF NOT EXISTS rounds (
	id TEXT PRIMARY KEY,
	played_at DATETIME NOT NULL,
	winner TEXT NOT NULL,
	blackjack INTEGER NOT NULL DEFAULT 0,
	player_value INTEGER NOT NULL,
	dealer_value INTEGER NOT NULL,
	player_cards TEXT NOT NULL,
	dealer_cards TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_rounds_played_at ON rounds(played_at);
`

// SQLiteStore persists every round, so totals span all sessions.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database %s: %w", path, err)
	}
	if _, err = db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate %s: %w", path, err)
	}
	log.LogVf("Opened stats database %s", path)
	return &SQLiteStore{db: db}, nil
}

// Record inserts the result, assigning it a new id if it has none.
func (s *SQLiteStore) Record(ctx context.Context, res Result) error {
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO rounds (id, played_at, winner, blackjack, player_value, dealer_value, player_cards, dealer_cards)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, res.ID, res.PlayedAt.UTC(), res.Winner.String(), res.Blackjack,
		res.PlayerValue, res.DealerValue, cardsText(res.PlayerCards), cardsText(res.DealerCards))
	if err != nil {
		return fmt.Errorf("failed to record round %s: %w", res.ID, err)
	}
	log.S(log.Debug, "Recorded round", log.Any("id", res.ID), log.Any("winner", res.Winner.String()))
	return nil
}

// Totals aggregates all the recorded rounds.
func (s *SQLiteStore) Totals(ctx context.Context) (Tally, error) {
	var t Tally
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
			COALESCE(SUM(winner = 'player'), 0),
			COALESCE(SUM(winner = 'dealer'), 0),
			COALESCE(SUM(winner = 'tie'), 0),
			COALESCE(SUM(blackjack), 0)
		FROM rounds
	`).Scan(&t.Rounds, &t.Wins, &t.Losses, &t.Ties, &t.Blackjacks)
	if err != nil {
		return Tally{}, fmt.Errorf("failed to read totals: %w", err)
	}
	return t, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
