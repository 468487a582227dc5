// Package archive stores finished games in SQLite so runs can be compared
// across lab sessions.
package archive

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store wraps a SQLite connection holding finished games. A nil store is
// a no-op, so callers never branch on whether archiving is on.
type Store struct {
	conn *sqlx.DB
}

// GameMeta describes one finished game.
type GameMeta struct {
	StartedAt    time.Time
	BoardLength  int
	Rounds       int
	Seed         int64
	Winner       string
	PredatorWins int
	PreyWins     int
}

// RoundRow is one round of a finished game.
type RoundRow struct {
	Round            int     `db:"round"`
	Predators        int     `db:"predators"`
	Prey             int     `db:"prey"`
	AvgPredatorLevel float64 `db:"avg_predator_level"`
	AvgPreyLevel     float64 `db:"avg_prey_level"`
	Winner           string  `db:"winner"`
}

// GameRecord is a stored game with its assigned id.
type GameRecord struct {
	ID           int64     `db:"id"`
	StartedAt    time.Time `db:"started_at"`
	BoardLength  int       `db:"board_length"`
	Rounds       int       `db:"rounds"`
	Seed         int64     `db:"seed"`
	Winner       string    `db:"winner"`
	PredatorWins int       `db:"predator_wins"`
	PreyWins     int       `db:"prey_wins"`
}

// Open opens or creates the archive at path and ensures the schema.
// Returns nil if path is empty (archiving disabled).
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, nil
	}
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate archive: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS games (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at TIMESTAMP NOT NULL,
		board_length INTEGER NOT NULL,
		rounds INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		winner TEXT NOT NULL,
		predator_wins INTEGER NOT NULL,
		prey_wins INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS rounds (
		game_id INTEGER NOT NULL REFERENCES games(id),
		round INTEGER NOT NULL,
		predators INTEGER NOT NULL,
		prey INTEGER NOT NULL,
		avg_predator_level REAL NOT NULL,
		avg_prey_level REAL NOT NULL,
		winner TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_rounds_game ON rounds(game_id);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// SaveGame inserts a finished game and its rounds in one transaction and
// returns the new game id. A nil store returns 0.
func (s *Store) SaveGame(meta GameMeta, rounds []RoundRow) (int64, error) {
	if s == nil {
		return 0, nil
	}

	tx, err := s.conn.Beginx()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO games
		(started_at, board_length, rounds, seed, winner, predator_wins, prey_wins)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		meta.StartedAt, meta.BoardLength, meta.Rounds, meta.Seed,
		meta.Winner, meta.PredatorWins, meta.PreyWins,
	)
	if err != nil {
		return 0, fmt.Errorf("insert game: %w", err)
	}
	gameID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.Preparex(`INSERT INTO rounds
		(game_id, round, predators, prey, avg_predator_level, avg_prey_level, winner)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, r := range rounds {
		_, err := stmt.Exec(gameID, r.Round, r.Predators, r.Prey,
			r.AvgPredatorLevel, r.AvgPreyLevel, r.Winner)
		if err != nil {
			return 0, fmt.Errorf("insert round %d: %w", r.Round, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return gameID, nil
}

// RecentGames returns the most recent n games, newest first.
func (s *Store) RecentGames(n int) ([]GameRecord, error) {
	if s == nil {
		return nil, nil
	}
	var games []GameRecord
	err := s.conn.Select(&games,
		"SELECT * FROM games ORDER BY id DESC LIMIT ?", n)
	if err != nil {
		return nil, fmt.Errorf("load games: %w", err)
	}
	return games, nil
}

// GameRounds returns the stored rounds of one game in round order.
func (s *Store) GameRounds(gameID int64) ([]RoundRow, error) {
	if s == nil {
		return nil, nil
	}
	var rounds []RoundRow
	err := s.conn.Select(&rounds,
		`SELECT round, predators, prey, avg_predator_level, avg_prey_level, winner
		 FROM rounds WHERE game_id = ? ORDER BY round`, gameID)
	if err != nil {
		return nil, fmt.Errorf("load rounds for game %d: %w", gameID, err)
	}
	return rounds, nil
}
