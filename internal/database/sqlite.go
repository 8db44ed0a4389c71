package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// ":memory:" databases live per connection.
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err = migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return &DB{db}, nil
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS players (
		chat_id INTEGER PRIMARY KEY,
		wins INTEGER DEFAULT 0,
		losses INTEGER DEFAULT 0,
		pushes INTEGER DEFAULT 0,
		games INTEGER DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS rounds (
		round_id TEXT PRIMARY KEY,
		chat_id INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		player_score INTEGER NOT NULL,
		dealer_score INTEGER NOT NULL,
		player_cards TEXT NOT NULL,
		dealer_cards TEXT NOT NULL,
		finished_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_players_wins ON players(wins);
	CREATE INDEX IF NOT EXISTS idx_rounds_chat ON rounds(chat_id);
	`

	_, err := db.Exec(schema)
	return err
}
