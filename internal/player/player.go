package player

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"singlejack/internal/game"
)

var ErrRoundNotResolved = errors.New("round is not resolved")

type Player struct {
	ChatID int64
	Wins   int
	Losses int
	Pushes int
	Games  int
}

type Stats struct {
	ChatID  int64
	Wins    int
	Games   int
	WinRate float64
}

type Repository interface {
	GetOrCreate(chatID int64) (*Player, error)
	RecordRound(chatID int64, round *game.Round) (*Player, error)
	GetTopByWins(limit int) ([]Stats, error)
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetOrCreate(chatID int64) (*Player, error) {
	return getOrCreate(r.db, chatID)
}

type querier interface {
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
}

func getOrCreate(q querier, chatID int64) (*Player, error) {
	player := &Player{ChatID: chatID}

	err := q.QueryRow(`
		SELECT wins, losses, pushes, games
		FROM players WHERE chat_id = ?
	`, chatID).Scan(&player.Wins, &player.Losses, &player.Pushes, &player.Games)

	if errors.Is(err, sql.ErrNoRows) {
		if _, err = q.Exec(`INSERT INTO players (chat_id) VALUES (?)`, chatID); err != nil {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}
		return player, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

// RecordRound stores a resolved round in the history and bumps the player's
// counters. Recording the same round twice is a no-op.
func (r *SQLiteRepository) RecordRound(chatID int64, round *game.Round) (*Player, error) {
	outcome, ok := round.Outcome()
	if !ok {
		return nil, fmt.Errorf("record round %s: %w", round.ID, ErrRoundNotResolved)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	player, err := getOrCreate(tx, chatID)
	if err != nil {
		return nil, err
	}

	res, err := tx.Exec(`
		INSERT OR IGNORE INTO rounds
			(round_id, chat_id, outcome, player_score, dealer_score, player_cards, dealer_cards)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, round.ID, chatID, outcome.String(), round.PlayerScore(), round.DealerScore(),
		joinCards(round.PlayerHand()), joinCards(round.DealerHand()))
	if err != nil {
		return nil, fmt.Errorf("failed to insert round: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to insert round: %w", err)
	}
	if n == 0 {
		return player, tx.Commit()
	}

	player.Record(outcome)

	_, err = tx.Exec(`
		UPDATE players SET
			wins = ?, losses = ?, pushes = ?, games = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE chat_id = ?
	`, player.Wins, player.Losses, player.Pushes, player.Games, player.ChatID)
	if err != nil {
		return nil, fmt.Errorf("failed to save player: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit round: %w", err)
	}
	return player, nil
}

func (r *SQLiteRepository) GetTopByWins(limit int) ([]Stats, error) {
	rows, err := r.db.Query(`
		SELECT chat_id, wins, games
		FROM players
		WHERE games > 0
		ORDER BY wins DESC, games ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []Stats
	for rows.Next() {
		var s Stats
		if err := rows.Scan(&s.ChatID, &s.Wins, &s.Games); err != nil {
			return nil, err
		}
		if s.Games > 0 {
			s.WinRate = float64(s.Wins) / float64(s.Games) * 100
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

func (p *Player) Record(outcome game.Outcome) {
	switch {
	case outcome.PlayerWon():
		p.Wins++
	case outcome.PlayerLost():
		p.Losses++
	default:
		p.Pushes++
	}
	p.Games++
}

func (p *Player) WinRate() float64 {
	if p.Games == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Games) * 100
}

func joinCards(cards []game.Card) string {
	keys := make([]string, 0, len(cards))
	for _, c := range cards {
		keys = append(keys, game.AssetKey(c))
	}
	return strings.Join(keys, ",")
}
