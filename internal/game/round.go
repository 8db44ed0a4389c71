package game

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

var ErrInvalidState = errors.New("invalid round state")

type Phase int

const (
	PhaseInProgress Phase = iota
	PhaseResolved
)

func (p Phase) String() string {
	if p == PhaseResolved {
		return "resolved"
	}
	return "in_progress"
}

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePlayerBust
	OutcomeDealerBust
	OutcomePlayerWin
	OutcomeDealerWin
	OutcomePush
)

var outcomeNames = map[Outcome]string{
	OutcomeNone:       "none",
	OutcomePlayerBust: "player_bust",
	OutcomeDealerBust: "dealer_bust",
	OutcomePlayerWin:  "player_win",
	OutcomeDealerWin:  "dealer_win",
	OutcomePush:       "push",
}

func (o Outcome) String() string {
	return outcomeNames[o]
}

func (o Outcome) PlayerWon() bool {
	return o == OutcomeDealerBust || o == OutcomePlayerWin
}

func (o Outcome) PlayerLost() bool {
	return o == OutcomePlayerBust || o == OutcomeDealerWin
}

// Round is one deal from a fresh deck until the outcome is known. A resolved
// round is never reopened; reset means a new Round.
type Round struct {
	ID string

	deck    *Deck
	player  []Card
	dealer  []Card
	phase   Phase
	outcome Outcome
	failed  error
}

// StartRound deals a new round from a freshly shuffled deck.
func StartRound(rng *rand.Rand) (*Round, error) {
	return Deal(NewShuffledDeck(rng))
}

// Deal takes ownership of deck and deals two cards to the player, then two
// to the dealer.
func Deal(deck *Deck) (*Round, error) {
	r := &Round{
		ID:     uuid.NewString(),
		deck:   deck,
		player: make([]Card, 0, 6),
		dealer: make([]Card, 0, 6),
		phase:  PhaseInProgress,
	}

	for i := 0; i < 4; i++ {
		card, err := r.deck.Draw()
		if err != nil {
			return nil, fmt.Errorf("failed to deal: %w", err)
		}
		if i < 2 {
			r.player = append(r.player, card)
		} else {
			r.dealer = append(r.dealer, card)
		}
	}

	return r, nil
}

// Hit draws one card for the player. Going over 21 resolves the round as a
// player bust without any dealer action.
func (r *Round) Hit() (Card, error) {
	if err := r.checkPlayable(); err != nil {
		return Card{}, err
	}
	if Score(r.player) > BlackjackScore {
		return Card{}, fmt.Errorf("hit on a busted hand: %w", ErrInvalidState)
	}

	card, err := r.draw()
	if err != nil {
		return Card{}, err
	}
	r.player = append(r.player, card)

	if IsBust(r.player) {
		r.resolve()
	}
	return card, nil
}

// Stand runs the dealer to 17 or more and resolves the round.
func (r *Round) Stand() error {
	if err := r.checkPlayable(); err != nil {
		return err
	}

	for Score(r.dealer) < DealerStandsOn {
		card, err := r.draw()
		if err != nil {
			return err
		}
		r.dealer = append(r.dealer, card)
	}

	r.resolve()
	return nil
}

func (r *Round) checkPlayable() error {
	if r.failed != nil {
		return fmt.Errorf("round %s failed: %w", r.ID, ErrInvalidState)
	}
	if r.phase != PhaseInProgress {
		return fmt.Errorf("round %s is %s: %w", r.ID, r.phase, ErrInvalidState)
	}
	return nil
}

func (r *Round) draw() (Card, error) {
	card, err := r.deck.Draw()
	if err != nil {
		r.failed = err
		return Card{}, fmt.Errorf("round %s: %w", r.ID, err)
	}
	return card, nil
}

func (r *Round) resolve() {
	if r.phase == PhaseResolved {
		return
	}

	r.outcome = ResolveOutcome(Score(r.player), Score(r.dealer))
	r.phase = PhaseResolved
}

// ResolveOutcome compares final scores. A player bust loses before the dealer
// hand is considered.
func ResolveOutcome(playerScore, dealerScore int) Outcome {
	switch {
	case playerScore > BlackjackScore:
		return OutcomePlayerBust
	case dealerScore > BlackjackScore:
		return OutcomeDealerBust
	case playerScore > dealerScore:
		return OutcomePlayerWin
	case playerScore < dealerScore:
		return OutcomeDealerWin
	default:
		return OutcomePush
	}
}

func (r *Round) Phase() Phase {
	return r.phase
}

// Outcome returns the stored result; ok is false until the round resolves.
func (r *Round) Outcome() (Outcome, bool) {
	if r.phase != PhaseResolved {
		return OutcomeNone, false
	}
	return r.outcome, true
}

// Failed returns the error that aborted the round, if any.
func (r *Round) Failed() error {
	return r.failed
}

func (r *Round) PlayerHand() []Card {
	return cloneCards(r.player)
}

func (r *Round) DealerHand() []Card {
	return cloneCards(r.dealer)
}

func (r *Round) PlayerScore() int {
	return Score(r.player)
}

func (r *Round) DealerScore() int {
	return Score(r.dealer)
}

func (r *Round) Remaining() int {
	return r.deck.Remaining()
}

func cloneCards(cards []Card) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}
