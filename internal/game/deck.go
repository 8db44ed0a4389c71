package game

import (
	"errors"
	"math/rand/v2"
)

const DeckSize = 52

var ErrDeckExhausted = errors.New("deck exhausted")

type Deck struct {
	cards []Card
}

// NewDeck returns the 52 cards in canonical order: suit by suit, 2 through A.
func NewDeck() *Deck {
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
	}

	for _, s := range suits {
		for _, r := range ranks {
			d.cards = append(d.cards, Card{Rank: r, Suit: s})
		}
	}
	return d
}

// NewShuffledDeck returns a fresh deck shuffled with rng, or with the global
// source when rng is nil.
func NewShuffledDeck(rng *rand.Rand) *Deck {
	d := NewDeck()
	d.Shuffle(rng)
	return d
}

// NewDeckFrom builds a stacked deck. The last card is drawn first.
func NewDeckFrom(cards []Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

func (d *Deck) Shuffle(rng *rand.Rand) {
	swap := func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}

	if rng == nil {
		rand.Shuffle(len(d.cards), swap)
		return
	}
	rng.Shuffle(len(d.cards), swap)
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrDeckExhausted
	}

	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}

func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
