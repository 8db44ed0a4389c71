package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	d := NewDeck()
	require.Equal(t, DeckSize, d.Remaining())

	seen := make(map[Card]bool)
	for _, card := range d.Cards() {
		assert.False(t, seen[card], "duplicate %s", card)
		seen[card] = true
	}
	assert.Len(t, seen, DeckSize)

	cards := d.Cards()
	assert.Equal(t, c(Two, Spades), cards[0])
	assert.Equal(t, c(Ace, Spades), cards[12])
	assert.Equal(t, c(Ace, Clubs), cards[51])
}

func TestShufflePreservesCards(t *testing.T) {
	d := NewShuffledDeck(rand.New(rand.NewPCG(7, 11)))
	require.Equal(t, DeckSize, d.Remaining())
	assert.ElementsMatch(t, NewDeck().Cards(), d.Cards())

	d = NewShuffledDeck(nil)
	assert.ElementsMatch(t, NewDeck().Cards(), d.Cards())
}

func TestShuffleSeeded(t *testing.T) {
	a := NewShuffledDeck(rand.New(rand.NewPCG(1, 2)))
	b := NewShuffledDeck(rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, a.Cards(), b.Cards())
	assert.NotEqual(t, NewDeck().Cards(), a.Cards())
}

func TestDrawTakesTopCard(t *testing.T) {
	d := stacked(c(Ace, Hearts), c(Two, Clubs))

	card, err := d.Draw()
	require.NoError(t, err)
	assert.Equal(t, c(Ace, Hearts), card)
	assert.Equal(t, 1, d.Remaining())

	card, err = d.Draw()
	require.NoError(t, err)
	assert.Equal(t, c(Two, Clubs), card)
}

func TestDrawEmptyDeck(t *testing.T) {
	d := NewDeck()
	for i := 0; i < DeckSize; i++ {
		_, err := d.Draw()
		require.NoError(t, err)
	}

	_, err := d.Draw()
	assert.ErrorIs(t, err, ErrDeckExhausted)
	assert.Equal(t, 0, d.Remaining())
}

func TestDeckFromCopiesInput(t *testing.T) {
	cards := []Card{c(Two, Spades), c(Three, Spades)}
	d := NewDeckFrom(cards)
	cards[1] = c(King, Hearts)

	card, err := d.Draw()
	require.NoError(t, err)
	assert.Equal(t, c(Three, Spades), card)
}
