package game

import "fmt"

type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

var suits = []Suit{Spades, Hearts, Diamonds, Clubs}

var suitSymbols = map[Suit]string{
	Spades: "♠", Hearts: "♥", Diamonds: "♦", Clubs: "♣",
}

var suitCodes = map[Suit]string{
	Spades: "S", Hearts: "H", Diamonds: "D", Clubs: "C",
}

func (s Suit) String() string {
	return suitSymbols[s]
}

type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankNames = map[Rank]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7", Eight: "8",
	Nine: "9", Ten: "10", Jack: "J", Queen: "Q", King: "K", Ace: "A",
}

func (r Rank) String() string {
	return rankNames[r]
}

// Value is the blackjack value of the rank with aces counted high.
func (r Rank) Value() int {
	switch {
	case r == Ace:
		return 11
	case r >= Ten:
		return 10
	default:
		return int(r)
	}
}

type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}
