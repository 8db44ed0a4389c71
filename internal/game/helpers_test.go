package game

func c(r Rank, s Suit) Card {
	return Card{Rank: r, Suit: s}
}

// stacked returns a deck that deals cards in the order given.
func stacked(draws ...Card) *Deck {
	cards := make([]Card, len(draws))
	for i, card := range draws {
		cards[len(draws)-1-i] = card
	}
	return NewDeckFrom(cards)
}
