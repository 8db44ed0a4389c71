package game

const (
	BlackjackScore = 21
	DealerStandsOn = 17
)

// Score returns the best hand value: aces count 11 and are demoted to 1 one
// at a time while the total is over 21.
func Score(cards []Card) int {
	score, _ := scoreWithSoftAces(cards)
	return score
}

func scoreWithSoftAces(cards []Card) (int, int) {
	score := 0
	aces := 0

	for _, card := range cards {
		score += card.Rank.Value()
		if card.Rank == Ace {
			aces++
		}
	}

	for score > BlackjackScore && aces > 0 {
		score -= 10
		aces--
	}

	return score, aces
}

// IsSoft reports whether an ace in the hand is still counted as 11.
func IsSoft(cards []Card) bool {
	_, soft := scoreWithSoftAces(cards)
	return soft > 0
}

// IsBlackjack reports a natural: an ace and a ten-valued card as the first two.
func IsBlackjack(cards []Card) bool {
	if len(cards) != 2 {
		return false
	}

	return Score(cards) == BlackjackScore
}

func IsBust(cards []Card) bool {
	return Score(cards) > BlackjackScore
}
