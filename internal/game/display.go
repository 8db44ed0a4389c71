package game

// BackAssetKey is the asset shown for a face-down card.
const BackAssetKey = "back"

// AssetKey maps a card to the two-character code used by the card image host,
// e.g. "AS", "KD". The ten is written "0" so every key stays two characters.
func AssetKey(c Card) string {
	rank := c.Rank.String()
	if c.Rank == Ten {
		rank = "0"
	}
	return rank + suitCodes[c.Suit]
}

func (r *Round) PlayerAssetKeys() []string {
	keys := make([]string, 0, len(r.player))
	for _, c := range r.player {
		keys = append(keys, AssetKey(c))
	}
	return keys
}

// DealerAssetKeys hides the dealer's second card until the round is resolved.
func (r *Round) DealerAssetKeys() []string {
	keys := make([]string, 0, len(r.dealer))
	for i, c := range r.dealer {
		if i == 1 && r.HoleCardHidden() {
			keys = append(keys, BackAssetKey)
			continue
		}
		keys = append(keys, AssetKey(c))
	}
	return keys
}

func (r *Round) HoleCardHidden() bool {
	return r.phase == PhaseInProgress && r.failed == nil
}
