package bot

import (
	"fmt"
	"strings"

	"singlejack/internal/game"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var outcomeText = map[game.Outcome]string{
	game.OutcomePlayerBust: "💥 Bust! You lose.",
	game.OutcomeDealerBust: "🎉 Dealer busts! You win!",
	game.OutcomePlayerWin:  "🎉 You win!",
	game.OutcomeDealerWin:  "😔 Dealer wins.",
	game.OutcomePush:       "🤝 Push.",
}

// View is everything the chat needs to show one state of a round.
type View struct {
	Text         string
	DealerImages []string
	PlayerImages []string
	Keyboard     tgbotapi.InlineKeyboardMarkup
}

// Render builds the view of r. It reads the stored outcome and never
// resolves anything itself, so rendering a round again gives the same view.
func Render(r *game.Round, assetURL string) View {
	var sb strings.Builder

	dealer := r.DealerHand()
	if r.HoleCardHidden() {
		sb.WriteString(fmt.Sprintf("🃏 Dealer: [%s, ?]\n", dealer[0]))
	} else {
		sb.WriteString(fmt.Sprintf("🃏 Dealer: %s (%d)\n", formatHand(dealer), r.DealerScore()))
	}

	player := r.PlayerHand()
	sb.WriteString(fmt.Sprintf("🎴 You: %s (%s)", formatHand(player), formatScore(player)))

	v := View{
		DealerImages: assetURLs(assetURL, r.DealerAssetKeys()),
		PlayerImages: assetURLs(assetURL, r.PlayerAssetKeys()),
	}

	if err := r.Failed(); err != nil {
		sb.WriteString("\n\n⚠️ The round was aborted. Deal again to keep playing.")
		v.Text = sb.String()
		v.Keyboard = EndGameKeyboard()
		return v
	}

	outcome, resolved := r.Outcome()
	if !resolved {
		v.Text = sb.String()
		v.Keyboard = GameKeyboard()
		return v
	}

	sb.WriteString(fmt.Sprintf("\n\nResult: %s (Dealer: %d)", outcomeText[outcome], r.DealerScore()))
	v.Text = sb.String()
	v.Keyboard = EndGameKeyboard()
	return v
}

func formatHand(cards []game.Card) string {
	s := make([]string, 0, len(cards))
	for _, c := range cards {
		s = append(s, c.String())
	}
	return "[" + strings.Join(s, ", ") + "]"
}

func formatScore(cards []game.Card) string {
	switch {
	case game.IsBlackjack(cards):
		return "21, blackjack"
	case game.IsSoft(cards):
		return fmt.Sprintf("soft %d", game.Score(cards))
	default:
		return fmt.Sprintf("%d", game.Score(cards))
	}
}

func assetURLs(base string, keys []string) []string {
	urls := make([]string, 0, len(keys))
	for _, k := range keys {
		urls = append(urls, fmt.Sprintf("%s/%s.png", base, k))
	}
	return urls
}
