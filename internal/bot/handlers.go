package bot

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"singlejack/internal/config"
	"singlejack/internal/game"
	"singlejack/internal/player"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram albums hold between 2 and 10 items.
const maxAlbumSize = 10

type Handler struct {
	bot     Sender
	cfg     *config.Config
	players player.Repository
	games   *game.Manager
}

func NewHandler(bot Sender, cfg *config.Config, repo player.Repository, games *game.Manager) *Handler {
	return &Handler{
		bot:     bot,
		cfg:     cfg,
		players: repo,
		games:   games,
	}
}

// ============== HELPERS ==============

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("[BLACKJACK ERROR] Failed to send message: %v", err)
	}
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("[BLACKJACK ERROR] Failed to send message: %v", err)
	}
}

func (h *Handler) sendImages(chatID int64, caption string, urls []string) {
	for start := 0; start < len(urls); start += maxAlbumSize {
		end := min(start+maxAlbumSize, len(urls))
		chunk := urls[start:end]

		if len(chunk) == 1 {
			photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(chunk[0]))
			if start == 0 {
				photo.Caption = caption
			}
			if _, err := h.bot.Send(photo); err != nil {
				log.Printf("[BLACKJACK ERROR] Failed to send card image: %v", err)
			}
			continue
		}

		files := make([]interface{}, 0, len(chunk))
		for i, url := range chunk {
			media := tgbotapi.NewInputMediaPhoto(tgbotapi.FileURL(url))
			if start == 0 && i == 0 {
				media.Caption = caption
			}
			files = append(files, media)
		}
		if _, err := h.bot.SendMediaGroup(tgbotapi.NewMediaGroup(chatID, files)); err != nil {
			log.Printf("[BLACKJACK ERROR] Failed to send card images: %v", err)
		}
	}
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		log.Printf("[BLACKJACK ERROR] Failed to answer callback: %v", err)
	}
}

// show renders the round after a transition.
func (h *Handler) show(chatID int64, r *game.Round) {
	v := Render(r, h.cfg.CardAssetURL)

	if h.cfg.ShowCardImages {
		h.sendImages(chatID, "Dealer", v.DealerImages)
		h.sendImages(chatID, "You", v.PlayerImages)
	}
	h.sendWithKeyboard(chatID, v.Text, v.Keyboard)
}

func (h *Handler) record(chatID int64, r *game.Round) {
	if _, ok := r.Outcome(); !ok {
		return
	}
	if _, err := h.players.RecordRound(chatID, r); err != nil {
		log.Printf("[BLACKJACK ERROR] Failed to record round %s: %v", r.ID, err)
	}
}

// ============== COMMANDS ==============

func (h *Handler) HandleStart(chatID int64) {
	h.send(chatID,
		"🎰 Welcome to Blackjack!\n\n"+
			"/play — deal a new round\n"+
			"/stats — your results\n"+
			"/top — leaderboard\n"+
			"/help — rules")
}

func (h *Handler) HandleHelp(chatID int64) {
	h.send(chatID,
		"📖 Blackjack rules:\n\n"+
			"🎯 Get closer to 21 than the dealer without going over\n\n"+
			"📊 Points:\n"+
			"• 2-10 — face value\n"+
			"• J, Q, K — 10\n"+
			"• A — 11 or 1\n\n"+
			"🎮 Actions:\n"+
			"• Hit — take a card\n"+
			"• Stand — stop; the dealer draws to 17\n\n"+
			"Play again deals a fresh deck.")
}

func (h *Handler) HandleStats(chatID int64) {
	p, err := h.players.GetOrCreate(chatID)
	if err != nil {
		log.Printf("[BLACKJACK ERROR] Failed to load player %d: %v", chatID, err)
		h.send(chatID, "❌ Error")
		return
	}

	h.send(chatID, formatStats(p))
}

func formatStats(p *player.Player) string {
	return fmt.Sprintf(
		"📊 Stats:\n"+
			"🎮 Rounds: %d\n"+
			"✅ Wins: %d (%.1f%%)\n"+
			"❌ Losses: %d\n"+
			"🤝 Pushes: %d",
		p.Games, p.Wins, p.WinRate(), p.Losses, p.Pushes)
}

func (h *Handler) HandleTop(chatID int64) {
	stats, err := h.players.GetTopByWins(h.cfg.TopLimit)
	if err != nil {
		log.Printf("[BLACKJACK ERROR] Failed to load leaderboard: %v", err)
		h.send(chatID, "❌ Error")
		return
	}

	if len(stats) == 0 {
		h.send(chatID, "🏆 Nobody has played yet!")
		return
	}

	var sb strings.Builder
	sb.WriteString("🏆 Top players:\n\n")

	medals := []string{"🥇", "🥈", "🥉"}
	for i, s := range stats {
		medal := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			medal = medals[i]
		}
		sb.WriteString(fmt.Sprintf("%s %d wins | %d rounds (%.0f%%)\n",
			medal, s.Wins, s.Games, s.WinRate))
	}

	h.send(chatID, sb.String())
}

// HandlePlay deals a new round, replacing whatever the chat had before.
func (h *Handler) HandlePlay(chatID int64) {
	err := h.games.Do(chatID, func(s *game.Session) error {
		r, err := s.Reset()
		if err != nil {
			return err
		}
		h.show(chatID, r)
		return nil
	})
	if err != nil {
		log.Printf("[BLACKJACK ERROR] Chat %d: failed to deal: %v", chatID, err)
		h.send(chatID, "❌ Could not deal a new round. Try /play again.")
	}
}

// ============== CALLBACKS ==============

func (h *Handler) HandleCallback(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil || callback.Message.Chat == nil {
		h.answerCallback(callback.ID, "")
		return
	}
	chatID := callback.Message.Chat.ID

	switch callback.Data {
	case CallbackPlayAgain:
		h.answerCallback(callback.ID, "")
		h.HandlePlay(chatID)
	case CallbackStats:
		h.answerCallback(callback.ID, "")
		h.HandleStats(chatID)
	case CallbackHit, CallbackStand:
		h.answerCallback(callback.ID, h.handleMove(chatID, callback.Data))
	default:
		h.answerCallback(callback.ID, "")
	}
}

// handleMove applies hit or stand and returns the callback notice.
func (h *Handler) handleMove(chatID int64, move string) string {
	notice := ""

	_ = h.games.Do(chatID, func(s *game.Session) error {
		r := s.Round()
		if r == nil {
			notice = "No active round"
			return nil
		}

		var err error
		if move == CallbackHit {
			_, err = r.Hit()
		} else {
			err = r.Stand()
		}

		switch {
		case errors.Is(err, game.ErrInvalidState):
			notice = "No active round"
			return nil
		case err != nil:
			log.Printf("[BLACKJACK ERROR] Chat %d round %s: %v", chatID, r.ID, err)
		}

		h.record(chatID, r)
		h.show(chatID, r)
		return nil
	})

	return notice
}

// ============== MESSAGES ==============

func (h *Handler) HandleMessage(msg *tgbotapi.Message) {
	if msg.Chat == nil {
		return
	}
	chatID := msg.Chat.ID
	parts := strings.Fields(msg.Text)

	if len(parts) == 0 {
		return
	}

	cmd := strings.ToLower(parts[0])
	cmd, _, _ = strings.Cut(cmd, "@")

	switch cmd {
	case "/start":
		h.HandleStart(chatID)
	case "/help":
		h.HandleHelp(chatID)
	case "/play", "/reset":
		h.HandlePlay(chatID)
	case "/stats":
		h.HandleStats(chatID)
	case "/top":
		h.HandleTop(chatID)
	}
}
