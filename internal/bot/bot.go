package bot

import (
	"context"
	"log"

	"singlejack/internal/config"
	"singlejack/internal/game"
	"singlejack/internal/player"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the part of the Telegram API the handlers use.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	SendMediaGroup(config tgbotapi.MediaGroupConfig) ([]tgbotapi.Message, error)
}

type Bot struct {
	api     *tgbotapi.BotAPI
	handler *Handler
}

func New(cfg *config.Config, repo player.Repository) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:     api,
		handler: NewHandler(api, cfg, repo, game.NewManager(nil)),
	}, nil
}

// Run polls updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	log.Printf("Bot started: @%s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.dispatch(update)
		}
	}
}

func (b *Bot) dispatch(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		go b.handler.HandleCallback(update.CallbackQuery)
		return
	}

	if update.Message != nil {
		go b.handler.HandleMessage(update.Message)
	}
}
