package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"singlejack/internal/bot"
	"singlejack/internal/config"
	"singlejack/internal/database"
	"singlejack/internal/player"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connected: %s", cfg.DatabasePath)

	playerRepo := player.NewRepository(db.DB)

	b, err := bot.New(cfg, playerRepo)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := b.Run(ctx); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
	log.Println("Gracefully shutting down...")
}
