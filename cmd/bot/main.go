package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/saikat0506/Rezume-AI/internal/bot"
	"github.com/saikat0506/Rezume-AI/internal/llm"
	"github.com/saikat0506/Rezume-AI/internal/styles"
	"github.com/saikat0506/Rezume-AI/pkg/logger"
)

func main() {
	logger.Setup()

	if err := godotenv.Load(); err != nil {
		slog.Error("Error loading .env file", "error", err)
	}

	slog.Info("Starting Resume Tailor bot...")

	botToken := os.Getenv("DISCORD_BOT_TOKEN")
	if botToken == "" {
		slog.Error("Bot token not found in environment variables")
		os.Exit(1)
	}

	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		slog.Error("Gemini API key not found in environment variables")
		os.Exit(1)
	}

	ai, err := llm.New(geminiKey)
	if err != nil {
		slog.Error("Failed to create LLM client", "error", err)
		os.Exit(1)
	}
	defer ai.Close()

	b, err := bot.New(botToken, ai, styles.NewRegistry())
	if err != nil {
		slog.Error("Error creating bot", "error", err)
		os.Exit(1)
	}
	if err := b.Start(); err != nil {
		slog.Error("Error starting bot", "error", err)
		os.Exit(1)
	}
	defer b.Close()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("Shutting down")
}
