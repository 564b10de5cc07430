package main

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/saikat0506/Rezume-AI/internal/api"
	"github.com/saikat0506/Rezume-AI/internal/llm"
	"github.com/saikat0506/Rezume-AI/internal/styles"
	"github.com/saikat0506/Rezume-AI/pkg/logger"
)

func main() {
	logger.Setup()

	if err := godotenv.Load(); err != nil {
		slog.Error("Error loading .env file", "error", err)
	}

	slog.Info("Starting Resume Tailor web application...")

	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		slog.Error("Gemini API key not found in environment variables")
		os.Exit(1)
	}

	port := 8080
	if portEnv := os.Getenv("PORT"); portEnv != "" {
		if p, err := strconv.Atoi(portEnv); err == nil {
			port = p
		}
	}

	styleRegistry := styles.NewRegistry()
	if path := os.Getenv("STYLES_FILE"); path != "" {
		loaded, err := styles.Load(path)
		if err != nil {
			slog.Error("Failed to load styles file", "path", path, "error", err)
			os.Exit(1)
		}
		styleRegistry = loaded
		slog.Info("Loaded style overrides", "path", path, "styles", styleRegistry.Names())
	}

	ai, err := llm.New(geminiKey)
	if err != nil {
		slog.Error("Failed to create LLM client", "error", err)
		os.Exit(1)
	}
	defer ai.Close()

	server := api.NewServer(port, ai, styleRegistry)
	slog.Info("Server initialized", "port", port)
	if err := server.Start(); err != nil {
		slog.Error("Error starting API server", "error", err)
		os.Exit(1)
	}
}
