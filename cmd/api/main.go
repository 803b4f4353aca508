package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/yt-snapshot/internal/api"
	"github.com/yt-snapshot/internal/config"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize server
	server, err := api.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := server.Start(cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
