package main

import (
	"log"

	"orghub/internal/config"
	"orghub/internal/server"

	"go.uber.org/zap"
)

// @title orghub API
// @version 1.0
// @description Organization membership and access-control service.
func main() {
	cfg := config.New()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to create server", zap.Error(err))
	}

	if err := srv.Run(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
