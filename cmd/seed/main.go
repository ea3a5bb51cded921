package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/foryous/reviews-api/config"
	"github.com/foryous/reviews-api/internal/infrastructure/gormdb"
	"github.com/foryous/reviews-api/internal/seed"
	"github.com/foryous/reviews-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	db, err := gormdb.Open(cfg, logger)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := seed.Run(db, cfg.UploadDir, logger); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	logger.Info("seed complete")
}
