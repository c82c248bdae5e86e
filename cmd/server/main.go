package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	httpapi "character-auction/internal/api/http"
	"character-auction/internal/config"
	"character-auction/internal/room"
	"character-auction/internal/store"
	"character-auction/internal/sweep"
	"character-auction/internal/theme"
	"character-auction/internal/theme/dragonball"

	// swagger packages
	_ "character-auction/docs"
)

// @title Character Auction API
// @version 1.0
// @description REST API for a character-bidding party game (Go + Gin)
// @BasePath /
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, logger)
	catalog := theme.NewCatalog(cfg.DataDir, logger)
	characters := dragonball.NewClient(cfg.DragonBallAPIURL, logger)

	if cfg.SweepInterval > 0 {
		sweeper := sweep.New(rm, cfg.SweepInterval, logger)
		if err := sweeper.Start(); err != nil {
			logger.Fatal("failed to start deadline sweeper", zap.Error(err))
		}
		defer sweeper.Stop()
	}

	r := httpapi.SetupRouter(rm, catalog, characters, cfg.CORSOrigins, logger)

	logger.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
