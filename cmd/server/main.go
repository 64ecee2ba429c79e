package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"petbhai-backend/internal/app"
	"petbhai-backend/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	var logger *zap.Logger
	if cfg.LogLevel == "debug" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatal("Failed to build logger: ", err)
	}
	defer logger.Sync()

	if err := app.New(cfg, logger).Run(); err != nil {
		logger.Fatal("service exited", zap.Error(err))
	}
}
