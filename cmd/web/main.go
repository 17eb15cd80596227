package main

import (
	"github.com/joho/godotenv"

	"k9hope_backend/internal/app"
	"k9hope_backend/internal/logger"
)

func main() {
	// .env is optional; real deployments inject environment directly.
	_ = godotenv.Load()

	if err := app.Run(); err != nil {
		logger.Fatal("application failed", "error", err.Error())
	}
}
