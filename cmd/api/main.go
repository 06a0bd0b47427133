package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/skilllink/skilllink/internal/pkg/logger"
	"github.com/skilllink/skilllink/internal/server"
)

// @title SkillLink API
// @version 1.0
// @description API for the SkillLink skill exchange platform
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@skilllink.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// A missing .env file is fine, config falls back to defaults
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, relying on environment and config file")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
