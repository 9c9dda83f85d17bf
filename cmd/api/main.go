package main

import (
	"os"

	"github.com/yigit/devcamper/internal/pkg/logger"
	"github.com/yigit/devcamper/internal/server"
)

// @title DevCamper API
// @version 1.0
// @description Directory of coding bootcamps and their courses
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@devcamper.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api/v1
// @schemes http https

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a signal, a listener failure or a failed health check
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server stopped with an error")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
