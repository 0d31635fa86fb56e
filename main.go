// main.go
package main

import (
	"context"
	"log"
	"time"

	"github.com/ViniciusSMLuz/movie-review/cmd"
	"github.com/ViniciusSMLuz/movie-review/internal/data/repository"
	"github.com/ViniciusSMLuz/movie-review/internal/data/schema"
	"github.com/ViniciusSMLuz/movie-review/internal/wire"
	"github.com/ViniciusSMLuz/movie-review/pkg/database"
	"github.com/ViniciusSMLuz/movie-review/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to the storage engine; the session is the single shared
	// capability handed to every repository for the process lifetime
	session, err := database.Connect(config.Cassandra)
	if err != nil {
		logger.Fatal("Failed to connect to cassandra", zap.Error(err))
	}
	defer session.Close()

	logger.Info("Cassandra connected",
		zap.String("host", config.Cassandra.Host),
		zap.String("datacenter", config.Cassandra.Datacenter),
	)

	// Schema bootstrap must complete before any request is served.
	// A failure here is fatal: never run against a partial schema.
	initCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := schema.Init(initCtx, session, logger); err != nil {
		cancel()
		logger.Fatal("Failed to initialize schema", zap.Error(err))
	}
	cancel()

	// Initialize repositories
	repos := repository.NewRepository(session, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, logger)

	// Start server
	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}

	logger.Info("Server stopped")
}
