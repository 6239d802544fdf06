package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"eco-wardrobe/config"
	_ "eco-wardrobe/docs" // Swagger docs
	"eco-wardrobe/internal/httpserver"
	"eco-wardrobe/internal/wardrobe/repository/kv"
	"eco-wardrobe/pkg/gdrive"
	"eco-wardrobe/pkg/gemini"
	"eco-wardrobe/pkg/ids"
	"eco-wardrobe/pkg/kvstore"
	"eco-wardrobe/pkg/log"
)

// @title       Eco Wardrobe API
// @description Personal wardrobe catalog with Gemini-powered item recognition and outfit recommendations.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Eco Wardrobe...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Data dir: %s", cfg.Storage.DataDir)

	// 3. Wardrobe store: durable key-value mirror hydrated at startup
	store, err := kvstore.NewFileStore(cfg.Storage.DataDir)
	if err != nil {
		logger.Error(ctx, "Failed to open data dir: ", err)
		return
	}

	repo := kv.New(store, logger)
	if err := repo.Load(ctx); err != nil {
		logger.Error(ctx, "Failed to load wardrobe collections: ", err)
		return
	}

	// 4. Gemini client
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)

	// 5. Google Drive photo archive (optional)
	var driveClient gdrive.IDrive
	if cfg.GoogleDrive.CredentialsPath != "" {
		client, driveErr := gdrive.NewClientFromCredentialsFile(ctx, cfg.GoogleDrive.CredentialsPath)
		if driveErr != nil {
			logger.Warnf(ctx, "Google Drive not available (optional): %v", driveErr)
		} else {
			logger.Info(ctx, "✅ Google Drive photo archive initialized")
			driveClient = client
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		Repository:  repo,
		IDGenerator: ids.NewUUID(),

		GeminiClient:  geminiClient,
		DriveClient:   driveClient,
		DriveFolderID: cfg.GoogleDrive.FolderID,
		AnalyzeModel:  cfg.Gemini.AnalyzeModel,
		IdeasModel:    cfg.Gemini.IdeasModel,

		StylistRPS:   cfg.Stylist.RequestsPerSecond,
		StylistBurst: cfg.Stylist.Burst,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
