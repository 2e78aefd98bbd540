package main

import (
	"log"

	"github.com/projectdragon/dragon/internal/config"
	"github.com/projectdragon/dragon/internal/logger"
	"github.com/projectdragon/dragon/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(logger.Config{
		Level:      logger.ParseLevel(cfg.LogLevel),
		FilePath:   cfg.LogFile,
		MaxSize:    10 * 1024 * 1024,
		MaxBackups: 5,
		Console:    cfg.LogConsole,
	}); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Close()

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}
	defer func() {
		if err := srv.Close(); err != nil {
			log.Printf("Error closing server: %v", err)
		}
	}()

	logger.Info("Project Dragon server starting", logger.F("port", cfg.Port))
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
