package main

import (
	"log"

	"ifcsheet/internal/config"
	"ifcsheet/internal/container"
	"ifcsheet/ui"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load application configuration
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(appConfig.Server.GinMode)

	// Create dependency injection container
	appContainer, err := container.New(appConfig)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}

	server := ui.NewServer(ui.Assets)
	if err := server.Initialize(ui.Dependencies{
		Store:          appContainer.Store,
		IFC:            appContainer.IFCService,
		Excel:          appContainer.ExcelService,
		MaxUploadBytes: appConfig.Upload.MaxBytes,
		Logger:         appContainer.Logger,
	}); err != nil {
		log.Fatalf("Failed to initialize UI server: %v", err)
	}

	if err := server.Start(":" + appConfig.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
