package main

import (
	"context"
	"log"
	"os"

	"github.com/uda-eth/SmartChef-AI-cooking-assistant/config"
	"github.com/uda-eth/SmartChef-AI-cooking-assistant/routes"
	"github.com/uda-eth/SmartChef-AI-cooking-assistant/services"
	"github.com/uda-eth/SmartChef-AI-cooking-assistant/utils"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	db, err := config.ConnectDB(config.DBConfigFromEnv())
	if err != nil {
		log.Fatalf("database setup failed: %v", err)
	}

	uploader, err := utils.NewS3Uploader(context.Background())
	if err != nil {
		log.Fatalf("S3 setup failed: %v", err)
	}

	generator := services.NewOpenAIService()

	r := routes.SetupRouter(db, generator, uploader)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
