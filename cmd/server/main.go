package main

import (
	"context"
	"log"

	"signupd/internal/server"
	"signupd/internal/server/config"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	app.Run(ctx)
}
