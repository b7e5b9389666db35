package main

import (
	"context"
	"log"

	"github.com/fintrackhq/fintrack/internal/server"
	"github.com/fintrackhq/fintrack/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
