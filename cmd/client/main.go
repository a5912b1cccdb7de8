package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/sweetshop/internal/cli"
	"github.com/dmitrijs2005/sweetshop/internal/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
