package main

import (
	"context"
	"log"

	"github.com/bestpacific/induction/internal/bootstrap"
	"github.com/bestpacific/induction/internal/cli"
	"github.com/bestpacific/induction/internal/config"
)

func main() {

	bootstrap.LoadEnv()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())

}
