package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/rfidcredits/internal/buildinfo"
	"github.com/dmitrijs2005/rfidcredits/internal/logging"
	"github.com/dmitrijs2005/rfidcredits/internal/server"
	"github.com/dmitrijs2005/rfidcredits/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel("info"))

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		os.Exit(1)
	}

}
