package main

import (
	"context"
	"fmt"

	"github.com/inohub/prospect-console/internal/adapter"
	"github.com/inohub/prospect-console/internal/client"
	"github.com/inohub/prospect-console/internal/config"
	"github.com/inohub/prospect-console/internal/logger"
	"github.com/inohub/prospect-console/internal/service"
	"github.com/inohub/prospect-console/internal/session"
	"github.com/inohub/prospect-console/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewConsoleLogger("prospect-console")
	cfg, err := config.GetConsoleConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	store, err := session.NewStore(context.Background(), cfg.Storage.SessionDSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create session store")
	}

	gateway, err := adapter.NewHTTPGateway(cfg.Adapter, store, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api gateway")
	}

	services := service.NewServices(gateway, store, log)

	ui, err := tui.New(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app := client.NewApp(services, ui, log)
	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("console run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
