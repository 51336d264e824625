package main

import (
	"github.com/inohub/prospect-console/internal/config"
	"github.com/inohub/prospect-console/internal/logger"
	"github.com/inohub/prospect-console/internal/stubapi"
)

func main() {
	log := logger.NewLogger("stub-server")

	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	srv, err := stubapi.NewServer(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create stub server")
	}

	if err = srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("stub server run error")
	}
}
