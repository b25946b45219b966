package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-web3-uploader/internal/config"
	"github.com/MKhiriev/go-web3-uploader/internal/handler"
	"github.com/MKhiriev/go-web3-uploader/internal/logger"
	"github.com/MKhiriev/go-web3-uploader/internal/server"
	"github.com/MKhiriev/go-web3-uploader/internal/service"
	"github.com/MKhiriev/go-web3-uploader/internal/store"
	"github.com/MKhiriev/go-web3-uploader/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("web3-results")
	cfg, err := config.GetResultsConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log.SetLevel(cfg.App.LogLevel)

	log.Debug().Any("config", cfg.Server).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewResultServices(storages, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
