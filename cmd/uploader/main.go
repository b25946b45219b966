package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-web3-uploader/internal/adapter"
	"github.com/MKhiriev/go-web3-uploader/internal/app"
	"github.com/MKhiriev/go-web3-uploader/internal/config"
	"github.com/MKhiriev/go-web3-uploader/internal/logger"
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

	log := logger.NewLogger("web3-uploader")
	cfg, err := config.GetUploaderConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log.SetLevel(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	pinningAdapter, err := adapter.NewHTTPPinningAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating pinning adapter")
	}

	services := service.NewServices(storages, pinningAdapter, *cfg, log)

	if err = app.NewApp(services.BatchService, cfg.App, os.Stdout, log).Run(ctx); err != nil {
		log.Err(err).Msg("uploader run error")
		stop()
		storages.Close()
		os.Exit(1)
	}
}
