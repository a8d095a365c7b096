package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-places/internal/adapter"
	"github.com/MKhiriev/go-places/internal/config"
	handler "github.com/MKhiriev/go-places/internal/handler/http"
	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/server"
	"github.com/MKhiriev/go-places/internal/service"
	"github.com/MKhiriev/go-places/internal/store"
	"github.com/MKhiriev/go-places/internal/workers"
	"github.com/MKhiriev/go-places/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-places-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages, err := store.NewStorages(db, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	geocoder, err := adapter.NewHTTPGeocoder(cfg.Adapter.Geocoding, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating geocoder")
	}

	imageCleaner := workers.NewImageCleaner(storages.ImageStorage, cfg.Workers.ImageCleanupQueueSize, log)
	backgroundWorkers := workers.NewWorkers(imageCleaner)
	workersDone := make(chan error, 1)
	go func() {
		workersDone <- backgroundWorkers.Run(ctx)
	}()

	services, err := service.NewServices(storages, geocoder, imageCleaner, cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	h := handler.NewHandler(services, cfg.Server, cfg.Storage.Files, log)
	srv, err := server.NewServer(h, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	// stop workers also when the server failed on its own
	stop()
	if err = <-workersDone; err != nil {
		log.Err(err).Msg("workers stopped with error")
	}
	log.Info().Msg("application stopped")
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Value(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", info.Value(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", info.Value(info.BuildCommit()))
}
