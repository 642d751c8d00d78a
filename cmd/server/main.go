package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-fetch/internal/config"
	"github.com/MKhiriev/go-todo-fetch/internal/handler"
	"github.com/MKhiriev/go-todo-fetch/internal/logger"
	"github.com/MKhiriev/go-todo-fetch/internal/server"
	"github.com/MKhiriev/go-todo-fetch/internal/service"
	"github.com/MKhiriev/go-todo-fetch/internal/store"
	"github.com/MKhiriev/go-todo-fetch/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("todo-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, buildInfo.BuildVersion(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
