package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-fetch/internal/adapter"
	"github.com/MKhiriev/go-todo-fetch/internal/client"
	"github.com/MKhiriev/go-todo-fetch/internal/config"
	"github.com/MKhiriev/go-todo-fetch/internal/logger"
	"github.com/MKhiriev/go-todo-fetch/internal/service"
	"github.com/MKhiriev/go-todo-fetch/internal/store"
	"github.com/MKhiriev/go-todo-fetch/internal/tui"
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

	log := logger.NewClientLogger("todo-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(store.NewTaskListStore(), serverAdapter, cfg.App, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
