package main

import (
	"fmt"

	"github.com/akovalyov/daybook/internal/adapter"
	"github.com/akovalyov/daybook/internal/client"
	"github.com/akovalyov/daybook/internal/config"
	"github.com/akovalyov/daybook/internal/logger"
	"github.com/akovalyov/daybook/internal/service"
	"github.com/akovalyov/daybook/internal/store"
	"github.com/akovalyov/daybook/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("daybook-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	sealer, err := client.NewSealer(cfg.App)
	if err != nil {
		log.Fatal().Err(err).Msg("create sealer")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, sealer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	tokenClient, err := adapter.NewHTTPTokenClient(cfg.OAuth, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create token client")
	}

	driveGateway, err := adapter.NewHTTPDriveGateway(cfg.Drive, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create drive gateway")
	}

	services := service.NewClientServices(cfg, localStorage, tokenClient, driveGateway, log)

	ui, err := tui.New(services, buildVersion, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
