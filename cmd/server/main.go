package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-protocol-catalog/internal/config"
	"github.com/MKhiriev/go-protocol-catalog/internal/handler"
	"github.com/MKhiriev/go-protocol-catalog/internal/logger"
	"github.com/MKhiriev/go-protocol-catalog/internal/server"
	"github.com/MKhiriev/go-protocol-catalog/internal/service"
	"github.com/MKhiriev/go-protocol-catalog/internal/store"
	"github.com/MKhiriev/go-protocol-catalog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("protocol-catalog-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log.SetLevel(cfg.App.LogLevel)

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.Version
	}
	if cfg.UsesDefaultSignKey() {
		log.Warn().Msg("tokens are signed with the built-in default key; set APP_TOKEN_SIGN_KEY")
	}

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	// a missing admin is not fatal: the catalog stays readable for existing users
	if err = services.UserService.EnsureAdmin(ctx, cfg.Bootstrap); err != nil {
		log.Err(err).Msg("bootstrap admin was not seeded; set BOOTSTRAP_ADMIN_PASSWORD or BOOTSTRAP_ACCEPT_DEFAULT_PASSWORD=true")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
		storages.Close()
		os.Exit(1)
	}
}
