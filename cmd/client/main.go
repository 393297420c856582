package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-protocol-catalog/internal/adapter"
	"github.com/MKhiriev/go-protocol-catalog/internal/client"
	"github.com/MKhiriev/go-protocol-catalog/internal/config"
	"github.com/MKhiriev/go-protocol-catalog/internal/logger"
	"github.com/MKhiriev/go-protocol-catalog/internal/session"
	"github.com/MKhiriev/go-protocol-catalog/internal/store"
	"github.com/MKhiriev/go-protocol-catalog/internal/tui"
	"github.com/MKhiriev/go-protocol-catalog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "build-info" {
		fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	log := logger.NewClientLogger("protocol-catalog-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(log.WithContext(context.Background()), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating local storage")
	}

	sess := session.New(storages.SessionRepository, log)
	if err = sess.Restore(ctx); err != nil {
		log.Err(err).Msg("stored session could not be restored")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, sess, log)
	if err != nil {
		storages.Close()
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	app := client.NewApp(serverAdapter, sess, tui.New(os.Stdin, os.Stdout), os.Stdout, log)

	err = app.Run(ctx, os.Args[1:])
	storages.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, client.ErrorMessage(err))
		os.Exit(1)
	}
}
