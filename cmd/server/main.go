package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-car-keeper/internal/config"
	"github.com/MKhiriev/go-car-keeper/internal/crypto"
	"github.com/MKhiriev/go-car-keeper/internal/handler"
	"github.com/MKhiriev/go-car-keeper/internal/logger"
	"github.com/MKhiriev/go-car-keeper/internal/server"
	"github.com/MKhiriev/go-car-keeper/internal/service"
	"github.com/MKhiriev/go-car-keeper/internal/store"
	"github.com/MKhiriev/go-car-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("go-car-server")

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("build info")

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	codec, err := crypto.NewJWTCodec(cfg.App)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token codec")
	}

	services, err := service.NewServices(
		store.NewRepositories(db, log),
		crypto.NewBcryptHasher(cfg.App.BcryptCost),
		codec,
		log,
	)
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

	if err = srv.RunServer(); err != nil {
		db.Close()
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
