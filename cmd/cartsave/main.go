package main

import (
	"context"
	"os"

	"github.com/nikolayk812/cartsave-demo/internal/app"
	"github.com/nikolayk812/cartsave-demo/internal/config"
	"github.com/nikolayk812/cartsave-demo/internal/dao"
	"github.com/nikolayk812/cartsave-demo/internal/logging"
	"github.com/nikolayk812/cartsave-demo/internal/repository"
	"github.com/rs/zerolog/log"
)

func main() {
	logging.Setup(os.Stdout, "info")

	cfg, err := config.Load()
	must(err)

	logger := logging.Setup(os.Stdout, cfg.LogLevel)
	logger.Info().
		Str("driver", cfg.DBDriver).
		Msg("starting cartsave")

	ctx := logger.WithContext(context.Background())

	repo, err := repository.Open(ctx, cfg.DBDriver, cfg.DBSource)
	must(err)
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn().Err(err).Msg("close store")
		}
	}()

	// The exit status does not reflect a failed save.
	result := app.Run(ctx, dao.New(repo, logger), os.Stdout)
	if !result.OK() {
		logger.Warn().Msg("cart was not persisted")
	}
}

func must(err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}
}
