package main

import (
	"context"

	"github.com/marcelsud/library-catalog/catalog"
	"github.com/marcelsud/library-catalog/config"
	"github.com/marcelsud/library-catalog/internal/logging"
	"github.com/marcelsud/library-catalog/internal/storage"
	"github.com/marcelsud/library-catalog/seed"
	"github.com/rs/zerolog"
)

// app holds what every command needs once the configuration is read
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
	svc    *catalog.Service
}

func newApp(ctx context.Context, autoSeed bool) (*app, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}
	logger := logging.New(logLevel(cfg), cfg.LogJSON)

	repo, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	svc := catalog.NewService(repo, logger,
		catalog.WithUniqueKeys(cfg.UniqueKeys),
		catalog.WithTransactionLog(cfg.TransactionLog),
	)
	svc.Open(ctx)
	logger.Debug().Str("storage", cfg.Storage).Msg("catalog opened")

	a := &app{cfg: cfg, logger: logger, svc: svc}
	if autoSeed && cfg.SeedFile != "" && svc.Empty() {
		if err := a.seed(ctx, cfg.SeedFile); err != nil {
			logger.Warn().Err(err).Str("seed_file", cfg.SeedFile).Msg("seeding catalog failed")
		}
	}
	return a, nil
}

func (a *app) seed(ctx context.Context, path string) error {
	loader := seed.NewLoader()
	if err := loader.Load(path); err != nil {
		return err
	}
	if err := loader.Apply(ctx, a.svc); err != nil {
		return err
	}
	a.logger.Info().
		Int("books", len(loader.Books())).
		Int("patrons", len(loader.Patrons())).
		Str("seed_file", path).
		Msg("catalog seeded")
	return nil
}

// close saves the catalog. Save failures are logged by the service and
// never change the exit status.
func (a *app) close(ctx context.Context) {
	if err := a.svc.Close(ctx); err != nil {
		a.logger.Error().Err(err).Msg("closing catalog")
	}
}

func logLevel(cfg *config.Config) string {
	if verbose {
		return "debug"
	}
	return cfg.LogLevel
}
