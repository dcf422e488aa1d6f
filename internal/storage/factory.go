package storage

import (
	"context"
	"fmt"

	"github.com/marcelsud/library-catalog/catalog"
	"github.com/marcelsud/library-catalog/catalog/flatfile"
	"github.com/marcelsud/library-catalog/catalog/postgres"
	"github.com/marcelsud/library-catalog/catalog/redis"
	"github.com/marcelsud/library-catalog/catalog/sqlite"
	"github.com/marcelsud/library-catalog/config"
	"github.com/spf13/afero"
)

// Open builds the repository selected by cfg.Storage. The "memory"
// storage returns a nil repository: nothing is loaded or saved.
func Open(ctx context.Context, cfg *config.Config) (catalog.Repository, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return nil, nil
	case config.StorageFlatFile, "":
		return flatfile.NewRepository(afero.NewOsFs(), cfg.DataDir,
			flatfile.WithBooksFile(cfg.BooksFile),
			flatfile.WithPatronsFile(cfg.PatronsFile),
			flatfile.WithTransactionsFile(cfg.TransactionsFile),
		), nil
	case config.StorageSQLite:
		repo, err := sqlite.NewRepository(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite storage: %w", err)
		}
		return repo, nil
	case config.StoragePostgres:
		repo, err := postgres.NewRepositoryWithPoolConfig(
			cfg.PostgresConnectionString(),
			cfg.PostgresMaxOpenConns,
			cfg.PostgresMaxIdleConns,
			cfg.PostgresConnMaxLifeMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("opening postgres storage: %w", err)
		}
		if err := repo.CreateTables(ctx); err != nil {
			repo.Close(ctx)
			return nil, fmt.Errorf("opening postgres storage: %w", err)
		}
		return repo, nil
	case config.StorageRedis:
		repo, err := redis.NewRepository(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisKeyPrefix)
		if err != nil {
			return nil, fmt.Errorf("opening redis storage: %w", err)
		}
		return repo, nil
	}
	return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
}
