package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

/* Config is a helper package. It could be an external lib. */

const (
	StorageFlatFile = "flatfile"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
	StorageMemory   = "memory"
)

type Config struct {
	Port     string `mapstructure:"PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
	LogJSON  bool   `mapstructure:"LOG_JSON"`

	Storage          string `mapstructure:"STORAGE"`
	DataDir          string `mapstructure:"DATA_DIR"`
	BooksFile        string `mapstructure:"BOOKS_FILE"`
	PatronsFile      string `mapstructure:"PATRONS_FILE"`
	TransactionsFile string `mapstructure:"TRANSACTIONS_FILE"`
	SQLitePath       string `mapstructure:"SQLITE_PATH"`

	PostgresHost               string `mapstructure:"POSTGRES_HOST"`
	PostgresPort               string `mapstructure:"POSTGRES_PORT"`
	PostgresUser               string `mapstructure:"POSTGRES_USER"`
	PostgresPassword           string `mapstructure:"POSTGRES_PASSWORD"`
	PostgresDB                 string `mapstructure:"POSTGRES_DB"`
	PostgresSSLMode            string `mapstructure:"POSTGRES_SSLMODE"`
	PostgresMaxOpenConns       int    `mapstructure:"POSTGRES_MAX_OPEN_CONNS"`
	PostgresMaxIdleConns       int    `mapstructure:"POSTGRES_MAX_IDLE_CONNS"`
	PostgresConnMaxLifeMinutes int    `mapstructure:"POSTGRES_CONN_MAX_LIFE_MINUTES"`

	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisDB        int    `mapstructure:"REDIS_DB"`
	RedisKeyPrefix string `mapstructure:"REDIS_KEY_PREFIX"`

	UniqueKeys     bool   `mapstructure:"UNIQUE_KEYS"`
	TransactionLog bool   `mapstructure:"TRANSACTION_LOG"`
	SeedFile       string `mapstructure:"SEED_FILE"`
}

var defaults = map[string]interface{}{
	"PORT":                           "8080",
	"LOG_LEVEL":                      "info",
	"LOG_JSON":                       false,
	"STORAGE":                        StorageFlatFile,
	"DATA_DIR":                       ".",
	"BOOKS_FILE":                     "books.txt",
	"PATRONS_FILE":                   "patrons.txt",
	"TRANSACTIONS_FILE":              "transactions.txt",
	"SQLITE_PATH":                    "catalog.db",
	"POSTGRES_HOST":                  "localhost",
	"POSTGRES_PORT":                  "5432",
	"POSTGRES_USER":                  "",
	"POSTGRES_PASSWORD":              "",
	"POSTGRES_DB":                    "",
	"POSTGRES_SSLMODE":               "disable",
	"POSTGRES_MAX_OPEN_CONNS":        25,
	"POSTGRES_MAX_IDLE_CONNS":        5,
	"POSTGRES_CONN_MAX_LIFE_MINUTES": 5,
	"REDIS_ADDR":                     "localhost:6379",
	"REDIS_PASSWORD":                 "",
	"REDIS_DB":                       0,
	"REDIS_KEY_PREFIX":               "catalog",
	"UNIQUE_KEYS":                    false,
	"TRANSACTION_LOG":                true,
	"SEED_FILE":                      "",
}

// GetConfig reads .env (toml) from the working directory when present and
// lets environment variables override it
func GetConfig() (*Config, error) {
	return Load(".")
}

// Load reads the .env file from dir. A missing file is fine, defaults apply.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("parsing config data: %w", err)
	}
	config.Storage = strings.ToLower(strings.TrimSpace(config.Storage))
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the storage backend and its settings
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageFlatFile, StorageMemory:
	case StorageSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for sqlite storage")
		}
	case StoragePostgres:
		return c.ValidatePostgres()
	case StorageRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for redis storage")
		}
	default:
		return fmt.Errorf("unknown STORAGE %q (want flatfile, sqlite, postgres, redis or memory)", c.Storage)
	}
	return nil
}

// ValidatePostgres checks the settings needed to reach PostgreSQL
func (c *Config) ValidatePostgres() error {
	var missing []string
	if c.PostgresHost == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if c.PostgresPort == "" {
		missing = append(missing, "POSTGRES_PORT")
	}
	if c.PostgresUser == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if c.PostgresDB == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing postgres configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// PostgresConnectionString builds a lib/pq connection string
func (c *Config) PostgresConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode)
}
