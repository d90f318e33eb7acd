package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/nikolayk812/cartsave-demo/internal/repository"
)

type Config struct {
	DBDriver string
	DBSource string
	LogLevel string
}

// Load reads settings from the environment, falling back to the given
// dotenv files (".env" when none are named) and then to defaults.
// A missing dotenv file is not an error.
func Load(filenames ...string) (Config, error) {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	fileEnv := map[string]string{}
	for _, name := range filenames {
		values, err := godotenv.Read(name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("godotenv.Read[%s]: %w", name, err)
		}
		for k, v := range values {
			if _, ok := fileEnv[k]; !ok {
				fileEnv[k] = v
			}
		}
	}

	getEnv := func(key, fallback string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		if v, ok := fileEnv[key]; ok {
			return v
		}
		return fallback
	}

	cfg := Config{
		DBDriver: getEnv("CART_DB_DRIVER", repository.DriverSQLite),
		DBSource: getEnv("CART_DB_SOURCE", "cart.db"),
		LogLevel: getEnv("CART_LOG_LEVEL", "info"),
	}

	switch cfg.DBDriver {
	case repository.DriverPostgres, repository.DriverSQLite:
	default:
		return Config{}, fmt.Errorf("CART_DB_DRIVER[%s] is not supported", cfg.DBDriver)
	}

	if cfg.DBSource == "" {
		return Config{}, fmt.Errorf("CART_DB_SOURCE is empty")
	}

	return cfg, nil
}
