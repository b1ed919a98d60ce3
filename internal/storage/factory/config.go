package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/juris-bench/internal/storage"
	"github.com/DjordjeVuckovic/juris-bench/internal/storage/es"
	"github.com/DjordjeVuckovic/juris-bench/internal/storage/pg"
)

type StorageConfig struct {
	storage.Type
	Pg   *pg.PoolConfig
	Es   *es.ClientConfig
	File string
}

func LoadEnv() (*StorageConfig, error) {
	storageType := storage.Type(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		return nil, fmt.Errorf("STORAGE_TYPE environment variable is not set")
	}
	return FromEnv(storageType)
}

// FromEnv builds the backend configuration for storageType from ES_*, PG_*
// and OUTPUT_FILE variables.
func FromEnv(storageType storage.Type) (*StorageConfig, error) {
	cfg := &StorageConfig{Type: storageType}

	switch storageType {
	case storage.ES:
		cfg.Es = ESConfigFromEnv()
		if len(cfg.Es.Addresses) == 0 {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", cfg.Es.Addresses)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: ES_ADDRESSES is missing")
		}
	case storage.PG:
		cfg.Pg = &pg.PoolConfig{ConnStr: os.Getenv("PG_CONNECTION_STRING")}
		if cfg.Pg.ConnStr == "" {
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
	case storage.File:
		cfg.File = os.Getenv("OUTPUT_FILE")
		if cfg.File == "" {
			return nil, fmt.Errorf("OUTPUT_FILE environment variable is not set")
		}
	case storage.InMem:
	default:
		return nil, fmt.Errorf(
			"invalid storage type %q, expected one of %v",
			storageType,
			[]storage.Type{storage.ES, storage.PG, storage.InMem, storage.File})
	}
	return cfg, nil
}

func ESConfigFromEnv() *es.ClientConfig {
	var addresses []string
	for _, a := range strings.Split(os.Getenv("ES_ADDRESSES"), ",") {
		if a = strings.TrimSpace(a); a != "" {
			addresses = append(addresses, a)
		}
	}
	return &es.ClientConfig{
		Addresses: addresses,
		IndexName: os.Getenv("ES_INDEX_NAME"),
		Username:  os.Getenv("ES_USERNAME"),
		Password:  os.Getenv("ES_PASSWORD"),
	}
}
