package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/juris-bench/pkg/config/env"
)

const (
	DefaultPort           = "8080"
	DefaultDictionaryPath = "configs/juridical_dictionary.yml"
)

type Config struct {
	Port           string
	UseHttp2       bool
	CorsOrigins    []string
	DictionaryPath string
}

func LoadConfig() (*Config, error) {
	err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/understand_api/.env")
	if err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}
	return configFromEnv()
}

func configFromEnv() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = DefaultPort
	}
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	dictPath := os.Getenv("DICTIONARY_PATH")
	if dictPath == "" {
		dictPath = DefaultDictionaryPath
	}

	var origins []string
	for _, origin := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Config{
		Port:           port,
		UseHttp2:       os.Getenv("USE_HTTP2") == "true",
		CorsOrigins:    origins,
		DictionaryPath: dictPath,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
