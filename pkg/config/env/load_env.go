package env

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from .env files. ENV_PATH, when set, replaces
// the default paths. Missing files only fail in local mode.
func LoadDotEnv(env string, defaultPaths ...string) error {
	paths := defaultPaths
	if p := os.Getenv("ENV_PATH"); p != "" {
		paths = strings.Split(p, ",")
	} else {
		slog.Debug("ENV_PATH is not set, using default paths", "paths", defaultPaths)
	}

	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		if env == "local" {
			slog.Error("No .env file found in local mode", "paths", paths)
			return os.ErrNotExist
		}
		slog.Debug("Skipping .env ...")
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		slog.Error("Failed to load environment variables", "paths", existing, "error", err)
		return err
	}
	return nil
}

// LogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func LogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(os.Getenv("LOG_LEVEL"))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
