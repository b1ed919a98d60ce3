// Package main Juris Understanding API
// @title Juris Understanding API
// @version 1.0
// @description Query understanding for French legal questions: normalization, intent detection and query enrichment.
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/juris-bench/docs"
	"github.com/DjordjeVuckovic/juris-bench/internal/dictionary"
	"github.com/DjordjeVuckovic/juris-bench/internal/router"
	"github.com/DjordjeVuckovic/juris-bench/internal/server"
	"github.com/DjordjeVuckovic/juris-bench/internal/understanding"
	"github.com/DjordjeVuckovic/juris-bench/pkg/config/env"
	pkgserver "github.com/DjordjeVuckovic/juris-bench/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(env.LogLevel())

	cfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	dict, err := dictionary.LoadFromFile(cfg.DictionaryPath)
	if err != nil {
		slog.Error("Failed to load dictionary", "path", cfg.DictionaryPath, "error", err)
		os.Exit(1)
	}
	if err := dict.Validate(); err != nil {
		slog.Warn("Dictionary has incomplete entries", "error", err)
	}
	for _, issue := range understanding.LintTriggers(dict) {
		slog.Warn("Dictionary trigger is not normalized", "issue", issue)
	}

	pipeline := understanding.NewPipeline(dict)
	health := pkgserver.HealthCheckerFunc(func(context.Context) bool {
		return pipeline.Dictionary().Len() > 0
	})

	s := server.New(cfg, health).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Juris understanding API is running")
	})

	router.NewUnderstandRouter(s.Echo, pipeline).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
