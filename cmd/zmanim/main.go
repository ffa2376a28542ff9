// Package main is the entry point for the zmanim command.
package main

import (
	"log/slog"
	"os"
	_ "time/tzdata"

	"github.com/zapponejosh/zmanim/internal/cli"
	"github.com/zapponejosh/zmanim/internal/config"
	"github.com/zapponejosh/zmanim/internal/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Setup structured logging on stderr
	log := logger.Setup(cfg)
	log.Debug("configuration loaded",
		slog.String("env", cfg.Env),
		slog.String("calculator", cfg.Calculator),
		slog.String("location", cfg.LocationName),
		slog.Bool("in_israel", cfg.InIsrael),
		slog.Bool("modern_holidays", cfg.ModernHolidays),
	)

	cli.Execute(cfg)
}
