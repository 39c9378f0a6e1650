// Package main применяет или откатывает миграции схемы PostgreSQL
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"team-member-service/internal/config"
	"team-member-service/internal/repository/migrate"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := migrate.Run(cfg.DatabaseDSN, *direction); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	logger.Info("migrations done", slog.String("direction", *direction))
}
