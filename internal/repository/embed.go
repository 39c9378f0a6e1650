package repository

import "embed"

// MigrationFS содержит SQL-миграции схемы PostgreSQL.
//
//go:embed migrations/*.sql
var MigrationFS embed.FS

//go:embed seed/default.yaml
var defaultSeed []byte
