// Package config загружает настройки сервиса и клиента из .env и окружения.
package config

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config: настройки HTTP-сервиса.
type Config struct {
	HTTPAddr           string `mapstructure:"HTTP_ADDR"`
	DatabaseDSN        string `mapstructure:"DB_DSN"`
	SeedFile           string `mapstructure:"SEED_FILE"`
	SeedDemoMembers    bool   `mapstructure:"SEED_DEMO_MEMBERS"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	ShutdownTimeout    string `mapstructure:"SHUTDOWN_TIMEOUT"`
	MigrateOnStart     bool   `mapstructure:"MIGRATE_ON_START"`
}

// ClientConfig: настройки клиента API.
type ClientConfig struct {
	APIURL  string `mapstructure:"TEAM_API_URL"`
	Timeout string `mapstructure:"CLIENT_TIMEOUT"`
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // .env необязателен

	v.AutomaticEnv()
	return v
}

// Load читает настройки сервиса. Без DB_DSN сервис работает на хранилище в памяти.
func Load() (*Config, error) {
	v := newViper()

	v.SetDefault("HTTP_ADDR", ":8081")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("SEED_FILE", "")
	v.SetDefault("SEED_DEMO_MEMBERS", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("SHUTDOWN_TIMEOUT", "5s")
	v.SetDefault("MIGRATE_ON_START", true)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("config: HTTP_ADDR must be set")
	}

	return &cfg, nil
}

// LoadClient читает настройки клиента.
func LoadClient() (*ClientConfig, error) {
	v := newViper()

	v.SetDefault("TEAM_API_URL", "http://localhost:8081")
	v.SetDefault("CLIENT_TIMEOUT", "10s")

	var cfg ClientConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.APIURL = strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	if cfg.APIURL == "" {
		return nil, errors.New("config: TEAM_API_URL must be set")
	}

	return &cfg, nil
}

// UsePostgres сообщает, что задан DSN и нужно хранилище Postgres.
func (c *Config) UsePostgres() bool {
	return strings.TrimSpace(c.DatabaseDSN) != ""
}

// ShutdownTTL возвращает таймаут остановки; при ошибке разбора: 5s.
func (c *Config) ShutdownTTL() time.Duration {
	d, err := time.ParseDuration(c.ShutdownTimeout)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}

// AllowedOrigins разбирает CORS_ALLOWED_ORIGINS через запятую.
func (c *Config) AllowedOrigins() []string {
	if c == nil || strings.TrimSpace(c.CORSAllowedOrigins) == "" {
		return []string{"*"}
	}
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SlogLevel переводит LOG_LEVEL в уровень slog. Неизвестные значения: info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// RequestTimeout возвращает таймаут запросов клиента; при ошибке разбора: 10s.
func (c *ClientConfig) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}
