// Package main запускает HTTP-сервис управления участниками команды
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"team-member-service/internal/config"
	httpapi "team-member-service/internal/http"
	"team-member-service/internal/metrics"
	"team-member-service/internal/model"
	"team-member-service/internal/repository"
	"team-member-service/internal/repository/migrate"
	"team-member-service/internal/service"
)

func main() {
	// Контекст для корректного завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Конфигурация из .env и ENV
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Инициализация логгера (JSON)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	seed, err := repository.LoadSeed(cfg.SeedFile)
	if err != nil {
		log.Fatalf("failed to load seed: %v", err)
	}

	var (
		memberService  *service.MemberService
		catalogService *service.CatalogService
	)

	if cfg.UsePostgres() {
		// 1. Миграции
		if cfg.MigrateOnStart {
			if err := migrate.Run(cfg.DatabaseDSN, "up"); err != nil {
				log.Fatalf("failed to migrate: %v", err)
			}
			logger.Info("migrations applied")
		}

		// 2. Подключение к БД и начальные данные
		db, err := repository.NewPostgres(ctx, cfg.DatabaseDSN)
		if err != nil {
			log.Fatalf("failed to init postgres: %v", err)
		}
		defer db.Pool.Close()

		if err := repository.SeedPostgres(ctx, db, seed, cfg.SeedDemoMembers); err != nil {
			log.Fatalf("failed to seed postgres: %v", err)
		}

		// 3. Репозитории, менеджер транзакций, сервисы
		txManager := repository.NewTransactionManager(db)
		memberService = service.NewMemberService(repository.NewMemberRepo(db), txManager)
		catalogService = service.NewCatalogService(repository.NewProjectRepo(db), repository.NewTaskRepo(db))

		logger.Info("using postgres storage")
	} else {
		var initial []model.MemberInput
		if cfg.SeedDemoMembers {
			initial = seed.Inputs()
		}

		memberService = service.NewMemberService(
			repository.NewMemoryMemberRepo(initial...),
			repository.NewMemoryTransactionManager(),
		)
		catalogService = service.NewCatalogService(
			repository.NewMemoryProjectRepo(seed.Projects),
			repository.NewMemoryTaskRepo(seed.Tasks),
		)

		logger.Info("using in-memory storage", slog.Int("members", len(initial)))
	}

	// 4. HTTP-обработчик
	handler := httpapi.NewHandler(memberService, catalogService, logger,
		httpapi.WithMetrics(metrics.New()),
		httpapi.WithAllowedOrigins(cfg.AllowedOrigins()),
	)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.Router(),
	}

	// Запуск сервера в горутине
	go func() {
		logger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("err", err))
			cancel()
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTTL())
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}
