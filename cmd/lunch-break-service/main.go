// Package main запускает HTTP-сервис учёта обеденных перерывов
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lunch-break-service/internal/config"
	httpapi "lunch-break-service/internal/http"
	"lunch-break-service/internal/repository"
	"lunch-break-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("err", err))
		os.Exit(1)
	}

	// Инициализация логгера (JSON)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("service stopped with error", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Подключение к БД
	db, err := repository.NewPostgres(ctx, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.MigrateOnStart {
		if err := repository.Migrate(cfg.DatabaseDSN); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	// 1. Репозитории и менеджер транзакций
	teamRepo := repository.NewTeamRepo(db)
	personRepo := repository.NewPersonRepo(db)
	txManager := repository.NewTransactionManager(db)

	// 2. Сервисы
	teamService := service.NewTeamService(teamRepo, personRepo, txManager)
	personService := service.NewPersonService(personRepo)

	// 3. HTTP-обработчик
	handler := httpapi.NewHandler(teamService, personService, db, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logger.Info("shutting down server", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return err
	}

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
	return nil
}
