package main

import (
	"Catalogue/internal/config"
	"Catalogue/internal/handlers"
	"Catalogue/internal/middleware"
	"Catalogue/internal/repo"
	"Catalogue/internal/service"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	itemRepo, closeDB, err := openItemRepository(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}
	defer closeDB()

	itemService := service.NewItemService(itemRepo, sugar)
	if cfg.Seed {
		if _, err := itemService.Seed(ctx); err != nil {
			sugar.Fatalw("failed to seed catalogue", "error", err)
		}
	}

	h, err := handlers.NewHandler(itemService, sugar, cfg)
	if err != nil {
		sugar.Fatalw("failed to build handlers", "error", err)
	}

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
		"CORSOrigins", cfg.CORSOrigins,
		"Seed", cfg.Seed,
	)

	srv := &http.Server{
		Addr:         cfg.BaseURL,
		Handler:      h.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		sugar.Infow("Starting server", "addr", srv.Addr, "https", cfg.EnableHTTPS)
		if cfg.EnableHTTPS {
			serverErrors <- srv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
			return
		}
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			sugar.Errorw("Server failed", "error", err)
		}
	case <-ctx.Done():
		sugar.Infow("Shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("Graceful shutdown failed", "error", err)
			return
		}
		sugar.Infow("Server stopped gracefully")
	}
}

// openItemRepository выбирает хранилище по DATABASE_URI: memory или gorm (postgres/sqlite).
func openItemRepository(dsn string) (repo.ItemRepository, func(), error) {
	if repo.IsMemoryDSN(dsn) {
		return repo.NewMemoryItemRepository(), func() {}, nil
	}
	gormDB, err := repo.InitDB(dsn)
	if err != nil {
		return nil, nil, err
	}
	return repo.NewItemRepository(gormDB), func() { _ = repo.Close(gormDB) }, nil
}
