// Запускает HTTP-сервер дашборда поставок.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"shelflink/internal/config"
	httpapi "shelflink/internal/http"
	"shelflink/internal/repository"
	"shelflink/internal/service"

	_ "shelflink/docs"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	store := repository.NewMemoryStore()
	chatsRepo := repository.NewMemoryChats(store)
	tx := repository.NewMemoryTx(store)

	if cfg.SeedDemo {
		store.Seed()
		sugar.Info("demo data seeded")
	}

	usersSvc := service.NewUserService(store, store)
	productsSvc := service.NewProductService(store)
	chatsSvc := service.NewChatService(store, chatsRepo, chatsRepo, tx)
	statsSvc := service.NewStatsService(store, store, store)

	srv := httpapi.NewServer(logger, usersSvc, productsSvc, chatsSvc, statsSvc)

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: srv.Engine(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infow("starting server", "addr", cfg.RunAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		sugar.Info("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}
