package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"pricefetcher/internal/aggregate"
	"pricefetcher/internal/api"
	"pricefetcher/internal/config"
	"pricefetcher/internal/httpx"
	"pricefetcher/internal/logger"
	"pricefetcher/internal/provider"
	"pricefetcher/internal/provider/alphavantage"
	"pricefetcher/internal/provider/synthetic"
	"pricefetcher/internal/provider/yahoo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logg := logger.Must(cfg.Debug)
	defer logg.Sync()

	httpClient := httpx.New(time.Duration(cfg.RequestTimeoutSec) * time.Second)

	mock := synthetic.New()
	registry := provider.NewRegistry(logg,
		yahoo.New(yahoo.Config{}, httpClient),
		alphavantage.New(logg, mock),
		mock)

	srv := api.NewServer(api.Config{Host: cfg.Host, Port: cfg.Port},
		logg, registry, aggregate.New(logg))

	go func() {
		if err := srv.Start(); err != nil {
			logg.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Warn("shutdown", zap.Error(err))
	}
}
