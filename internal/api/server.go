// Package api exposes the HTTP surface of the price fetcher.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"pricefetcher/internal/aggregate"
	"pricefetcher/internal/metrics"
	"pricefetcher/internal/provider"
)

const serviceName = "price-fetcher"

type Config struct {
	Host string
	Port int
}

type Server struct {
	httpServer *http.Server
	log        *zap.Logger
	providers  *provider.Registry
	agg        *aggregate.Aggregator
}

func NewServer(cfg Config, log *zap.Logger, providers *provider.Registry, agg *aggregate.Aggregator) *Server {
	s := &Server{
		log:       log,
		providers: providers,
		agg:       agg,
	}

	router := mux.NewRouter()
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/price/{symbol}", s.handlePrice).Methods(http.MethodGet)
	router.HandleFunc("/prices", s.handlePrices).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           cors(recoverPanic(log, metrics.Middleware(router))),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Handler returns the fully wrapped handler chain, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	s.log.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
