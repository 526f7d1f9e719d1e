package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"pricefetcher/internal/metrics"
	"pricefetcher/internal/provider"
)

type healthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp int64  `json:"timestamp"`
}

// handleHealth always answers 200, regardless of upstream reachability.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Service:   serviceName,
		Timestamp: time.Now().Unix(),
	})
}

func (s *Server) handlePrice(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(mux.Vars(r)["symbol"])
	source := r.URL.Query().Get("source")
	if source == "" {
		source = provider.DefaultSource
	}

	s.log.Info("fetching price", zap.String("symbol", symbol), zap.String("source", source))

	p := s.providers.Resolve(source)
	q, err := p.Fetch(r.Context(), symbol)
	metrics.RecordFetch(p.Name(), err)
	if err != nil {
		s.log.Warn("price fetch failed", zap.String("symbol", symbol), zap.Error(err))
		writeError(w, http.StatusBadRequest, "PRICE_FETCH_FAILED",
			fmt.Sprintf("Failed to fetch price for %s: %v", symbol, err))
		return
	}

	s.log.Info("fetched price",
		zap.String("symbol", symbol),
		zap.Float64("price", q.Price),
		zap.String("source", q.Source))
	writeJSON(w, http.StatusOK, q)
}

func (s *Server) handlePrices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("symbols") {
		writeError(w, http.StatusBadRequest, "MISSING_SYMBOLS",
			"Missing 'symbols' parameter. Use comma-separated values like: ?symbols=AAPL,TSLA,MSFT")
		return
	}

	symbols := strings.Split(query.Get("symbols"), ",")
	source := query.Get("source")
	if source == "" {
		source = provider.DefaultSource
	}

	s.log.Info("fetching prices",
		zap.Int("symbols", len(symbols)),
		zap.String("source", source))

	p := s.providers.Resolve(source)
	res := s.agg.FetchBatch(r.Context(), p, symbols)
	metrics.QuoteFetches.WithLabelValues(p.Name(), "success").Add(float64(len(res.Quotes)))
	metrics.QuoteFetches.WithLabelValues(p.Name(), "error").Add(float64(len(res.Failures)))

	if res.AllFailed() {
		writeError(w, http.StatusBadRequest, "ALL_PRICES_FAILED",
			"Failed to fetch any prices. Errors: "+res.ErrorSummary())
		return
	}

	// Failed symbols are dropped from the array on purpose; clients only
	// receive the quotes that succeeded.
	writeJSON(w, http.StatusOK, res.Quotes)
}
