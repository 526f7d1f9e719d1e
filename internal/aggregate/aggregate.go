// Package aggregate fans a batch of symbols out to a provider and partitions
// the results into successes and failures.
package aggregate

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pricefetcher/internal/provider"
)

// Failure records one symbol that could not be priced.
type Failure struct {
	Symbol  string
	Message string
}

// Result partitions a batch into ordered successes and ordered failures.
// Both slices follow the order the symbols were requested in.
type Result struct {
	Quotes   []provider.Quote
	Failures []Failure
}

// AllFailed reports whether every symbol in the batch failed.
func (r Result) AllFailed() bool {
	return len(r.Quotes) == 0 && len(r.Failures) > 0
}

// ErrorSummary joins every failure as "SYMBOL: message", comma-separated.
func (r Result) ErrorSummary() string {
	parts := make([]string, 0, len(r.Failures))
	for _, f := range r.Failures {
		parts = append(parts, f.Symbol+": "+f.Message)
	}
	return strings.Join(parts, ", ")
}

// Normalize trims and uppercases each symbol.
func Normalize(symbols []string) []string {
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, strings.ToUpper(strings.TrimSpace(s)))
	}
	return out
}

type Aggregator struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Aggregator {
	return &Aggregator{log: log}
}

// FetchBatch fetches every symbol independently. One symbol failing does not
// abort the others; failures are logged and collected. Fetches run
// concurrently but land in indexed slots, so the result is identical to a
// sequential loop.
func (a *Aggregator) FetchBatch(ctx context.Context, p provider.Provider, symbols []string) Result {
	syms := Normalize(symbols)

	quotes := make([]*provider.Quote, len(syms))
	errs := make([]error, len(syms))

	var g errgroup.Group
	for i, symbol := range syms {
		g.Go(func() error {
			quotes[i], errs[i] = p.Fetch(ctx, symbol)
			return nil
		})
	}
	_ = g.Wait()

	res := Result{Quotes: make([]provider.Quote, 0, len(syms))}
	for i, symbol := range syms {
		if errs[i] != nil {
			a.log.Warn("price fetch failed",
				zap.String("symbol", symbol),
				zap.String("provider", p.Name()),
				zap.Error(errs[i]))
			res.Failures = append(res.Failures, Failure{Symbol: symbol, Message: errs[i].Error()})
			continue
		}
		res.Quotes = append(res.Quotes, *quotes[i])
	}
	return res
}
