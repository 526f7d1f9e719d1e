// Package alphavantage is a stub: the real Alpha Vantage API needs an API
// key this service does not manage, so every fetch is served by the mock
// provider instead.
package alphavantage

import (
	"context"

	"go.uber.org/zap"

	"pricefetcher/internal/provider"
)

type Provider struct {
	log      *zap.Logger
	delegate provider.Provider
}

func New(log *zap.Logger, delegate provider.Provider) *Provider {
	return &Provider{log: log, delegate: delegate}
}

func (p *Provider) Name() string { return provider.SourceAlphaVantage }

func (p *Provider) Fetch(ctx context.Context, symbol string) (*provider.Quote, error) {
	p.log.Warn("alpha vantage requires an API key, serving mock data",
		zap.String("symbol", symbol))
	return p.delegate.Fetch(ctx, symbol)
}
