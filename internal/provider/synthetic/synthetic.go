// Package synthetic generates deterministic mock quotes so the service works
// without any live upstream configured.
package synthetic

import (
	"context"
	"math"
	"time"

	"pricefetcher/internal/provider"
)

// basePrices holds realistic base prices for well-known tickers. Anything
// else is priced off its symbol length.
var basePrices = map[string]float64{
	"AAPL":  150.0,
	"TSLA":  200.0,
	"MSFT":  300.0,
	"GOOGL": 2500.0,
	"AMZN":  3000.0,
	"NVDA":  400.0,
	"META":  250.0,
	"NFLX":  400.0,
}

// Provider computes quotes from a fixed table plus a time-derived variation
// factor in [-0.5, 0.5). It never fails.
type Provider struct {
	// Now is the clock used for the variation factor and quote timestamps.
	Now func() time.Time
}

func New() *Provider {
	return &Provider{Now: time.Now}
}

func (p *Provider) Name() string { return provider.SourceMock }

func (p *Provider) Fetch(_ context.Context, symbol string) (*provider.Quote, error) {
	now := p.Now()

	base, ok := basePrices[symbol]
	if !ok {
		base = 100.0 + 10.0*float64(len(symbol))
	}

	variation := float64(now.Unix()%100)/100.0 - 0.5
	price := base * (1 + variation*0.1)

	change := variation * 5.0
	changePercent := variation * 2.0

	return &provider.Quote{
		Symbol: symbol,
		// Round half away from zero, to 2 decimal places.
		Price:            math.Round(price*100) / 100,
		Currency:         "USD",
		Timestamp:        now.Unix(),
		Source:           provider.SourceMock,
		Change24h:        &change,
		ChangePercent24h: &changePercent,
	}, nil
}
