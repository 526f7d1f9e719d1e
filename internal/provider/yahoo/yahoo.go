// Package yahoo fetches quotes from the Yahoo Finance chart endpoint.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"pricefetcher/internal/provider"
)

const defaultBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"

// HTTPClient describes the outbound HTTP client.
//
//go:generate mockgen -package=yahoo_test -destination=mock_http_client_test.go -source=yahoo.go HTTPClient
type HTTPClient interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

type Config struct {
	Name      string
	BaseURL   string
	UserAgent string
}

type Provider struct {
	cfg    Config
	client HTTPClient
}

func New(cfg Config, client HTTPClient) *Provider {
	if cfg.Name == "" {
		cfg.Name = provider.SourceYahoo
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "price-fetcher/1.0"
	}
	return &Provider{cfg: cfg, client: client}
}

func (p *Provider) Name() string { return p.cfg.Name }

// Fetch issues a single GET against the chart endpoint and extracts the
// quote from chart.result[0].meta. The quote timestamp is the wall clock at
// response time, not the upstream market time.
func (p *Provider) Fetch(ctx context.Context, symbol string) (*provider.Quote, error) {
	u := fmt.Sprintf("%s/%s", p.cfg.BaseURL, url.PathEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, provider.WrapError(provider.ErrUpstreamUnreachable, err)
	}
	req.Header.Set("User-Agent", p.cfg.UserAgent)

	resp, err := p.client.Do(ctx, req)
	if err != nil {
		return nil, provider.WrapError(provider.ErrUpstreamUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, provider.WrapError(provider.ErrUpstreamStatus, fmt.Errorf("status %d", resp.StatusCode))
	}

	var chart chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&chart); err != nil {
		return nil, provider.WrapError(provider.ErrMalformedPayload, err)
	}

	if len(chart.Chart.Result) == 0 || chart.Chart.Result[0].Meta == nil {
		return nil, provider.WrapError(provider.ErrMalformedPayload, fmt.Errorf("no chart result for %s", symbol))
	}
	meta := chart.Chart.Result[0].Meta

	price := meta.RegularMarketPrice.value
	if price == nil {
		return nil, provider.WrapError(provider.ErrMissingField, fmt.Errorf("regularMarketPrice"))
	}

	currency := meta.Currency
	if currency == "" {
		currency = "USD"
	}

	return &provider.Quote{
		Symbol:           symbol,
		Price:            *price,
		Currency:         currency,
		Timestamp:        time.Now().Unix(),
		Source:           p.cfg.Name,
		Change24h:        meta.RegularMarketChange.value,
		ChangePercent24h: meta.RegularMarketChangePercent.value,
	}, nil
}

// Chart endpoint response types. Only the meta block is consumed.
type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
	} `json:"chart"`
}

type chartResult struct {
	Meta *chartMeta `json:"meta"`
}

type chartMeta struct {
	Currency                   string        `json:"currency"`
	RegularMarketPrice         optionalFloat `json:"regularMarketPrice"`
	RegularMarketChange        optionalFloat `json:"regularMarketChange"`
	RegularMarketChangePercent optionalFloat `json:"regularMarketChangePercent"`
}

// optionalFloat decodes a JSON number and treats anything else (absent,
// null, or non-numeric) as not present.
type optionalFloat struct {
	value *float64
}

func (o *optionalFloat) UnmarshalJSON(b []byte) error {
	// Decoding into a pointer keeps an explicit null as nil.
	var f *float64
	if err := json.Unmarshal(b, &f); err == nil {
		o.value = f
	}
	return nil
}
