package provider

import "context"

// Quote is the normalized shape returned by all providers. It is built once
// at fetch time and serialized straight into the response, never stored.
type Quote struct {
	Symbol           string   `json:"symbol"`
	Price            float64  `json:"price"`
	Currency         string   `json:"currency"`
	Timestamp        int64    `json:"timestamp"`
	Source           string   `json:"source"`
	Change24h        *float64 `json:"change_24h"`
	ChangePercent24h *float64 `json:"change_percent_24h"`
}

type Provider interface {
	Name() string
	Fetch(ctx context.Context, symbol string) (*Quote, error)
}
