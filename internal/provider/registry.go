package provider

import (
	"strings"

	"go.uber.org/zap"
)

// External source aliases accepted on the wire.
const (
	SourceYahoo        = "yahoo"
	SourceAlphaVantage = "alpha_vantage"
	SourceMock         = "mock"

	// DefaultSource is used when a request carries no source parameter.
	DefaultSource = SourceYahoo
)

// Registry resolves a source alias to one of the three known providers.
// The set is closed: anything unrecognized falls back to the mock provider
// with a warning, so resolution never fails.
type Registry struct {
	log          *zap.Logger
	yahoo        Provider
	alphaVantage Provider
	mock         Provider
}

func NewRegistry(log *zap.Logger, yahoo, alphaVantage, mock Provider) *Registry {
	return &Registry{
		log:          log,
		yahoo:        yahoo,
		alphaVantage: alphaVantage,
		mock:         mock,
	}
}

// Resolve matches the alias case-insensitively.
func (r *Registry) Resolve(source string) Provider {
	switch strings.ToLower(source) {
	case SourceYahoo:
		return r.yahoo
	case SourceAlphaVantage:
		return r.alphaVantage
	case SourceMock:
		return r.mock
	default:
		r.log.Warn("unknown source, falling back to mock", zap.String("source", source))
		return r.mock
	}
}
