package synthetic

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pricefetcher/internal/provider"
)

func fixed(unix int64) func() time.Time {
	return func() time.Time { return time.Unix(unix, 0) }
}

func TestFetch_KnownSymbols_FormulaPrice(t *testing.T) {
	t.Parallel()

	// unix=1700000042 -> 42%100 -> variation = 0.42 - 0.5 = -0.08
	const unix = 1700000042
	variation := float64(unix%100)/100.0 - 0.5

	p := New()
	p.Now = fixed(unix)

	for symbol, base := range basePrices {
		q, err := p.Fetch(t.Context(), symbol)
		require.NoError(t, err)

		want := math.Round(base*(1+variation*0.1)*100) / 100
		require.Equal(t, want, q.Price, "symbol %s", symbol)
		require.Equal(t, symbol, q.Symbol)
		require.Equal(t, "USD", q.Currency)
		require.Equal(t, provider.SourceMock, q.Source)
		require.Equal(t, int64(unix), q.Timestamp)
	}
}

func TestFetch_UnknownSymbol_LengthBasedPrice(t *testing.T) {
	t.Parallel()

	// unix%100 == 50 -> variation = 0, price equals the base exactly
	p := New()
	p.Now = fixed(1700000050)

	q, err := p.Fetch(t.Context(), "XYZ")
	require.NoError(t, err)
	require.Equal(t, 100.0+10.0*3, q.Price)

	q, err = p.Fetch(t.Context(), "LONGTICKER")
	require.NoError(t, err)
	require.Equal(t, 100.0+10.0*10, q.Price)
}

func TestFetch_ChangeFields_AlwaysPresent(t *testing.T) {
	t.Parallel()

	const unix = 1700000077 // variation = 0.27
	variation := float64(unix%100)/100.0 - 0.5

	p := New()
	p.Now = fixed(unix)

	q, err := p.Fetch(t.Context(), "AAPL")
	require.NoError(t, err)
	require.NotNil(t, q.Change24h)
	require.NotNil(t, q.ChangePercent24h)
	require.InDelta(t, variation*5.0, *q.Change24h, 1e-9)
	require.InDelta(t, variation*2.0, *q.ChangePercent24h, 1e-9)
}

func TestFetch_NeverFails(t *testing.T) {
	t.Parallel()

	p := New()
	for _, symbol := range []string{"A", "ZZZZZZZZZZ", "BRK.B", "600519.SS", "!!"} {
		q, err := p.Fetch(t.Context(), symbol)
		require.NoError(t, err, "symbol %q", symbol)
		require.NotNil(t, q)
		require.False(t, math.IsNaN(q.Price))
		require.False(t, math.IsInf(q.Price, 0))
	}
}

func TestName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "mock", New().Name())
}
