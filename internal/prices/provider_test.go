package prices

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProviderReturnsKnownSubset(t *testing.T) {
	p := NewStaticProvider(map[string]float64{"INFY": 1500, "TCS": 3600})

	got, err := p.Quote(context.Background(), []string{"INFY", "UNKNOWN", "TCS"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"INFY": 1500, "TCS": 3600}, got)
}

func TestStaticProviderEmpty(t *testing.T) {
	p := NewStaticProvider(nil)

	got, err := p.Quote(context.Background(), []string{"INFY"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func yahooBody(price float64) string {
	return fmt.Sprintf(`{"chart":{"result":[{"meta":{"regularMarketPrice":%g}}]}}`, price)
}

func TestYahooProviderParsesAndOmitsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v8/finance/chart/INFY":
			fmt.Fprint(w, yahooBody(1520.5))
		case "/v8/finance/chart/BAD":
			w.WriteHeader(http.StatusNotFound)
		default:
			fmt.Fprint(w, `{"chart":{"result":[]}}`)
		}
	}))
	defer srv.Close()

	p := NewYahooProvider(zerolog.Nop())
	p.baseURL = srv.URL

	got, err := p.Quote(context.Background(), []string{"infy ", "BAD", "EMPTY", ""})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"INFY": 1520.5}, got)
}

func TestYahooProviderCachesWithinTTL(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, yahooBody(1500))
	}))
	defer srv.Close()

	p := NewYahooProvider(zerolog.Nop())
	p.baseURL = srv.URL

	for i := 0; i < 3; i++ {
		got, err := p.Quote(context.Background(), []string{"INFY"})
		require.NoError(t, err)
		assert.InDelta(t, 1500, got["INFY"], 1e-9)
	}
	assert.Equal(t, int32(1), hits.Load())
}
