package prices

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// YahooProvider fetches spot quotes from the Yahoo Finance v8 chart endpoint,
// with a short per-symbol cache so repeated dashboard refreshes do not hammer
// the API. Symbols that fail to resolve are logged and left out of the result.
type YahooProvider struct {
	cli     *http.Client
	log     zerolog.Logger
	baseURL string
	ttl     time.Duration
	mu      sync.RWMutex
	cache   map[string]cachedQuote
}

type cachedQuote struct {
	price   float64
	fetched time.Time
}

// NewYahooProvider creates a Yahoo-backed provider.
func NewYahooProvider(log zerolog.Logger) *YahooProvider {
	return &YahooProvider{
		cli:     &http.Client{Timeout: 8 * time.Second},
		log:     log.With().Str("component", "prices").Logger(),
		baseURL: "https://query2.finance.yahoo.com",
		ttl:     60 * time.Second,
		cache:   make(map[string]cachedQuote),
	}
}

// Quote resolves as many of the requested symbols as it can.
func (p *YahooProvider) Quote(ctx context.Context, symbols []string) (map[string]float64, error) {
	out := make(map[string]float64, len(symbols))
	for _, raw := range symbols {
		symbol := strings.ToUpper(strings.TrimSpace(raw))
		if symbol == "" {
			continue
		}

		price, err := p.quoteOne(ctx, symbol)
		if err != nil {
			p.log.Warn().Str("symbol", symbol).Err(err).Msg("Price fetch failed")
			continue
		}
		out[symbol] = price
	}
	return out, nil
}

func (p *YahooProvider) quoteOne(ctx context.Context, symbol string) (float64, error) {
	p.mu.RLock()
	if c, ok := p.cache[symbol]; ok && time.Since(c.fetched) < p.ttl {
		p.mu.RUnlock()
		return c.price, nil
	}
	p.mu.RUnlock()

	url := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1m&range=1d", p.baseURL, symbol)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", "trade-journal/1.0")

	resp, err := p.cli.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("yahoo http %d", resp.StatusCode)
	}

	var raw struct {
		Chart struct {
			Result []struct {
				Meta struct {
					RegularMarketPrice float64 `json:"regularMarketPrice"`
				} `json:"meta"`
			} `json:"result"`
		} `json:"chart"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return 0, err
	}
	if len(raw.Chart.Result) == 0 || raw.Chart.Result[0].Meta.RegularMarketPrice <= 0 {
		return 0, fmt.Errorf("yahoo: no result for %s", symbol)
	}

	price := raw.Chart.Result[0].Meta.RegularMarketPrice
	p.mu.Lock()
	p.cache[symbol] = cachedQuote{price: price, fetched: time.Now()}
	p.mu.Unlock()
	return price, nil
}
