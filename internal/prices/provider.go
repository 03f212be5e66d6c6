// Package prices supplies current market prices for held symbols. The result
// map may be partial: a symbol the provider cannot price is simply absent,
// and downstream consumers report its valuation as unpriced rather than zero.
package prices

import "context"

// Provider fetches current prices for a set of symbols. Implementations
// return whatever subset they could resolve; a missing symbol is not an
// error.
type Provider interface {
	Quote(ctx context.Context, symbols []string) (map[string]float64, error)
}

// StaticProvider serves a fixed price map. Used for offline runs and tests.
type StaticProvider struct {
	Prices map[string]float64
}

// NewStaticProvider creates a provider over a fixed map.
func NewStaticProvider(prices map[string]float64) *StaticProvider {
	return &StaticProvider{Prices: prices}
}

// Quote returns the subset of symbols present in the fixed map.
func (p *StaticProvider) Quote(_ context.Context, symbols []string) (map[string]float64, error) {
	out := make(map[string]float64, len(symbols))
	for _, sym := range symbols {
		if price, ok := p.Prices[sym]; ok {
			out[sym] = price
		}
	}
	return out, nil
}
