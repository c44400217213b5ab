package sources

import (
	"tasepin/quotes"

	"go.uber.org/zap"
)

// Fetcher fetch quotes for a set of symbols, substituting placeholders on failure
type Fetcher struct {
	source Source
}

// NewFetcher create fetcher
func NewFetcher(source Source) *Fetcher {
	return &Fetcher{source: source}
}

// Fetch fetch quotes for all symbols. The returned map always covers every
// requested symbol: a symbol whose fetch fails gets a fallback quote instead,
// so failures never escape the fetcher.
func (s Fetcher) Fetch(symbols []string) map[string]*quotes.IndexQuote {
	results := make(map[string]*quotes.IndexQuote, len(symbols))
	for _, symbol := range symbols {
		quote, err := s.source.Latest(symbol)
		if err != nil {
			zap.L().Warn("fetch quote failed, substituting placeholder",
				zap.Error(err),
				zap.String("symbol", symbol))
			results[symbol] = quotes.NewFallbackQuote(symbol)
			continue
		}

		results[symbol] = quote
	}

	return results
}
