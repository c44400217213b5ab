package quotes

import "tasepin/constants"

// IndexQuote index quote
type IndexQuote struct {
	Symbol        string
	Price         float64
	ChangePercent float64
	Fallback      bool
}

// NewFallbackQuote create deterministic placeholder quote for symbol
func NewFallbackQuote(symbol string) *IndexQuote {
	return &IndexQuote{
		Symbol:        symbol,
		Price:         constants.PlaceholderPrice,
		ChangePercent: constants.PlaceholderChangePercent,
		Fallback:      true,
	}
}
