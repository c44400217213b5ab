package sources

import "tasepin/quotes"

// Source define index quote source
type Source interface {
	// Latest fetch last price and change percent for symbol
	Latest(symbol string) (*quotes.IndexQuote, error)
}
