package constants

import "errors"

var (
	// ErrSymbolNotFound symbol unknown to the quote provider
	ErrSymbolNotFound = errors.New("symbol not found")
	// ErrRateLimited quote provider rejected the request due to rate limiting
	ErrRateLimited = errors.New("rate limited")
)
