package quotes

import (
	"errors"
	"strings"

	"tasepin/constants"
)

var (
	// YahooNotFoundCode define errors raised by yahoo finance on symbol not found
	YahooNotFoundCode = "Not Found"
)

// YahooChart define yahoo finance chart response structure
type YahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency           string  `json:"currency"`
				Symbol             string  `json:"symbol"`
				ExchangeName       string  `json:"exchangeName"`
				InstrumentType     string  `json:"instrumentType"`
				Timezone           string  `json:"timezone"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				RegularMarketTime  int64   `json:"regularMarketTime"`
				PreviousClose      float64 `json:"previousClose"`
				ChartPreviousClose float64 `json:"chartPreviousClose"`
			} `json:"meta"`
		} `json:"result"`
		Err *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Validate validate response is valid
func (q YahooChart) Validate() error {
	// yahoo error
	if q.Chart.Err != nil {
		if q.Chart.Err.Code == YahooNotFoundCode {
			return constants.ErrSymbolNotFound
		}
		if strings.Contains(strings.ToLower(q.Chart.Err.Description), "too many requests") {
			return constants.ErrRateLimited
		}
		return errors.New(q.Chart.Err.Description)
	}

	if len(q.Chart.Result) == 0 {
		return errors.New("chart.Result is null")
	}

	if q.Chart.Result[0].Meta.RegularMarketPrice == 0 {
		return errors.New("chart.Result[0].Meta.RegularMarketPrice is zero")
	}

	return nil
}

// ToIndexQuote convert chart response to index quote
func (q YahooChart) ToIndexQuote(symbol string) *IndexQuote {
	meta := q.Chart.Result[0].Meta

	prevClose := meta.PreviousClose
	if prevClose == 0 {
		prevClose = meta.ChartPreviousClose
	}

	changePercent := float64(0)
	if prevClose != 0 {
		changePercent = (meta.RegularMarketPrice/prevClose - 1) * 100
	}

	return &IndexQuote{
		Symbol:        symbol,
		Price:         meta.RegularMarketPrice,
		ChangePercent: changePercent,
	}
}
