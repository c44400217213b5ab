package sources

import (
	"fmt"
	"net/http"
	"net/url"

	"tasepin/constants"
	"tasepin/quotes"
	"tasepin/utils"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

// DefaultEndpoint yahoo finance chart api endpoint
const DefaultEndpoint = "https://query1.finance.yahoo.com"

// userAgent common desktop browser identity, the chart api rejects bare clients
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// YahooFinance yahoo finance source
type YahooFinance struct {
	// Endpoint chart api base url, overridable in tests
	Endpoint string
}

// NewYahooFinance create yahoo finance source
func NewYahooFinance() *YahooFinance {
	return &YahooFinance{Endpoint: DefaultEndpoint}
}

// Latest fetch last price and change percent for symbol
func (yahoo YahooFinance) Latest(symbol string) (*quotes.IndexQuote, error) {
	pattern := "%s/v8/finance/chart/%s?range=1d&interval=1m&includePrePost=false"
	address := fmt.Sprintf(pattern, yahoo.Endpoint, url.PathEscape(symbol))

	header := map[string]string{
		"User-Agent": userAgent,
		"referer":    "https://finance.yahoo.com/chart/" + url.PathEscape(symbol),
	}

	// query quote from yahoo api, single attempt, caller falls back on failure
	code, buffer, err := utils.TryDownloadBytesWithHeader(address, header, constants.FetchAttempts, constants.FetchRetryInterval)
	if err != nil {
		zap.L().Warn("download yahoo finance quote failed", zap.Error(err), zap.String("symbol", symbol))
		return nil, err
	}

	if code == http.StatusTooManyRequests {
		zap.L().Warn("yahoo finance rate limited", zap.String("symbol", symbol))
		return nil, constants.ErrRateLimited
	}

	if code != http.StatusOK {
		return nil, fmt.Errorf("response status code %d", code)
	}

	// parse json
	chart := new(quotes.YahooChart)
	err = sonic.Unmarshal(buffer, chart)
	if err != nil {
		zap.L().Warn("unmarshal raw response json failed",
			zap.Error(err),
			zap.String("symbol", symbol),
			zap.ByteString("json", buffer))
		return nil, err
	}

	// validate response json
	err = chart.Validate()
	if err != nil {
		zap.L().Warn("yahoo chart validate failed",
			zap.Error(err),
			zap.String("symbol", symbol),
			zap.ByteString("json", buffer))
		return nil, err
	}

	return chart.ToIndexQuote(symbol), nil
}
