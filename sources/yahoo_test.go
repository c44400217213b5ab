package sources

import (
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tasepin/constants"
)

const chartBody = `{"chart":{"result":[{"meta":{"currency":"ILS","symbol":"TA35.TA","regularMarketPrice":2450.3,"previousClose":2437.6}}],"error":null}}`

func TestYahooFinance_Latest(t *testing.T) {
	var gotAgent, gotReferer, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		gotReferer = r.Header.Get("Referer")
		gotPath = r.URL.Path
		fmt.Fprint(w, chartBody)
	}))
	defer server.Close()

	yahoo := &YahooFinance{Endpoint: server.URL}
	quote, err := yahoo.Latest("TA35.TA")
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}

	if gotPath != "/v8/finance/chart/TA35.TA" {
		t.Errorf("request path = %s", gotPath)
	}

	if !strings.HasPrefix(gotAgent, "Mozilla/5.0") {
		t.Errorf("User-Agent = %q, want browser identity", gotAgent)
	}

	if !strings.Contains(gotReferer, "finance.yahoo.com/chart/TA35.TA") {
		t.Errorf("Referer = %q", gotReferer)
	}

	if quote.Price != 2450.3 {
		t.Errorf("Price = %v, want 2450.3", quote.Price)
	}

	want := (2450.3/2437.6 - 1) * 100
	if math.Abs(quote.ChangePercent-want) > 1e-9 {
		t.Errorf("ChangePercent = %v, want %v", quote.ChangePercent, want)
	}
}

func TestYahooFinance_Latest_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	yahoo := &YahooFinance{Endpoint: server.URL}
	_, err := yahoo.Latest("TA35.TA")
	if err != constants.ErrRateLimited {
		t.Errorf("Latest() error = %v, want ErrRateLimited", err)
	}
}

func TestYahooFinance_Latest_UnknownSymbol(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`)
	}))
	defer server.Close()

	yahoo := &YahooFinance{Endpoint: server.URL}
	_, err := yahoo.Latest("NOPE.TA")
	if err != constants.ErrSymbolNotFound {
		t.Errorf("Latest() error = %v, want ErrSymbolNotFound", err)
	}
}
