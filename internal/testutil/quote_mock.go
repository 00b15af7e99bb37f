package testutil

import (
	"fmt"
	"sync"
	"time"

	"github.com/dkersten/stock-portfolio-tracker/internal/yahoo"
)

// MockQuoteClient is a mock implementation of yahoo.Client for testing.
// It serves predefined per-ticker prices instead of making API calls.
//
// Example usage:
//
//	quotes := testutil.NewMockQuoteClient().
//	    WithPrice("AAPL", 180).
//	    WithMissing("GONE")
type MockQuoteClient struct {
	// Prices maps ticker to the closing price the mock serves.
	Prices map[string]float64
	// Names maps ticker to the long company name carried in chart metadata.
	// Tickers without an entry are served with empty name fields.
	Names map[string]string
	// Missing marks tickers whose queries fail with a "no results" error,
	// mimicking what the real client returns for unknown symbols.
	Missing map[string]bool
	// Err, when set, is returned from every query method.
	Err error
	// QueryCount tracks how many query calls were made. Guarded by mu since
	// bulk refreshes query concurrently.
	QueryCount int

	mu sync.Mutex
}

// NewMockQuoteClient creates a mock with no configured tickers; every lookup
// fails until prices are added.
func NewMockQuoteClient() *MockQuoteClient {
	return &MockQuoteClient{
		Prices:  make(map[string]float64),
		Names:   make(map[string]string),
		Missing: make(map[string]bool),
	}
}

// WithPrice configures the closing price served for a ticker.
func (m *MockQuoteClient) WithPrice(ticker string, price float64) *MockQuoteClient {
	m.Prices[ticker] = price
	return m
}

// WithCompany configures the long company name served in chart metadata.
func (m *MockQuoteClient) WithCompany(ticker, name string) *MockQuoteClient {
	m.Names[ticker] = name
	return m
}

// WithMissing marks a ticker as having no data.
func (m *MockQuoteClient) WithMissing(ticker string) *MockQuoteClient {
	m.Missing[ticker] = true
	return m
}

// WithError configures the mock to fail every query with err.
func (m *MockQuoteClient) WithError(err error) *MockQuoteClient {
	m.Err = err
	return m
}

func (m *MockQuoteClient) respond(symbol string) (yahoo.Response, error) {
	m.mu.Lock()
	m.QueryCount++
	m.mu.Unlock()

	if m.Err != nil {
		return yahoo.Response{}, m.Err
	}
	if m.Missing[symbol] {
		return yahoo.Response{}, fmt.Errorf("no results returned for symbol %s", symbol)
	}
	price, ok := m.Prices[symbol]
	if !ok {
		return yahoo.Response{}, fmt.Errorf("no results returned for symbol %s", symbol)
	}

	resp := MakeChartResponse(symbol, price, 5)
	if name, ok := m.Names[symbol]; ok {
		resp.Chart.Result[0].Meta.LongName = name
	}
	return resp, nil
}

// QueryYahooFiveDaySymbol serves the configured price for the symbol.
func (m *MockQuoteClient) QueryYahooFiveDaySymbol(symbol string) (yahoo.Response, error) {
	return m.respond(symbol)
}

// QueryYahooRangeSymbol serves the configured price for the symbol.
func (m *MockQuoteClient) QueryYahooRangeSymbol(symbol, _ string) (yahoo.Response, error) {
	return m.respond(symbol)
}

// QueryYahooSymbolByDateRange serves the configured price for the symbol.
func (m *MockQuoteClient) QueryYahooSymbolByDateRange(symbol string, _, _ time.Time) (yahoo.Response, error) {
	return m.respond(symbol)
}

// ParseChart delegates to the real implementation since it is pure logic.
func (m *MockQuoteClient) ParseChart(yahooResult yahoo.Response) (yahoo.PriceChart, error) {
	return yahoo.NewFinanceClient().ParseChart(yahooResult)
}

// MakeChartResponse builds a chart API response with `days` daily data points
// ending yesterday, every close set to the given price.
func MakeChartResponse(symbol string, price float64, days int) yahoo.Response {
	end := time.Now().UTC().Truncate(24 * time.Hour)

	result := yahoo.Result{
		Meta: yahoo.Meta{
			Currency: "USD",
			Symbol:   symbol,
		},
	}

	quote := yahoo.Quote{}
	for i := days; i > 0; i-- {
		day := end.AddDate(0, 0, -i)
		result.Timestamp = append(result.Timestamp, day.Unix())
		quote.Open = append(quote.Open, price)
		quote.Close = append(quote.Close, price)
		quote.High = append(quote.High, price)
		quote.Low = append(quote.Low, price)
		quote.Volume = append(quote.Volume, 1_000_000)
	}
	result.Indicators.Quote = []yahoo.Quote{quote}

	return yahoo.Response{
		Chart: yahoo.Chart{
			Result: []yahoo.Result{result},
		},
	}
}
