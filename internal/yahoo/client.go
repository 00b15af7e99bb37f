package yahoo

import "time"

// ValidPeriods enumerates the range strings accepted by the chart API.
var ValidPeriods = map[string]bool{
	"1d": true, "5d": true, "1mo": true, "3mo": true, "6mo": true,
	"1y": true, "2y": true, "5y": true, "10y": true, "ytd": true, "max": true,
}

// Client is the interface consumed by the service layer for quote lookups.
// FinanceClient implements it against the live Yahoo Finance API; tests
// substitute a mock.
type Client interface {
	// QueryYahooFiveDaySymbol fetches the last 5 trading days of daily data,
	// typically used to get the latest available closing price.
	QueryYahooFiveDaySymbol(symbol string) (Response, error)

	// QueryYahooRangeSymbol fetches daily data for a named range such as
	// "1mo" or "1y" (see ValidPeriods).
	QueryYahooRangeSymbol(symbol, period string) (Response, error)

	// QueryYahooSymbolByDateRange fetches daily data between two dates,
	// inclusive, for historical backfilling.
	QueryYahooSymbolByDateRange(symbol string, startDate, endDate time.Time) (Response, error)

	// ParseChart converts a raw API response into a structured PriceChart.
	ParseChart(yahooResult Response) (PriceChart, error)
}
