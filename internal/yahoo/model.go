package yahoo

import "time"

// Response represents the raw JSON response structure from the Yahoo Finance
// chart API. The nested types are named so that tests can construct responses
// directly.
type Response struct {
	Chart Chart `json:"chart"`
}

// Chart is the top-level payload of a chart API response.
type Chart struct {
	Result []Result `json:"result"`
	Error  *string  `json:"error"`
}

// Result holds metadata, timestamps and price indicators for one symbol.
type Result struct {
	Meta       Meta    `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []Quote `json:"quote"`
	} `json:"indicators"`
}

// Meta carries symbol metadata returned alongside the price series.
type Meta struct {
	Currency         string `json:"currency"`
	Symbol           string `json:"symbol"`
	ExchangeName     string `json:"exchangeName"`
	FullExchangeName string `json:"fullExchangeName"`
	LongName         string `json:"longName"`
	Shortname        string `json:"shortName"`
}

// Quote holds the parallel OHLCV arrays of a chart result.
type Quote struct {
	Open   []float64 `json:"open"`
	Close  []float64 `json:"close"`
	Volume []int64   `json:"volume"`
	High   []float64 `json:"high"`
	Low    []float64 `json:"low"`
}

// PriceChart represents a parsed and structured price chart. This is the
// application's internal representation after parsing the raw Response,
// providing type-safe access to price data with proper time.Time dates.
type PriceChart struct {
	Currency         string       `json:"currency"`
	Symbol           string       `json:"symbol"`
	ExchangeName     string       `json:"exchangeName"`
	FullExchangeName string       `json:"fullExchangeName"`
	LongName         string       `json:"longName"`
	Shortname        string       `json:"shortName"`
	Indicators       []Indicators `json:"indicators"`
}

// Indicators represents a single day's price data for a financial instrument:
// the standard OHLCV values with the date truncated to midnight UTC.
type Indicators struct {
	Date       time.Time
	PriceOpen  float64
	PriceClose float64
	Volume     int64
	PriceHigh  float64
	PriceLow   float64
}
