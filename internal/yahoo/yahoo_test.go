package yahoo

import (
	"testing"
	"time"
)

func chartResponse(symbol string, timestamps []int64, closes []float64) Response {
	result := Result{
		Meta: Meta{
			Currency: "USD",
			Symbol:   symbol,
		},
		Timestamp: timestamps,
	}

	quote := Quote{Close: closes}
	for range closes {
		quote.Open = append(quote.Open, 0)
		quote.High = append(quote.High, 0)
		quote.Low = append(quote.Low, 0)
		quote.Volume = append(quote.Volume, 0)
	}
	result.Indicators.Quote = []Quote{quote}

	return Response{Chart: Chart{Result: []Result{result}}}
}

// TestParseChart tests conversion of the raw chart API payload.
//
// WHY: Yahoo's response shape is loose JSON with parallel arrays; the parser
// is the only place where malformed payloads can be caught before the data
// flows into valuations.
func TestParseChart(t *testing.T) {
	client := NewFinanceClient()

	t.Run("parses a valid response", func(t *testing.T) {
		ts := []int64{1704931200, 1705017600}
		resp := chartResponse("AAPL", ts, []float64{185.5, 186.2})

		chart, err := client.ParseChart(resp)
		if err != nil {
			t.Fatalf("ParseChart() returned unexpected error: %v", err)
		}

		if chart.Symbol != "AAPL" {
			t.Errorf("Expected symbol AAPL, got %s", chart.Symbol)
		}
		if len(chart.Indicators) != 2 {
			t.Fatalf("Expected 2 indicators, got %d", len(chart.Indicators))
		}
		if chart.Indicators[1].PriceClose != 186.2 {
			t.Errorf("Expected close 186.2, got %v", chart.Indicators[1].PriceClose)
		}
		if !chart.Indicators[0].Date.Equal(time.Unix(1704931200, 0).UTC()) {
			t.Errorf("Expected UTC date from timestamp, got %v", chart.Indicators[0].Date)
		}
	})

	t.Run("rejects empty result", func(t *testing.T) {
		if _, err := client.ParseChart(Response{}); err == nil {
			t.Error("Expected error for empty response, got nil")
		}
	})

	t.Run("rejects missing timestamps", func(t *testing.T) {
		resp := chartResponse("AAPL", nil, nil)
		if _, err := client.ParseChart(resp); err == nil {
			t.Error("Expected error for missing timestamps, got nil")
		}
	})

	t.Run("rejects missing close prices", func(t *testing.T) {
		resp := chartResponse("AAPL", []int64{1704931200}, nil)
		if _, err := client.ParseChart(resp); err == nil {
			t.Error("Expected error for missing closes, got nil")
		}
	})

	t.Run("tolerates short secondary arrays", func(t *testing.T) {
		ts := []int64{1704931200, 1705017600}
		resp := chartResponse("AAPL", ts, []float64{185.5, 186.2})
		quote := &resp.Chart.Result[0].Indicators.Quote[0]
		quote.Open = quote.Open[:1]
		quote.High = nil
		quote.Low = nil
		quote.Volume = quote.Volume[:1]

		chart, err := client.ParseChart(resp)
		if err != nil {
			t.Fatalf("ParseChart() returned unexpected error: %v", err)
		}
		if len(chart.Indicators) != 2 {
			t.Fatalf("Expected 2 indicators, got %d", len(chart.Indicators))
		}
		if chart.Indicators[1].PriceClose != 186.2 {
			t.Errorf("Expected close 186.2, got %v", chart.Indicators[1].PriceClose)
		}
		if chart.Indicators[1].PriceOpen != 0 || chart.Indicators[1].Volume != 0 {
			t.Errorf("Expected zero open and volume past the short arrays, got %v and %d",
				chart.Indicators[1].PriceOpen, chart.Indicators[1].Volume)
		}
	})

	t.Run("rejects mismatched array lengths", func(t *testing.T) {
		resp := chartResponse("AAPL", []int64{1704931200, 1705017600}, []float64{185.5})
		if _, err := client.ParseChart(resp); err == nil {
			t.Error("Expected error for mismatched lengths, got nil")
		}
	})
}

// TestPriceChart_LatestClose tests latest-close extraction.
func TestPriceChart_LatestClose(t *testing.T) {
	t.Run("returns last close", func(t *testing.T) {
		chart := PriceChart{Indicators: []Indicators{
			{PriceClose: 100},
			{PriceClose: 105.5},
		}}

		price, ok := chart.LatestClose()
		if !ok {
			t.Fatal("Expected a close price")
		}
		if price != 105.5 {
			t.Errorf("Expected 105.5, got %v", price)
		}
	})

	t.Run("reports empty chart", func(t *testing.T) {
		if _, ok := (PriceChart{}).LatestClose(); ok {
			t.Error("Expected ok=false for empty chart")
		}
	})
}

// TestPriceChart_GetIndicatorForDate tests date-keyed lookup.
func TestPriceChart_GetIndicatorForDate(t *testing.T) {
	day := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)
	chart := PriceChart{Indicators: []Indicators{
		{Date: day.AddDate(0, 0, -1), PriceClose: 100},
		{Date: day, PriceClose: 105},
	}}

	t.Run("matches ignoring time of day", func(t *testing.T) {
		ind, ok := chart.GetIndicatorForDate(day.Add(15 * time.Hour))
		if !ok {
			t.Fatal("Expected a match")
		}
		if ind.PriceClose != 105 {
			t.Errorf("Expected close 105, got %v", ind.PriceClose)
		}
	})

	t.Run("misses absent date", func(t *testing.T) {
		if _, ok := chart.GetIndicatorForDate(day.AddDate(0, 0, 7)); ok {
			t.Error("Expected no match for absent date")
		}
	})
}
