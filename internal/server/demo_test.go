package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBuildChartSampleData(t *testing.T) {
	s := testServer(t)

	c, err := s.buildChart(context.Background())
	if err != nil {
		t.Fatalf("buildChart failed: %v", err)
	}

	panes := c.Panes()
	if len(panes) != 2 {
		t.Fatalf("Expected price and volume panes, got %d", len(panes))
	}

	priceSeries := panes[0].Series()
	if len(priceSeries) != 2 {
		t.Fatalf("Expected candles and moving average in the price pane, got %d series", len(priceSeries))
	}
	if len(priceSeries[0].Data()) != 90 {
		t.Errorf("Expected 90 candles, got %d", len(priceSeries[0].Data()))
	}
	if len(priceSeries[0].PriceLines()) != 1 {
		t.Errorf("Expected a last-close price line, got %d", len(priceSeries[0].PriceLines()))
	}
	// 10-bar moving average emits from the 10th candle onward
	if len(priceSeries[1].Data()) != 81 {
		t.Errorf("Expected 81 moving average points, got %d", len(priceSeries[1].Data()))
	}

	volumeSeries := panes[1].Series()
	if len(volumeSeries) != 1 || len(volumeSeries[0].Data()) != 90 {
		t.Error("Expected one volume series covering every candle")
	}

	if c.Notes() == "" {
		t.Error("Expected generation notes on the chart")
	}
}

func TestBuildChartFromSource(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"time": 1609459200, "open": 100, "high": 110, "low": 95, "close": 105},
			{"time": 1609545600, "open": 105, "high": 115, "low": 100, "close": 112}
		]`))
	}))
	defer feed.Close()

	s := testServer(t)
	s.Config.CandleSourceURL = feed.URL

	c, err := s.buildChart(context.Background())
	if err != nil {
		t.Fatalf("buildChart failed: %v", err)
	}

	candles := c.Panes()[0].Series()[0]
	if len(candles.Data()) != 2 {
		t.Errorf("Expected 2 fetched candles, got %d", len(candles.Data()))
	}

	// Feed has no volume, so the volume pane stays empty
	if len(c.Panes()[1].Series()) != 0 {
		t.Error("Expected no volume series for a feed without volume")
	}
}

func TestBuildChartEmptySource(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer feed.Close()

	s := testServer(t)
	s.Config.CandleSourceURL = feed.URL

	if _, err := s.buildChart(context.Background()); err == nil {
		t.Error("Expected error for an empty candle source")
	}
}

func TestMovingAverage(t *testing.T) {
	candles := sampleCandles(5)
	ma := movingAverage(candles, 3)

	if len(ma) != 3 {
		t.Fatalf("Expected 3 points for window 3 over 5 candles, got %d", len(ma))
	}

	c0, _ := candles[0]["close"].(float64)
	c1, _ := candles[1]["close"].(float64)
	c2, _ := candles[2]["close"].(float64)
	want := (c0 + c1 + c2) / 3
	got, _ := ma[0]["value"].(float64)
	if got != want {
		t.Errorf("Expected first MA point %f, got %f", want, got)
	}
	if ma[0]["time"] != candles[2]["time"] {
		t.Error("Expected MA point timestamped at the window's last candle")
	}
}

func TestSampleCandlesShape(t *testing.T) {
	candles := sampleCandles(30)
	if len(candles) != 30 {
		t.Fatalf("Expected 30 candles, got %d", len(candles))
	}

	for i, candle := range candles {
		high, _ := candle["high"].(float64)
		low, _ := candle["low"].(float64)
		open, _ := candle["open"].(float64)
		close, _ := candle["close"].(float64)
		if high < open || high < close || low > open || low > close {
			t.Errorf("Candle %d violates OHLC ordering: %v", i, candle)
		}
		if _, ok := candle["volume"]; !ok {
			t.Errorf("Candle %d missing volume", i)
		}
	}
}
