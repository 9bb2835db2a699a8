package server

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/a009/litecharts/internal/chart"
	"github.com/a009/litecharts/internal/convert"
	"github.com/a009/litecharts/internal/logger"
)

// buildChart assembles the chart for /generate: a candlestick pane with a
// moving-average overlay and a volume histogram pane below it. Candles come
// from the configured source URL, or generated sample data when unset.
func (s *Server) buildChart(ctx context.Context) (*chart.Chart, error) {
	var candles convert.Records
	var err error

	if s.Config.CandleSourceURL != "" {
		candles, err = s.Fetcher.FetchCandles(ctx, s.Config.CandleSourceURL)
		if err != nil {
			return nil, err
		}
	} else {
		logger.Debug("No candle source configured, using sample data")
		candles = sampleCandles(90)
	}
	if len(candles) == 0 {
		return nil, fmt.Errorf("candle source returned no data")
	}

	c := chart.New(map[string]any{
		"width":  s.Config.ChartWidth,
		"height": s.Config.ChartHeight,
		"layout": map[string]any{
			"background": map[string]any{"color": "#1e1e1e"},
			"text_color": "#d9d9d9",
		},
	})

	pricePane := c.AddPane(map[string]any{"height_ratio": 0.7})
	volumePane := c.AddPane(map[string]any{"height_ratio": 0.3})

	candleSeries := pricePane.AddCandlestickSeries(map[string]any{
		"up_color":   "#26a69a",
		"down_color": "#ef5350",
	})
	if err := candleSeries.SetData(candles); err != nil {
		return nil, fmt.Errorf("failed to set candle data: %w", err)
	}

	maSeries := pricePane.AddLineSeries(map[string]any{
		"color":      "#2962ff",
		"line_width": 2,
	})
	if err := maSeries.SetData(movingAverage(candles, 10)); err != nil {
		return nil, fmt.Errorf("failed to set moving average data: %w", err)
	}

	candleSeries.CreatePriceLine(map[string]any{
		"price": lastClose(candles),
		"color": "#787b86",
		"title": "last close",
	})

	volumes := volumeRecords(candles)
	if len(volumes) > 0 {
		volumeSeries := volumePane.AddHistogramSeries(map[string]any{
			"color": "#26a69a",
			"price_format": map[string]any{
				"type": "volume",
			},
		})
		if err := volumeSeries.SetData(volumes); err != nil {
			return nil, fmt.Errorf("failed to set volume data: %w", err)
		}
	}

	c.SetNotes(fmt.Sprintf("Generated at %s from %d candles.",
		time.Now().UTC().Format(time.RFC3339), len(candles)))

	return c, nil
}

// sampleCandles produces a deterministic random-walk OHLCV series of n
// daily bars ending today.
func sampleCandles(n int) convert.Records {
	records := make(convert.Records, 0, n)

	start := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -n)
	price := 100.0

	for i := 0; i < n; i++ {
		// Deterministic pseudo-noise keeps the demo reproducible
		drift := math.Sin(float64(i)*0.3)*2 + math.Cos(float64(i)*0.7)
		open := price
		close := price + drift
		high := math.Max(open, close) + 1.5
		low := math.Min(open, close) - 1.5
		volume := 1000 + 500*math.Abs(drift)

		records = append(records, map[string]any{
			"time":   start.AddDate(0, 0, i).Unix(),
			"open":   open,
			"high":   high,
			"low":    low,
			"close":  close,
			"volume": volume,
		})
		price = close
	}

	return records
}

// movingAverage computes a simple moving average of closes over the given
// window, emitting points only once the window is full.
func movingAverage(candles convert.Records, window int) convert.Records {
	records := make(convert.Records, 0, len(candles))
	sum := 0.0

	for i, candle := range candles {
		close, _ := candle["close"].(float64)
		sum += close
		if i >= window {
			prev, _ := candles[i-window]["close"].(float64)
			sum -= prev
		}
		if i >= window-1 {
			records = append(records, map[string]any{
				"time":  candle["time"],
				"value": sum / float64(window),
			})
		}
	}

	return records
}

// volumeRecords extracts time/value rows from candles that carry volume.
func volumeRecords(candles convert.Records) convert.Records {
	records := make(convert.Records, 0, len(candles))
	for _, candle := range candles {
		volume, ok := candle["volume"]
		if !ok {
			continue
		}
		records = append(records, map[string]any{
			"time":  candle["time"],
			"value": volume,
		})
	}
	return records
}

// lastClose returns the close of the final candle.
func lastClose(candles convert.Records) float64 {
	if len(candles) == 0 {
		return 0
	}
	close, _ := candles[len(candles)-1]["close"].(float64)
	return close
}
