// Command local-runner builds a multi-pane demo chart from CSV or generated
// data and writes it to a local HTML file, without starting the service.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/a009/litecharts/internal/chart"
	"github.com/a009/litecharts/internal/convert"
	"github.com/a009/litecharts/internal/datasource"
	"github.com/a009/litecharts/internal/logger"
	"github.com/a009/litecharts/internal/render"
)

func main() {
	csvPath := flag.String("csv", "", "optional CSV file with time,open,high,low,close[,volume] rows")
	out := flag.String("out", "chart.html", "output HTML file")
	flag.Parse()

	candles, err := loadCandles(*csvPath)
	if err != nil {
		logger.Fatal("Failed to load candles", err)
	}

	c, err := buildChart(candles)
	if err != nil {
		logger.Fatal("Failed to build chart", err)
	}

	if err := render.Save(c, *out); err != nil {
		logger.Fatal("Failed to save chart", err)
	}

	logger.Infof("Demo chart written to %s", *out)
}

func loadCandles(csvPath string) (convert.Records, error) {
	if csvPath == "" {
		return generateCandles(120), nil
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", csvPath, err)
	}
	defer f.Close()

	return datasource.CandlesFromCSV(f)
}

func buildChart(candles convert.Records) (*chart.Chart, error) {
	c := chart.New(map[string]any{
		"width":  900,
		"height": 600,
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
		return nil, err
	}

	// Mark the highest close with a tooltip-bearing marker
	if best := bestClose(candles); best != nil {
		err := candleSeries.SetMarkers([]chart.Marker{
			{
				Time:     best["time"],
				Position: "above_bar",
				Shape:    "arrow_down",
				Color:    "#e91e63",
				Text:     "peak",
				ID:       "peak-close",
				Tooltip: &chart.Tooltip{
					Title: "Highest close",
					Fields: map[string]string{
						"close": fmt.Sprintf("%.2f", best["close"]),
					},
				},
			},
		})
		if err != nil {
			return nil, err
		}

		candleSeries.CreatePriceLine(map[string]any{
			"price":      best["close"],
			"color":      "#e91e63",
			"line_style": 2,
			"title":      "peak close",
		})
	}

	volumes := make(convert.Records, 0, len(candles))
	for _, candle := range candles {
		if v, ok := candle["volume"]; ok {
			volumes = append(volumes, map[string]any{"time": candle["time"], "value": v})
		}
	}
	if len(volumes) > 0 {
		volumeSeries := volumePane.AddHistogramSeries(map[string]any{
			"color":        "#26a69a",
			"price_format": map[string]any{"type": "volume"},
		})
		if err := volumeSeries.SetData(volumes); err != nil {
			return nil, err
		}
	}

	c.SetNotes("## Demo chart\n\nCandlesticks with a volume pane, a peak marker, and a price line.")

	return c, nil
}

func bestClose(candles convert.Records) map[string]any {
	var best map[string]any
	bestClose := math.Inf(-1)
	for _, candle := range candles {
		if close, ok := candle["close"].(float64); ok && close > bestClose {
			bestClose = close
			best = candle
		}
	}
	return best
}

func generateCandles(n int) convert.Records {
	records := make(convert.Records, 0, n)
	start := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -n)
	price := 50.0

	for i := 0; i < n; i++ {
		drift := math.Sin(float64(i)*0.25)*1.8 + math.Cos(float64(i)*0.6)*0.7
		open := price
		close := price + drift
		records = append(records, map[string]any{
			"time":   start.AddDate(0, 0, i).Unix(),
			"open":   open,
			"high":   math.Max(open, close) + 1.2,
			"low":    math.Min(open, close) - 1.2,
			"close":  close,
			"volume": 800 + 400*math.Abs(drift),
		})
		price = close
	}

	return records
}
