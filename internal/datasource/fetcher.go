// Package datasource loads candle and value data from external feeds and
// local files, producing inputs ready for series assignment.
package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/a009/litecharts/internal/convert"
	"github.com/a009/litecharts/internal/logger"
)

// candleRow mirrors one OHLCV bar in a JSON feed.
type candleRow struct {
	Time   any      `json:"time"`
	Open   float64  `json:"open"`
	High   float64  `json:"high"`
	Low    float64  `json:"low"`
	Close  float64  `json:"close"`
	Volume *float64 `json:"volume,omitempty"`
}

// Fetcher retrieves chart data over HTTP.
type Fetcher struct {
	client *resty.Client
}

// NewFetcher creates a fetcher with sane timeouts and retries.
func NewFetcher() *Fetcher {
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(2 * time.Second).
		SetHeader("User-Agent", "litecharts/1.0")

	return &Fetcher{client: client}
}

// FetchCandles retrieves a JSON array of OHLCV bars from the given URL.
func (f *Fetcher) FetchCandles(ctx context.Context, url string) (convert.Records, error) {
	logger.Debugf("Fetching candles from %s", url)

	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candles from %s: %w", url, err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("candle source %s returned status %d", url, resp.StatusCode())
	}

	var rows []candleRow
	if err := json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("failed to parse candle response from %s: %w", url, err)
	}

	records := make(convert.Records, len(rows))
	for i, row := range rows {
		record := map[string]any{
			"time":  row.Time,
			"open":  row.Open,
			"high":  row.High,
			"low":   row.Low,
			"close": row.Close,
		}
		if row.Volume != nil {
			record["volume"] = *row.Volume
		}
		records[i] = record
	}

	logger.Debugf("Fetched %d candles from %s", len(records), url)
	return records, nil
}
