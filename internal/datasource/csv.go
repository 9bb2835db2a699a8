package datasource

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/a009/litecharts/internal/convert"
)

// csvCandle mirrors one OHLCV bar in a CSV file.
type csvCandle struct {
	Time   string   `csv:"time"`
	Open   float64  `csv:"open"`
	High   float64  `csv:"high"`
	Low    float64  `csv:"low"`
	Close  float64  `csv:"close"`
	Volume *float64 `csv:"volume,omitempty"`
}

// csvValue mirrors one time/value row in a CSV file.
type csvValue struct {
	Time  string  `csv:"time"`
	Value float64 `csv:"value"`
}

// CandlesFromCSV reads OHLCV bars from CSV with a time,open,high,low,close
// header and an optional volume column.
func CandlesFromCSV(r io.Reader) (convert.Records, error) {
	var rows []csvCandle
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse candle CSV: %w", err)
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

	return records, nil
}

// ValuesFromCSV reads time/value rows from CSV with a time,value header.
func ValuesFromCSV(r io.Reader) (convert.Records, error) {
	var rows []csvValue
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse value CSV: %w", err)
	}

	records := make(convert.Records, len(rows))
	for i, row := range rows {
		records[i] = map[string]any{
			"time":  row.Time,
			"value": row.Value,
		}
	}

	return records, nil
}
