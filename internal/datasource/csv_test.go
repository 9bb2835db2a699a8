package datasource

import (
	"strings"
	"testing"

	"github.com/a009/litecharts/internal/convert"
)

func TestCandlesFromCSV(t *testing.T) {
	csvData := `time,open,high,low,close,volume
2021-01-01,100,110,95,105,1500
2021-01-02,105,115,100,112,1800
`
	records, err := CandlesFromCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("CandlesFromCSV failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0]["open"] != 100.0 {
		t.Errorf("Expected open 100, got %v", records[0]["open"])
	}
	if records[0]["volume"] != 1500.0 {
		t.Errorf("Expected volume 1500, got %v", records[0]["volume"])
	}

	points, err := convert.ToOHLCPoints(records)
	if err != nil {
		t.Fatalf("CSV records failed OHLC conversion: %v", err)
	}
	if points[0]["time"] != int64(1609459200) {
		t.Errorf("Expected time 1609459200, got %v", points[0]["time"])
	}
}

func TestCandlesFromCSVWithoutVolume(t *testing.T) {
	csvData := `time,open,high,low,close
2021-01-01,100,110,95,105
`
	records, err := CandlesFromCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("CandlesFromCSV failed: %v", err)
	}
	if _, ok := records[0]["volume"]; ok {
		t.Error("Expected volume key omitted when the column is absent")
	}
}

func TestValuesFromCSV(t *testing.T) {
	csvData := `time,value
2021-01-01,42.5
2021-01-02,43.1
`
	records, err := ValuesFromCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ValuesFromCSV failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0]["value"] != 42.5 {
		t.Errorf("Expected value 42.5, got %v", records[0]["value"])
	}

	points, err := convert.ToValuePoints(records)
	if err != nil {
		t.Fatalf("CSV records failed value conversion: %v", err)
	}
	if points[1]["time"] != int64(1609545600) {
		t.Errorf("Expected time 1609545600, got %v", points[1]["time"])
	}
}

func TestCandlesFromCSVMalformed(t *testing.T) {
	if _, err := CandlesFromCSV(strings.NewReader("time,open\n2021-01-01")); err == nil {
		t.Error("Expected error for malformed CSV")
	}
}
