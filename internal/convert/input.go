package convert

import (
	"strings"
)

// Point is one time-stamped data record in the shape the charting library
// consumes: "time" plus either OHLC fields or a single "value". Extra
// fields (volume, color) ride along untouched.
type Point map[string]any

// Input is the closed set of tabular shapes accepted for bulk data
// assignment. Each variant has exactly one conversion rule; dispatch is by
// type, never by probing.
type Input interface {
	isInput()
}

// Records is an ordered sequence of field mappings, one per data point.
type Records []map[string]any

func (Records) isInput() {}

// Column is one named column of a Table.
type Column struct {
	Name   string
	Values []any
}

// Table is a column-oriented input: ordered named columns plus an optional
// row index. When no time column exists, a time-like index supplies the
// time for each row.
type Table struct {
	Index   []any
	Columns []Column
}

func (Table) isInput() {}

// Matrix is a numeric input. Rows of length >= 5 are read positionally as
// [time, open, high, low, close, (volume)]; rows of length 2 as
// [time, value].
type Matrix [][]float64

func (Matrix) isInput() {}

// standardNames are the column names recognized case-insensitively in
// tabular input.
var standardNames = map[string]bool{
	"time":   true,
	"open":   true,
	"high":   true,
	"low":    true,
	"close":  true,
	"volume": true,
	"value":  true,
}

// ToOHLCPoints converts any Input to an ordered sequence of OHLC points
// with times normalized to Unix seconds.
func ToOHLCPoints(input Input) ([]Point, error) {
	switch v := input.(type) {
	case Records:
		return recordsToPoints(v)
	case Table:
		return tableToOHLC(v)
	case Matrix:
		return matrixToPoints(v)
	}
	return nil, nil
}

// ToValuePoints converts any Input to an ordered sequence of time/value
// points with times normalized to Unix seconds.
func ToValuePoints(input Input) ([]Point, error) {
	switch v := input.(type) {
	case Records:
		return recordsToPoints(v)
	case Table:
		return tableToValue(v)
	case Matrix:
		return matrixToPoints(v)
	}
	return nil, nil
}

// recordsToPoints copies each record, normalizing its time field. A record
// without a time field is an error.
func recordsToPoints(records Records) ([]Point, error) {
	points := make([]Point, 0, len(records))

	for _, record := range records {
		point := make(Point, len(record))
		for k, v := range record {
			point[k] = v
		}

		raw, ok := point["time"]
		if !ok {
			return nil, ErrMissingTime
		}
		ts, err := ToUnixSeconds(raw)
		if err != nil {
			return nil, err
		}
		point["time"] = ts

		points = append(points, point)
	}

	return points, nil
}

// columnIndex maps recognized lowercase column names to their position.
func columnIndex(columns []Column) map[string]int {
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		lower := strings.ToLower(col.Name)
		if standardNames[lower] {
			index[lower] = i
		}
	}
	return index
}

// rowCount returns the number of rows in a table.
func rowCount(t Table) int {
	if len(t.Columns) > 0 {
		return len(t.Columns[0].Values)
	}
	return len(t.Index)
}

// timeForRow resolves the time of one table row: a time column wins, then
// the row index.
func timeForRow(t Table, colIdx map[string]int, row int) (int64, error) {
	if i, ok := colIdx["time"]; ok {
		return ToUnixSeconds(t.Columns[i].Values[row])
	}
	if row < len(t.Index) {
		return ToUnixSeconds(t.Index[row])
	}
	return 0, ErrMissingTime
}

func tableToOHLC(t Table) ([]Point, error) {
	colIdx := columnIndex(t.Columns)
	n := rowCount(t)
	points := make([]Point, 0, n)

	for row := 0; row < n; row++ {
		ts, err := timeForRow(t, colIdx, row)
		if err != nil {
			return nil, err
		}
		point := Point{"time": ts}

		for _, name := range []string{"open", "high", "low", "close", "volume"} {
			i, ok := colIdx[name]
			if !ok {
				continue
			}
			f, ok := toFloat(t.Columns[i].Values[row])
			if !ok {
				return nil, &NonNumericValueError{Column: name, Value: t.Columns[i].Values[row]}
			}
			point[name] = f
		}

		points = append(points, point)
	}

	return points, nil
}

func tableToValue(t Table) ([]Point, error) {
	colIdx := columnIndex(t.Columns)

	valueAt, err := valueColumn(t, colIdx)
	if err != nil {
		return nil, err
	}

	n := rowCount(t)
	points := make([]Point, 0, n)

	for row := 0; row < n; row++ {
		ts, err := timeForRow(t, colIdx, row)
		if err != nil {
			return nil, err
		}
		point := Point{"time": ts}
		f, ok := toFloat(t.Columns[valueAt].Values[row])
		if !ok {
			return nil, &NonNumericValueError{
				Column: t.Columns[valueAt].Name,
				Value:  t.Columns[valueAt].Values[row],
			}
		}
		point["value"] = f
		points = append(points, point)
	}

	return points, nil
}

// valueColumn picks the column holding values: an explicit "value" column
// is preferred, otherwise a table with exactly one non-time column uses
// that column.
func valueColumn(t Table, colIdx map[string]int) (int, error) {
	if i, ok := colIdx["value"]; ok {
		return i, nil
	}

	timeAt, hasTime := colIdx["time"]
	candidate := -1
	for i := range t.Columns {
		if hasTime && i == timeAt {
			continue
		}
		if candidate >= 0 {
			return 0, ErrAmbiguousValue
		}
		candidate = i
	}
	if candidate < 0 {
		return 0, ErrAmbiguousValue
	}
	return candidate, nil
}

func matrixToPoints(m Matrix) ([]Point, error) {
	points := make([]Point, 0, len(m))

	for _, row := range m {
		switch {
		case len(row) >= 5:
			point := Point{
				"time":  int64(row[0]),
				"open":  row[1],
				"high":  row[2],
				"low":   row[3],
				"close": row[4],
			}
			if len(row) >= 6 {
				point["volume"] = row[5]
			}
			points = append(points, point)
		case len(row) == 2:
			points = append(points, Point{
				"time":  int64(row[0]),
				"value": row[1],
			})
		default:
			return nil, &UnexpectedShapeError{RowLen: len(row)}
		}
	}

	return points, nil
}

// toFloat widens the numeric types that appear in tabular input.
func toFloat(v any) (float64, bool) {
	switch f := v.(type) {
	case float64:
		return f, true
	case float32:
		return float64(f), true
	case int:
		return float64(f), true
	case int32:
		return float64(f), true
	case int64:
		return float64(f), true
	}
	return 0, false
}
