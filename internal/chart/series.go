package chart

import (
	"github.com/a009/litecharts/internal/convert"
)

// SeriesKind identifies the visual kind of a series. The value doubles as
// the method suffix in the charting library API (addCandlestickSeries,
// addLineSeries, ...).
type SeriesKind string

const (
	Candlestick SeriesKind = "Candlestick"
	Line        SeriesKind = "Line"
	Area        SeriesKind = "Area"
	Bar         SeriesKind = "Bar"
	Histogram   SeriesKind = "Histogram"
	Baseline    SeriesKind = "Baseline"
)

// dataShape selects the conversion rule for a series kind.
type dataShape int

const (
	shapeValue dataShape = iota
	shapeOHLC
)

var kindShapes = map[SeriesKind]dataShape{
	Candlestick: shapeOHLC,
	Bar:         shapeOHLC,
	Line:        shapeValue,
	Area:        shapeValue,
	Histogram:   shapeValue,
	Baseline:    shapeValue,
}

// Series is one plotted data set of a specific kind within a pane. It owns
// its options, data points, markers, and price lines; the kind tag selects
// whether bulk data converts through the OHLC or the single-value rule.
type Series struct {
	id         string
	kind       SeriesKind
	options    map[string]any
	data       []convert.Point
	markers    []Marker
	priceLines []map[string]any
}

// Data starts empty, never nil, so a data-less series still emits a valid
// setData([]) call.
func newSeries(kind SeriesKind, options map[string]any) *Series {
	return &Series{
		id:      newID("series"),
		kind:    kind,
		options: copyOptions(options),
		data:    []convert.Point{},
	}
}

// ID returns the series id, stable from construction.
func (s *Series) ID() string {
	return s.id
}

// Kind returns the series kind tag.
func (s *Series) Kind() SeriesKind {
	return s.kind
}

// Options returns the series options.
func (s *Series) Options() map[string]any {
	return s.options
}

// Data returns the normalized data points.
func (s *Series) Data() []convert.Point {
	return s.data
}

// Markers returns the series markers.
func (s *Series) Markers() []Marker {
	return s.markers
}

// PriceLines returns the price line specs in insertion order.
func (s *Series) PriceLines() []map[string]any {
	return s.priceLines
}

// SetData replaces the full data sequence, converting the input through
// the rule appropriate to the series kind. Input-shape errors surface here,
// never at render time.
func (s *Series) SetData(input convert.Input) error {
	var points []convert.Point
	var err error

	if kindShapes[s.kind] == shapeOHLC {
		points, err = convert.ToOHLCPoints(input)
	} else {
		points, err = convert.ToValuePoints(input)
	}
	if err != nil {
		return err
	}

	s.data = points
	return nil
}

// Update appends a single data point, normalizing only its time field. The
// point shape is not re-validated.
func (s *Series) Update(point convert.Point) error {
	normalized := make(convert.Point, len(point))
	for k, v := range point {
		normalized[k] = v
	}

	if raw, ok := normalized["time"]; ok {
		ts, err := convert.ToUnixSeconds(raw)
		if err != nil {
			return err
		}
		normalized["time"] = ts
	}

	s.data = append(s.data, normalized)
	return nil
}

// SetMarkers replaces the full marker list, normalizing each marker's time.
func (s *Series) SetMarkers(markers []Marker) error {
	normalized := make([]Marker, 0, len(markers))
	for _, m := range markers {
		ts, err := convert.ToUnixSeconds(m.Time)
		if err != nil {
			return err
		}
		m.Time = ts
		normalized = append(normalized, m)
	}

	s.markers = normalized
	return nil
}

// CreatePriceLine appends a horizontal price line spec. The spec is stored
// verbatim; the caller supplies at least a "price" value.
func (s *Series) CreatePriceLine(options map[string]any) {
	s.priceLines = append(s.priceLines, copyOptions(options))
}

// copyOptions shallow-copies an options mapping, mapping nil to an empty
// mapping so callers can omit options entirely.
func copyOptions(options map[string]any) map[string]any {
	copied := make(map[string]any, len(options))
	for k, v := range options {
		copied[k] = v
	}
	return copied
}
