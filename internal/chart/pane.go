package chart

// Pane is a vertically stacked sub-chart holding an ordered collection of
// series. Insertion order is draw order.
type Pane struct {
	id      string
	options map[string]any
	series  []*Series
}

// NewPane creates a pane with a fresh id. The only recognized option is
// height_ratio, the relative vertical weight used to apportion the chart
// height across panes.
func NewPane(options map[string]any) *Pane {
	return &Pane{
		id:      newID("pane"),
		options: copyOptions(options),
	}
}

// ID returns the pane id.
func (p *Pane) ID() string {
	return p.id
}

// Options returns the pane options.
func (p *Pane) Options() map[string]any {
	return p.options
}

// Series returns the series in this pane in insertion order.
func (p *Pane) Series() []*Series {
	return p.series
}

// HeightRatio returns the pane's layout weight. Missing or non-numeric
// values fall back to 1.0.
func (p *Pane) HeightRatio() float64 {
	switch v := p.options["height_ratio"].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	}
	return 1.0
}

// AddSeries constructs a series of the given kind with a fresh id and
// appends it to the pane.
func (p *Pane) AddSeries(kind SeriesKind, options map[string]any) *Series {
	s := newSeries(kind, options)
	p.series = append(p.series, s)
	return s
}

// AddCandlestickSeries adds a candlestick series to the pane.
func (p *Pane) AddCandlestickSeries(options map[string]any) *Series {
	return p.AddSeries(Candlestick, options)
}

// AddLineSeries adds a line series to the pane.
func (p *Pane) AddLineSeries(options map[string]any) *Series {
	return p.AddSeries(Line, options)
}

// AddAreaSeries adds an area series to the pane.
func (p *Pane) AddAreaSeries(options map[string]any) *Series {
	return p.AddSeries(Area, options)
}

// AddBarSeries adds an OHLC bar series to the pane.
func (p *Pane) AddBarSeries(options map[string]any) *Series {
	return p.AddSeries(Bar, options)
}

// AddHistogramSeries adds a histogram series to the pane.
func (p *Pane) AddHistogramSeries(options map[string]any) *Series {
	return p.AddSeries(Histogram, options)
}

// AddBaselineSeries adds a baseline series to the pane.
func (p *Pane) AddBaselineSeries(options map[string]any) *Series {
	return p.AddSeries(Baseline, options)
}
