package chart

import (
	"errors"
	"fmt"
)

// Default pixel dimensions used when the chart options omit width or
// height, or carry them with the wrong type.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// ErrPaneIndex is returned when an explicit pane index is out of range.
var ErrPaneIndex = errors.New("pane index out of range")

// Chart is the root aggregate: global options plus an ordered collection
// of panes. Insertion order is stacking order, top to bottom. The chart
// exclusively owns its panes, each pane its series; rendering reads the
// tree without mutating it.
type Chart struct {
	id          string
	options     map[string]any
	panes       []*Pane
	defaultPane *Pane
	notes       string
}

// New creates a chart with a fresh id. Recognized global options include
// width, height, and nested layout/grid/crosshair/time_scale/localization
// sub-options, all passed through to the charting library.
func New(options map[string]any) *Chart {
	return &Chart{
		id:      newID("chart"),
		options: copyOptions(options),
	}
}

// ID returns the chart id.
func (c *Chart) ID() string {
	return c.id
}

// Options returns the global chart options.
func (c *Chart) Options() map[string]any {
	return c.options
}

// Panes returns the panes in stacking order.
func (c *Chart) Panes() []*Pane {
	return c.panes
}

// Width returns the chart pixel width, defaulting when absent or of the
// wrong type.
func (c *Chart) Width() int {
	return dimension(c.options, "width", DefaultWidth)
}

// Height returns the chart pixel height, defaulting when absent or of the
// wrong type.
func (c *Chart) Height() int {
	return dimension(c.options, "height", DefaultHeight)
}

func dimension(options map[string]any, key string, fallback int) int {
	switch v := options[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return fallback
}

// AddPane appends a new pane to the chart and returns it.
func (c *Chart) AddPane(options map[string]any) *Pane {
	p := NewPane(options)
	c.panes = append(c.panes, p)
	return p
}

// getDefaultPane returns the lazily created default pane, creating and
// appending it on first use.
func (c *Chart) getDefaultPane() *Pane {
	if c.defaultPane == nil {
		c.defaultPane = NewPane(nil)
		c.panes = append(c.panes, c.defaultPane)
	}
	return c.defaultPane
}

// AddSeries adds a series of the given kind to the default pane, creating
// that pane on first use and reusing it afterwards.
func (c *Chart) AddSeries(kind SeriesKind, options map[string]any) *Series {
	return c.getDefaultPane().AddSeries(kind, options)
}

// AddSeriesAt adds a series of the given kind to the pane at paneIndex.
// An out-of-range index returns ErrPaneIndex and performs no mutation.
func (c *Chart) AddSeriesAt(kind SeriesKind, options map[string]any, paneIndex int) (*Series, error) {
	if paneIndex < 0 || paneIndex >= len(c.panes) {
		return nil, fmt.Errorf("%w: %d with %d panes", ErrPaneIndex, paneIndex, len(c.panes))
	}
	return c.panes[paneIndex].AddSeries(kind, options), nil
}

// AddCandlestickSeries adds a candlestick series to the default pane.
func (c *Chart) AddCandlestickSeries(options map[string]any) *Series {
	return c.AddSeries(Candlestick, options)
}

// AddLineSeries adds a line series to the default pane.
func (c *Chart) AddLineSeries(options map[string]any) *Series {
	return c.AddSeries(Line, options)
}

// AddAreaSeries adds an area series to the default pane.
func (c *Chart) AddAreaSeries(options map[string]any) *Series {
	return c.AddSeries(Area, options)
}

// AddBarSeries adds an OHLC bar series to the default pane.
func (c *Chart) AddBarSeries(options map[string]any) *Series {
	return c.AddSeries(Bar, options)
}

// AddHistogramSeries adds a histogram series to the default pane.
func (c *Chart) AddHistogramSeries(options map[string]any) *Series {
	return c.AddSeries(Histogram, options)
}

// AddBaselineSeries adds a baseline series to the default pane.
func (c *Chart) AddBaselineSeries(options map[string]any) *Series {
	return c.AddSeries(Baseline, options)
}

// SetNotes attaches markdown commentary rendered below the panes in the
// generated document. Empty notes emit nothing.
func (c *Chart) SetNotes(markdown string) {
	c.notes = markdown
}

// Notes returns the attached markdown commentary.
func (c *Chart) Notes() string {
	return c.notes
}
