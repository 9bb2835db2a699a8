package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/a009/litecharts/internal/chart"
	"github.com/a009/litecharts/internal/convert"
)

// jsonJS marshals a value for embedding into generated JavaScript. The
// values fed through here are maps, slices, strings, and numbers, so a
// marshal failure cannot occur in practice; it degrades to null rather
// than aborting a render.
func jsonJS(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(data)
}

// seriesJS emits the statements that create one series on its parent chart
// instance, assign its data, and attach markers and price lines. Marker
// payloads have tooltip content stripped; the overlay handles tooltips.
func seriesJS(s *chart.Series, chartVar string) []string {
	lines := []string{
		fmt.Sprintf("const %s = %s.add%sSeries(%s);",
			s.ID(), chartVar, s.Kind(), jsonJS(convert.TranslateOptions(s.Options()))),
		fmt.Sprintf("%s.setData(%s);", s.ID(), jsonJS(s.Data())),
	}

	if markers := s.Markers(); len(markers) > 0 {
		payloads := make([]map[string]any, len(markers))
		for i, m := range markers {
			payloads[i] = m.Payload()
		}
		lines = append(lines, fmt.Sprintf("%s.setMarkers(%s);",
			s.ID(), jsonJS(convert.TranslateList(payloads))))
	}

	for _, pl := range s.PriceLines() {
		lines = append(lines, fmt.Sprintf("%s.createPriceLine(%s);",
			s.ID(), jsonJS(convert.TranslateOptions(pl))))
	}

	return lines
}

// paneOptions builds the library options for one pane instance: the global
// chart options overridden with the pane's computed size. All panes except
// the last get their time axis hidden, merging into any existing
// time_scale sub-options, so axis labels render once at the bottom of the
// stack.
func paneOptions(c *chart.Chart, paneIndex, totalPanes, height int) map[string]any {
	opts := make(map[string]any, len(c.Options())+2)
	for k, v := range c.Options() {
		opts[k] = v
	}
	opts["width"] = c.Width()
	opts["height"] = height

	if paneIndex < totalPanes-1 {
		timeScale := map[string]any{}
		if existing, ok := opts["time_scale"].(map[string]any); ok {
			for k, v := range existing {
				timeScale[k] = v
			}
		}
		timeScale["visible"] = false
		opts["time_scale"] = timeScale
	}

	return opts
}

// timeSyncJS emits the cross-pane time-scale synchronization mesh: every
// instance subscribes to its own visible-range changes and pushes the new
// range to every other instance. The mesh is fully connected rather than
// hub-and-spoke, so no single listener is a point of desynchronization.
func timeSyncJS(chartVars []string) []string {
	if len(chartVars) < 2 {
		return nil
	}

	lines := make([]string, 0, len(chartVars))
	for i, v := range chartVars {
		setters := make([]string, 0, len(chartVars)-1)
		for j, other := range chartVars {
			if j == i {
				continue
			}
			setters = append(setters, fmt.Sprintf("%s.timeScale().setVisibleLogicalRange(range);", other))
		}
		lines = append(lines, fmt.Sprintf(
			"%s.timeScale().subscribeVisibleLogicalRangeChange(range => { if (range) { %s } });",
			v, strings.Join(setters, " ")))
	}

	return lines
}
