package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/a009/litecharts/internal/assets"
	"github.com/a009/litecharts/internal/chart"
	"github.com/a009/litecharts/internal/convert"
)

const documentHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Chart</title>
    <style>
        body {
            margin: 0;
            padding: 20px;
            background: #1e1e1e;
        }
        .chart-stack {
            display: flex;
            flex-direction: column;
        }
        .chart-notes {
            color: #d9d9d9;
            font-family: -apple-system, sans-serif;
            font-size: 14px;
            max-width: 800px;
            margin-top: 16px;
        }
    </style>
</head>
<body>
    <div id="{{.ContainerID}}" class="chart-stack">
        {{.Panes}}
    </div>
{{- if .Notes}}
    <div class="chart-notes">{{.Notes}}</div>
{{- end}}
    <script>{{.Library}}</script>
    <script>
    {{.Script}}
    </script>
</body>
</html>
`

var documentTemplate = template.Must(template.New("document").Parse(documentHTML))

type documentData struct {
	ContainerID string
	Panes       template.HTML
	Notes       template.HTML
	Library     template.JS
	Script      template.JS
}

// Document renders a chart into one self-contained HTML page: stacked pane
// containers sized by height ratio, the embedded Lightweight Charts
// source, and a single script block that instantiates and populates every
// pane. The chart tree is read without being mutated, so the same chart
// renders identically on repeated calls. The only error condition is a
// missing library bundle; data validation has already happened upstream.
func Document(c *chart.Chart) (string, error) {
	containerID := "container_" + c.ID()
	panes := c.Panes()

	if len(panes) == 0 {
		return emptyDocument(containerID, c.Width(), c.Height()), nil
	}

	library, err := assets.LightweightChartsJS()
	if err != nil {
		return "", err
	}

	heights := PaneHeights(panes, c.Height())

	divs := make([]string, len(panes))
	for i, h := range heights {
		divs[i] = fmt.Sprintf(`<div id="%s_pane_%d" style="width: %dpx; height: %dpx;"></div>`,
			containerID, i, c.Width(), h)
	}

	chartVars := make([]string, len(panes))
	blocks := make([]string, 0, len(panes)+2)

	for i, p := range panes {
		chartVar := "chart_" + p.ID()
		chartVars[i] = chartVar
		paneContainer := fmt.Sprintf("%s_pane_%d", containerID, i)

		opts := paneOptions(c, i, len(panes), heights[i])
		lines := []string{fmt.Sprintf(
			"const %s = LightweightCharts.createChart(document.getElementById('%s'), %s);",
			chartVar, paneContainer, jsonJS(convert.TranslateOptions(opts)))}

		for _, s := range p.Series() {
			lines = append(lines, seriesJS(s, chartVar)...)
		}

		blocks = append(blocks, strings.Join(lines, "\n    "))
	}

	if sync := timeSyncJS(chartVars); len(sync) > 0 {
		blocks = append(blocks, "// Sync time scales\n    "+strings.Join(sync, "\n    "))
	}

	for i, p := range panes {
		tooltips := markerTooltips(p)
		if len(tooltips) == 0 {
			continue
		}
		paneContainer := fmt.Sprintf("%s_pane_%d", containerID, i)
		blocks = append(blocks, tooltipJS(chartVars[i], paneContainer, tooltips))
	}

	data := documentData{
		ContainerID: containerID,
		Panes:       template.HTML(strings.Join(divs, "\n        ")),
		Notes:       renderNotes(c.Notes()),
		Library:     template.JS(library),
		Script:      template.JS(strings.Join(blocks, "\n\n    ")),
	}

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute document template: %w", err)
	}
	return buf.String(), nil
}

// emptyDocument is the terminal case for a chart with no panes: a sized
// placeholder with a notice and no script-driven instantiation at all.
func emptyDocument(containerID string, width, height int) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Chart</title>
</head>
<body>
    <div id="%s" style="width: %dpx; height: %dpx;">
        <p>No data to display</p>
    </div>
</body>
</html>
`, containerID, width, height)
}
