package render

import (
	"fmt"

	"github.com/a009/litecharts/internal/chart"
)

// markerTooltips collects the overlay lookup table for a pane: the tooltip
// payload of every marker across the pane's series that carries both an id
// and a tooltip, keyed by marker id. Later markers win on id collision.
// Markers missing either field still render as plain markers; they just
// get no overlay wiring.
func markerTooltips(p *chart.Pane) map[string]map[string]any {
	tooltips := make(map[string]map[string]any)

	for _, s := range p.Series() {
		for _, m := range s.Markers() {
			if m.ID == "" || m.Tooltip == nil {
				continue
			}
			tooltips[m.ID] = map[string]any{
				"title":  m.Tooltip.Title,
				"fields": m.Tooltip.Fields,
			}
		}
	}

	return tooltips
}

// tooltipJS emits the overlay for one pane: a floating element appended to
// the pane container plus a crosshair-move subscription that shows the
// matching tooltip near the pointer when a plotted object with a known id
// is hovered, and hides it otherwise. The charting library has no native
// marker tooltips; this is layered on top of it.
func tooltipJS(chartVar, containerID string, tooltips map[string]map[string]any) string {
	tooltipVar := "tooltip_" + chartVar
	dataVar := "markerTooltips_" + chartVar

	return fmt.Sprintf(`// Marker tooltips
    const %[1]s = %[2]s;
    const %[3]s = document.createElement('div');
    %[3]s.style.cssText = 'position:absolute;display:none;padding:8px 12px;' +
        'background:rgba(0,0,0,0.85);color:white;border-radius:4px;' +
        'font-size:12px;pointer-events:none;z-index:1000;max-width:250px;';
    document.getElementById('%[4]s').style.position = 'relative';
    document.getElementById('%[4]s').appendChild(%[3]s);
    %[5]s.subscribeCrosshairMove(function(param) {
        if (param.hoveredObjectId && %[1]s[param.hoveredObjectId]) {
            const data = %[1]s[param.hoveredObjectId];
            let html = data.title ? '<strong>' + data.title + '</strong><br>' : '';
            if (data.fields) {
                for (const [key, val] of Object.entries(data.fields)) {
                    html += '<span style="color:#aaa">' + key + ':</span> ';
                    html += val + '<br>';
                }
            }
            %[3]s.innerHTML = html;
            %[3]s.style.display = 'block';
            if (param.point) {
                %[3]s.style.left = (param.point.x + 15) + 'px';
                %[3]s.style.top = (param.point.y - 15) + 'px';
            }
        } else {
            %[3]s.style.display = 'none';
        }
    });`, dataVar, jsonJS(tooltips), tooltipVar, containerID, chartVar)
}
