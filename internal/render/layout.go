package render

import (
	"github.com/a009/litecharts/internal/chart"
)

// PaneHeights splits the chart's pixel height across panes by their height
// ratios. Every pane except the last gets the floor of its proportional
// share; the last pane receives whatever remains. The results therefore
// always sum exactly to total, leaving no gap or overflow at the bottom of
// the stack regardless of rounding.
func PaneHeights(panes []*chart.Pane, total int) []int {
	heights := make([]int, len(panes))
	if len(panes) == 0 {
		return heights
	}

	ratioSum := 0.0
	for _, p := range panes {
		ratioSum += p.HeightRatio()
	}
	if ratioSum <= 0 {
		// Degenerate ratios: fall back to equal weights.
		ratioSum = float64(len(panes))
		remaining := total
		for i := range panes {
			if i == len(panes)-1 {
				heights[i] = remaining
				break
			}
			h := int(float64(total) / ratioSum)
			heights[i] = h
			remaining -= h
		}
		return heights
	}

	remaining := total
	for i, p := range panes {
		if i == len(panes)-1 {
			heights[i] = remaining
			break
		}
		h := int(float64(total) * p.HeightRatio() / ratioSum)
		heights[i] = h
		remaining -= h
	}

	return heights
}
