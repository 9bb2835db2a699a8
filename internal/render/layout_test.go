package render

import (
	"testing"

	"github.com/a009/litecharts/internal/chart"
)

func makePanes(ratios ...any) []*chart.Pane {
	panes := make([]*chart.Pane, len(ratios))
	for i, r := range ratios {
		panes[i] = chart.NewPane(map[string]any{"height_ratio": r})
	}
	return panes
}

func TestPaneHeightsSingle(t *testing.T) {
	heights := PaneHeights(makePanes(1.0), 600)
	if len(heights) != 1 || heights[0] != 600 {
		t.Errorf("Expected [600], got %v", heights)
	}
}

func TestPaneHeightsProportional(t *testing.T) {
	heights := PaneHeights(makePanes(0.7, 0.3), 600)
	if heights[0] != 420 {
		t.Errorf("Expected first pane height 420, got %d", heights[0])
	}
	if heights[1] != 180 {
		t.Errorf("Expected second pane height 180, got %d", heights[1])
	}
}

func TestPaneHeightsLastPaneGetsRemainder(t *testing.T) {
	// 100/3 = 33.33; first two floor to 33, last absorbs the remainder
	heights := PaneHeights(makePanes(1.0, 1.0, 1.0), 100)
	if heights[0] != 33 || heights[1] != 33 {
		t.Errorf("Expected first two heights 33, got %v", heights)
	}
	if heights[2] != 34 {
		t.Errorf("Expected last pane height 34, got %d", heights[2])
	}
}

func TestPaneHeightsSumToTotal(t *testing.T) {
	cases := [][]any{
		{1.0, 1.0, 1.0},
		{0.5, 0.25, 0.25},
		{3, 1},
		{0.61, 0.17, 0.22},
	}
	for _, ratios := range cases {
		heights := PaneHeights(makePanes(ratios...), 600)
		sum := 0
		for _, h := range heights {
			if h < 0 {
				t.Errorf("Negative height %d for ratios %v", h, ratios)
			}
			sum += h
		}
		if sum != 600 {
			t.Errorf("Heights %v for ratios %v sum to %d, want 600", heights, ratios, sum)
		}
	}
}

func TestPaneHeightsDefaultRatio(t *testing.T) {
	// Missing or invalid height_ratio defaults to 1.0
	panes := []*chart.Pane{
		chart.NewPane(nil),
		chart.NewPane(map[string]any{"height_ratio": "tall"}),
	}
	heights := PaneHeights(panes, 600)
	if heights[0] != 300 || heights[1] != 300 {
		t.Errorf("Expected equal split [300 300], got %v", heights)
	}
}

func TestPaneHeightsDegenerateRatios(t *testing.T) {
	// A zero ratio sum falls back to equal weights
	heights := PaneHeights(makePanes(0.0, 0.0), 600)
	if heights[0] != 300 || heights[1] != 300 {
		t.Errorf("Expected equal split [300 300], got %v", heights)
	}
}
