package convert

import (
	"reflect"
	"testing"
)

func TestToCamelCase(t *testing.T) {
	cases := map[string]string{
		"line_width":        "lineWidth",
		"price_format":      "priceFormat",
		"min_move":          "minMove",
		"width":             "width",
		"alreadyCamelCase":  "alreadyCamelCase",
		"time_scale":        "timeScale",
		"price_line_source": "priceLineSource",
	}

	for input, want := range cases {
		if got := ToCamelCase(input); got != want {
			t.Errorf("ToCamelCase(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestTranslateOptionsNested(t *testing.T) {
	options := map[string]any{
		"line_width": 2,
		"price_format": map[string]any{
			"min_move": 0.01,
		},
	}

	got := TranslateOptions(options)
	want := map[string]any{
		"lineWidth": 2,
		"priceFormat": map[string]any{
			"minMove": 0.01,
		},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("TranslateOptions = %v, want %v", got, want)
	}
}

func TestTranslateOptionsIdempotentOnCamelCase(t *testing.T) {
	options := map[string]any{
		"lineWidth": 2,
		"priceFormat": map[string]any{
			"minMove": 0.01,
		},
	}

	got := TranslateOptions(options)
	if !reflect.DeepEqual(got, options) {
		t.Errorf("TranslateOptions on camelCase input = %v, want unchanged %v", got, options)
	}
}

func TestTranslateOptionsEnumValues(t *testing.T) {
	options := map[string]any{
		"position": "above_bar",
		"shape":    "arrow_down",
		"text":     "not_an_enum",
		"size":     2,
		"visible":  true,
	}

	got := TranslateOptions(options)

	if got["position"] != "aboveBar" {
		t.Errorf("position = %v, want aboveBar", got["position"])
	}
	if got["shape"] != "arrowDown" {
		t.Errorf("shape = %v, want arrowDown", got["shape"])
	}
	if got["text"] != "not_an_enum" {
		t.Errorf("unrecognized string value was rewritten: %v", got["text"])
	}
	if got["size"] != 2 || got["visible"] != true {
		t.Errorf("non-string values changed: size=%v visible=%v", got["size"], got["visible"])
	}
}

func TestTranslateOptionsEmpty(t *testing.T) {
	got := TranslateOptions(map[string]any{})
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestTranslateList(t *testing.T) {
	items := []map[string]any{
		{"line_style": 2},
		{"axis_label_visible": false},
	}

	got := TranslateList(items)
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if _, ok := got[0]["lineStyle"]; !ok {
		t.Errorf("first item missing lineStyle: %v", got[0])
	}
	if _, ok := got[1]["axisLabelVisible"]; !ok {
		t.Errorf("second item missing axisLabelVisible: %v", got[1])
	}
}
