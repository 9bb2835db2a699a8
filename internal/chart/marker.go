package chart

// Marker annotates a series at one time point. Position and Shape use the
// builder's underscored spellings (above_bar, arrow_up, ...); translation
// to the library's spellings happens at render time.
type Marker struct {
	Time     any
	Position string
	Shape    string
	Color    string
	Text     string
	Size     int
	ID       string
	Tooltip  *Tooltip
}

// Tooltip is auxiliary hover metadata for a marker. It is never sent to
// the charting library; the render layer wires it to a custom overlay
// instead. A marker participates in overlay wiring only when it carries
// both an ID and a Tooltip.
type Tooltip struct {
	Title  string
	Fields map[string]string
}

// Payload returns the marker fields sent to the charting library's marker
// call, with tooltip content excluded. Keys use the builder's underscored
// spellings.
func (m Marker) Payload() map[string]any {
	payload := map[string]any{
		"time":     m.Time,
		"position": m.Position,
		"shape":    m.Shape,
	}
	if m.Color != "" {
		payload["color"] = m.Color
	}
	if m.Text != "" {
		payload["text"] = m.Text
	}
	if m.Size > 0 {
		payload["size"] = m.Size
	}
	if m.ID != "" {
		payload["id"] = m.ID
	}
	return payload
}
