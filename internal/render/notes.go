package render

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var notesMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

// renderNotes converts the chart's markdown notes to HTML for the optional
// commentary section below the panes. Empty notes emit nothing; a
// conversion failure degrades to no notes rather than failing the render.
func renderNotes(markdown string) template.HTML {
	if markdown == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := notesMarkdown.Convert([]byte(markdown), &buf); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}
