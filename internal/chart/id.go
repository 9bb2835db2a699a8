package chart

import (
	"strings"

	"github.com/google/uuid"
)

// newID generates an opaque unique id like "chart_3f2a91bc". The id is
// used verbatim as a JavaScript identifier in generated code, so it must
// stay alphanumeric with underscores.
func newID(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + hex[:8]
}
