package cli

import (
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// Paragraph word-wraps s at width and indents every line by margin spaces.
func Paragraph(s string, width int, margin uint) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return indent.String(wordwrap.String(s, width), margin)
}

// Truncate shortens s to at most width cells, ending with an ellipsis when cut.
func Truncate(s string, width uint) string {
	return truncate.StringWithTail(s, width, "…")
}
