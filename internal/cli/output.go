// Package cli renders command results and wires the daemon client for the
// mullvad-rpc commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"go.yaml.in/yaml/v3"
)

// Format represents an output format.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat parses a format string, defaulting to text.
func ParseFormat(s string) Format {
	switch s {
	case "json":
		return FormatJSON
	case "markdown", "md":
		return FormatMarkdown
	default:
		return FormatText
	}
}

// Meta describes a rendered result.
type Meta struct {
	Type      string    `json:"type" yaml:"type"`
	Version   string    `json:"version,omitempty" yaml:"version,omitempty"`
	Generated time.Time `json:"generated" yaml:"generated"`
}

// NewMeta creates metadata with the given type and current timestamp.
func NewMeta(resultType string) Meta {
	return Meta{
		Type:      resultType,
		Version:   "v1",
		Generated: time.Now().UTC(),
	}
}

// Renderable can render itself in multiple formats.
type Renderable interface {
	Meta() Meta
	RenderText(w io.Writer, s Styles) error
	RenderJSON() any
	RenderMarkdown(w io.Writer) error
}

// Output renders results in one format to one writer.
type Output struct {
	format Format
	w      io.Writer
	styles Styles
}

// NewOutput creates an output renderer. Text output is styled only when w is
// a terminal.
func NewOutput(format Format, w io.Writer) *Output {
	return &Output{format: format, w: w, styles: NewStyles(IsTerminal(w))}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Format returns the configured output format.
func (o *Output) Format() Format {
	return o.format
}

// Table creates a new table renderer attached to this output.
func (o *Output) Table(resultType string, headers ...string) *Table {
	return &Table{out: o, meta: NewMeta(resultType), headers: headers}
}

// KV creates a new key-value renderer attached to this output.
func (o *Output) KV(resultType string) *KV {
	return &KV{out: o, meta: NewMeta(resultType)}
}

// Result creates a new result renderer attached to this output.
func (o *Output) Result(resultType, message string) *Result {
	return &Result{out: o, meta: NewMeta(resultType), message: message}
}

// Error creates a new error renderer attached to this output.
func (o *Output) Error(resultType string, err error) *Error {
	return &Error{out: o, meta: NewMeta(resultType + "-error"), err: err, code: ErrorCode(err)}
}

// Render outputs the renderable in the configured format.
func (o *Output) Render(r Renderable) error {
	switch o.format {
	case FormatJSON:
		return o.renderJSON(r)
	case FormatMarkdown:
		return o.renderMarkdown(r)
	default:
		return r.RenderText(o.w, o.styles)
	}
}

func (o *Output) renderJSON(r Renderable) error {
	envelope := struct {
		Meta Meta `json:"meta"`
		Data any  `json:"data"`
	}{
		Meta: r.Meta(),
		Data: r.RenderJSON(),
	}

	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	return enc.Encode(envelope)
}

// Event writes one streamed item. JSON output is one compact object per line
// so the stream can be piped into line-oriented tools.
func (o *Output) Event(kind string, data any, text string) error {
	if o.format == FormatJSON {
		return json.NewEncoder(o.w).Encode(struct {
			Kind string    `json:"kind"`
			Time time.Time `json:"time"`
			Data any       `json:"data"`
		}{kind, time.Now().UTC(), data})
	}
	_, err := fmt.Fprintf(o.w, "%s %s %s\n",
		o.styles.Dim.Render(time.Now().Format(time.TimeOnly)),
		o.styles.Accent.Render(kind),
		text)
	return err
}

func (o *Output) renderMarkdown(r Renderable) error {
	if _, err := fmt.Fprintln(o.w, "---"); err != nil {
		return err
	}

	enc := yaml.NewEncoder(o.w)
	enc.SetIndent(2)
	if err := enc.Encode(r.Meta()); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	if _, err := fmt.Fprint(o.w, "---\n\n"); err != nil {
		return err
	}
	return r.RenderMarkdown(o.w)
}
