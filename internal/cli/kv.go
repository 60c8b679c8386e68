package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KV renders key-value pairs in insertion order.
// Created via Output.KV().
type KV struct {
	out   *Output
	meta  Meta
	pairs []kvPair
}

type kvPair struct {
	key   string
	value any
	tone  Tone
	toned bool
}

// Set adds a key-value pair. Value can be any type.
func (k *KV) Set(key string, value any) *KV {
	k.pairs = append(k.pairs, kvPair{key: key, value: value})
	return k
}

// SetStatus adds a pair whose value is highlighted with tone in text output.
func (k *KV) SetStatus(key string, value any, tone Tone) *KV {
	k.pairs = append(k.pairs, kvPair{key: key, value: value, tone: tone, toned: true})
	return k
}

// Render outputs the key-value pairs in the configured format.
func (k *KV) Render() error {
	return k.out.Render(k)
}

// Meta returns the metadata.
func (k *KV) Meta() Meta {
	return k.meta
}

// RenderText writes aligned key: value lines.
func (k *KV) RenderText(w io.Writer, s Styles) error {
	width := 0
	for _, p := range k.pairs {
		width = max(width, lipgloss.Width(p.key)+1)
	}
	for _, p := range k.pairs {
		key := s.Key.Render(fmt.Sprintf("%-*s", width, p.key+":"))
		value := formatValue(p.value)
		if p.toned {
			value = s.Status(value, p.tone)
		}
		if _, err := fmt.Fprintf(w, "%s  %s\n", key, value); err != nil {
			return err
		}
	}
	return nil
}

// RenderJSON returns the data as an object.
func (k *KV) RenderJSON() any {
	result := make(map[string]any, len(k.pairs))
	for _, p := range k.pairs {
		result[toJSONKey(p.key)] = p.value
	}
	return result
}

// RenderMarkdown writes key-value pairs as a definition-style list.
func (k *KV) RenderMarkdown(w io.Writer) error {
	for _, p := range k.pairs {
		if _, err := fmt.Fprintf(w, "**%s:** %s\n\n", p.key, formatMarkdownValue(p.value)); err != nil {
			return err
		}
	}
	return nil
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "-"
	case bool:
		if x {
			return "yes"
		}
		return "no"
	case []string:
		if len(x) == 0 {
			return "-"
		}
		return strings.Join(x, ", ")
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatMarkdownValue formats a value for markdown output.
func formatMarkdownValue(v any) string {
	s := formatValue(v)
	if looksLikeAccount(s) {
		return "`" + s + "`"
	}
	return strings.ReplaceAll(s, "|", "\\|")
}

// looksLikeAccount reports whether s is an account number or other long
// digit string worth rendering as code.
func looksLikeAccount(s string) bool {
	if len(s) < 12 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// toJSONKey converts a header to a JSON key (lowercase, underscores).
func toJSONKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", "_"))
}
