package cli

import "github.com/charmbracelet/lipgloss"

// Shared colors.
var (
	AccentColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	DimColor    = lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"}
	WarnColor   = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"}
	GreenColor  = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	AmberColor  = lipgloss.AdaptiveColor{Light: "#D4A017", Dark: "#FFD866"}
)

// Styles are the text styles used by renderers. Build them with NewStyles.
type Styles struct {
	Key    lipgloss.Style
	Accent lipgloss.Style
	Dim    lipgloss.Style
	Good   lipgloss.Style
	Warn   lipgloss.Style
	Bad    lipgloss.Style
	Header lipgloss.Style
}

// NewStyles returns colored styles when color is true and plain ones
// otherwise.
func NewStyles(color bool) Styles {
	plain := lipgloss.NewStyle()
	if !color {
		return Styles{Key: plain, Accent: plain, Dim: plain, Good: plain, Warn: plain, Bad: plain, Header: plain}
	}
	return Styles{
		Key:    plain.Foreground(DimColor),
		Accent: plain.Foreground(AccentColor).Bold(true),
		Dim:    plain.Foreground(DimColor),
		Good:   plain.Foreground(GreenColor).Bold(true),
		Warn:   plain.Foreground(AmberColor).Bold(true),
		Bad:    plain.Foreground(WarnColor).Bold(true),
		Header: plain.Foreground(AccentColor).Bold(true),
	}
}

// Tone picks a style for a status word.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneGood
	ToneWarn
	ToneBad
)

// Status renders s in the style for tone.
func (s Styles) Status(text string, tone Tone) string {
	switch tone {
	case ToneGood:
		return s.Good.Render(text)
	case ToneWarn:
		return s.Warn.Render(text)
	case ToneBad:
		return s.Bad.Render(text)
	default:
		return s.Accent.Render(text)
	}
}
