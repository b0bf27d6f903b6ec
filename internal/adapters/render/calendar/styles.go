package calendar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// palette maps the legend's named color tokens to terminal colors. Tokens that
// are not listed are handed to lipgloss as-is, so hex and ANSI codes work.
var palette = map[string]lipgloss.Color{
	"blue":   lipgloss.Color("#83a598"),
	"red":    lipgloss.Color("#fb4934"),
	"green":  lipgloss.Color("#8ec07c"),
	"yellow": lipgloss.Color("#fabd2f"),
	"orange": lipgloss.Color("#fe8019"),
	"purple": lipgloss.Color("#d3869b"),
}

func colorFor(token string) lipgloss.Color {
	if c, ok := palette[strings.ToLower(strings.TrimSpace(token))]; ok {
		return c
	}
	return lipgloss.Color(token)
}

type styles struct {
	plain    bool
	title    lipgloss.Style
	header   lipgloss.Style
	date     lipgloss.Style
	detail   lipgloss.Style
	warning  lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
	weekday  lipgloss.Style
	dayPlain lipgloss.Style
}

func newStyles(plain bool) styles {
	if plain {
		return styles{
			plain:    true,
			title:    lipgloss.NewStyle(),
			header:   lipgloss.NewStyle(),
			date:     lipgloss.NewStyle(),
			detail:   lipgloss.NewStyle(),
			warning:  lipgloss.NewStyle(),
			section:  lipgloss.NewStyle().MarginTop(1),
			empty:    lipgloss.NewStyle(),
			weekday:  lipgloss.NewStyle(),
			dayPlain: lipgloss.NewStyle(),
		}
	}

	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#19235E")),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		date:     lipgloss.NewStyle().Bold(true),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
		weekday:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		dayPlain: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

func (s styles) dot(color string) string {
	if s.plain {
		return dotGlyph
	}
	return lipgloss.NewStyle().Foreground(colorFor(color)).Render(dotGlyph)
}

func (s styles) highlight(color, text string) string {
	if s.plain {
		return text
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		Background(colorFor(color)).
		Render(text)
}
