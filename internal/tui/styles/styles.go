package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette is one color scheme
type Palette struct {
	Primary      lipgloss.Color
	PrimaryLight lipgloss.Color
	Text         lipgloss.Color
	TextDark     lipgloss.Color
	Background   lipgloss.Color // 100
	Surface      lipgloss.Color // 500
	Base         lipgloss.Color // 900
	Red          lipgloss.Color
	Yellow       lipgloss.Color
}

// Color palettes
var (
	DarkPalette = Palette{
		Primary:      lipgloss.Color("#6741d9"),
		PrimaryLight: lipgloss.Color("#7950f2"),
		Text:         lipgloss.Color("#dee2e6"),
		TextDark:     lipgloss.Color("#adb5bd"),
		Background:   lipgloss.Color("#343a40"),
		Surface:      lipgloss.Color("#2b3035"),
		Base:         lipgloss.Color("#212529"),
		Red:          lipgloss.Color("#fa5252"),
		Yellow:       lipgloss.Color("#fcc419"),
	}

	LightPalette = Palette{
		Primary:      lipgloss.Color("#8EC3B0"),
		PrimaryLight: lipgloss.Color("#9ED5C5"),
		Text:         lipgloss.Color("#2b3035"),
		TextDark:     lipgloss.Color("#212529"),
		Background:   lipgloss.Color("#F8F6F4"),
		Surface:      lipgloss.Color("#E3F4F4"),
		Base:         lipgloss.Color("#D2E9E9"),
		Red:          lipgloss.Color("#e03131"),
		Yellow:       lipgloss.Color("#f08c00"),
	}
)

// Theme icons shown in the header (sun switches to light, moon to dark)
const (
	SunIcon  = "☀"
	MoonIcon = "☾"
)

// Theme holds every style derived from a palette
type Theme struct {
	Dark    bool
	Palette Palette

	// Borders
	ActiveBorder   lipgloss.Style
	InactiveBorder lipgloss.Style

	// Header
	Header    lipgloss.Style
	Logo      lipgloss.Style
	NumResult lipgloss.Style

	// Text styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Dim      lipgloss.Style
	Accent   lipgloss.Style
	Error    lipgloss.Style
	Star     lipgloss.Style
	Italic   lipgloss.Style

	// Buttons
	Button       lipgloss.Style
	ToggleButton lipgloss.Style

	// Summary
	Summary lipgloss.Style

	// Match highlight for filtered titles
	MatchHighlight lipgloss.Style

	// Status bar
	Footer   lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewTheme builds the styles for the dark or light palette
func NewTheme(dark bool) Theme {
	p := LightPalette
	if dark {
		p = DarkPalette
	}

	return Theme{
		Dark:    dark,
		Palette: p,

		ActiveBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.PrimaryLight),
		InactiveBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Background),

		Header: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Primary).
			Padding(0, 1),
		Logo: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Primary).
			Bold(true),
		NumResult: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Primary),

		Title:    lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(p.TextDark),
		Dim:      lipgloss.NewStyle().Foreground(p.TextDark).Faint(true),
		Accent:   lipgloss.NewStyle().Foreground(p.PrimaryLight).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(p.Red).Bold(true),
		Star:     lipgloss.NewStyle().Foreground(p.Yellow),
		Italic:   lipgloss.NewStyle().Foreground(p.Text).Italic(true),

		Button: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Primary).
			Padding(0, 1),
		ToggleButton: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Base).
			Bold(true),

		Summary: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Background).
			Padding(0, 1),

		MatchHighlight: lipgloss.NewStyle().
			Foreground(p.PrimaryLight).
			Bold(true),

		Footer:   lipgloss.NewStyle().Foreground(p.TextDark),
		HelpKey:  lipgloss.NewStyle().Foreground(p.PrimaryLight),
		HelpDesc: lipgloss.NewStyle().Foreground(p.TextDark),
	}
}

// Icon returns the header icon for toggling away from the current theme
func (t Theme) Icon() string {
	if t.Dark {
		return SunIcon
	}
	return MoonIcon
}

// Helper functions

// Truncate truncates a string to the given display width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 3 {
		if width > len(runes) {
			return s
		}
		return string(runes[:width])
	}
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

// Wrap breaks s into lines no wider than width, splitting on spaces
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if lipgloss.Width(line)+1+lipgloss.Width(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

// RenderListRow renders a complete list row with uniform background when selected.
// This function styles each part explicitly to avoid ANSI reset code issues.
// parts is a slice of {text, fgColor} pairs. Use nil for default foreground.
func (t Theme) RenderListRow(parts []RowPart, selected bool, width int) string {
	bg := t.Palette.Background
	defaultFg := t.Palette.TextDark
	selectedFg := t.Palette.Text

	var result string
	visibleLen := 0

	for _, part := range parts {
		style := lipgloss.NewStyle()
		if part.Foreground != nil {
			style = style.Foreground(*part.Foreground)
		} else if selected {
			style = style.Foreground(selectedFg)
		} else {
			style = style.Foreground(defaultFg)
		}
		if selected {
			style = style.Background(bg)
		}
		result += style.Render(part.Text)
		visibleLen += lipgloss.Width(part.Text)
	}

	// Add padding to fill width (subtract 2 for left/right margin)
	paddingNeeded := width - visibleLen - 2
	if paddingNeeded > 0 {
		padStyle := lipgloss.NewStyle()
		if selected {
			padStyle = padStyle.Background(bg)
		}
		result += padStyle.Render(strings.Repeat(" ", paddingNeeded))
	}

	// Add margins
	marginStyle := lipgloss.NewStyle()
	if selected {
		marginStyle = marginStyle.Background(bg)
	}
	margin := marginStyle.Render(" ")

	return margin + result + margin
}

// RowPart represents a part of a row with optional foreground color
type RowPart struct {
	Text       string
	Foreground *lipgloss.Color
}

// TextWidth returns the display width of s
func TextWidth(s string) int {
	return lipgloss.Width(s)
}
