package ui

import "github.com/charmbracelet/lipgloss"

// ThemeName identifies one of the built-in color themes.
type ThemeName int

const (
	ThemeDark ThemeName = iota
	ThemeLight
)

func (n ThemeName) String() string {
	switch n {
	case ThemeDark:
		return "dark"
	case ThemeLight:
		return "light"
	default:
		return "unknown"
	}
}

// Toggle returns the other theme.
func (n ThemeName) Toggle() ThemeName {
	if n == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseThemeName maps "dark"/"light" to a ThemeName.
func ParseThemeName(s string) (ThemeName, bool) {
	switch s {
	case "dark":
		return ThemeDark, true
	case "light":
		return ThemeLight, true
	}
	return ThemeDark, false
}

// Palette holds the colors a theme is built from.
type Palette struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Success    lipgloss.Color
	Danger     lipgloss.Color
	Border     lipgloss.Color
}

var palettes = map[ThemeName]Palette{
	ThemeDark: {
		Background: "#121212",
		Surface:    "#1e1e1e",
		Text:       "#e0e0e0",
		Muted:      "#808080",
		Accent:     "#0178d4",
		Success:    "#4ebf71",
		Danger:     "#ba3c5b",
		Border:     "#3a3a3a",
	},
	ThemeLight: {
		Background: "#efefef",
		Surface:    "#f5f5f5",
		Text:       "#1e1e1e",
		Muted:      "#6e6e6e",
		Accent:     "#0178d4",
		Success:    "#2f9e4f",
		Danger:     "#c4314b",
		Border:     "#c8c8c8",
	},
}

// Theme contains the styles used to render the app.
type Theme struct {
	Name    ThemeName
	Palette Palette

	App    lipgloss.Style // full-screen background
	Header lipgloss.Style
	Footer lipgloss.Style
	Empty  lipgloss.Style // shown when no stopwatches remain

	Row        lipgloss.Style // stopwatch row, stopped
	RowStarted lipgloss.Style // stopwatch row, running

	Start  lipgloss.Style
	Stop   lipgloss.Style
	Reset  lipgloss.Style
	Digits lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
	HelpSep  lipgloss.Style
	Leader   lipgloss.Style
}

// NewTheme builds the styles for the named theme.
func NewTheme(name ThemeName) Theme {
	p, ok := palettes[name]
	if !ok {
		name = ThemeDark
		p = palettes[ThemeDark]
	}
	button := lipgloss.NewStyle().
		Bold(true).
		Padding(1, 2).
		Foreground(lipgloss.Color("#ffffff"))
	row := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Background(p.Surface).
		Padding(0, 1)
	return Theme{
		Name:    name,
		Palette: p,
		App: lipgloss.NewStyle().
			Background(p.Background).
			Foreground(p.Text),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text).
			Background(p.Accent).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),
		Empty: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true).
			Padding(1, 2),
		Row:        row,
		RowStarted: row.BorderForeground(p.Success),
		Start:      button.Background(p.Success),
		Stop:       button.Background(p.Danger),
		Reset:      button.Background(p.Muted),
		Digits: lipgloss.NewStyle().
			Foreground(p.Text).
			Padding(0, 2),
		HelpKey: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(p.Muted),
		HelpSep: lipgloss.NewStyle().
			Foreground(p.Border),
		Leader: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(0, 1),
	}
}
