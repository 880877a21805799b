package main

import "github.com/charmbracelet/lipgloss"

// palette is a named set of colors a theme resolves its styles from.
type palette struct {
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color
	Background lipgloss.Color
}

var darkPalette = palette{
	Primary:    lipgloss.Color("#6AC1FF"),
	Muted:      lipgloss.Color("#666666"),
	Success:    lipgloss.Color("#42C94E"),
	Warning:    lipgloss.Color("#D4A72C"),
	Error:      lipgloss.Color("#E0545C"),
	Border:     lipgloss.Color("#333333"),
	Background: lipgloss.Color("#000000"),
}

var lightPalette = palette{
	Primary:    lipgloss.Color("#0066CC"),
	Muted:      lipgloss.Color("#999999"),
	Success:    lipgloss.Color("#006600"),
	Warning:    lipgloss.Color("#CC6600"),
	Error:      lipgloss.Color("#CC0000"),
	Border:     lipgloss.Color("#CCCCCC"),
	Background: lipgloss.Color("#FFFFFF"),
}

// theme is the resolved set of styles panels render with.
type theme struct {
	Header lipgloss.Style
	Muted  lipgloss.Style

	StatusOK      lipgloss.Style
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style

	Progress     lipgloss.Style
	ProgressTrack lipgloss.Style

	BorderStyle lipgloss.Style
}

func newTheme(p palette) theme {
	return theme{
		Header: lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(p.Muted),

		StatusOK:      lipgloss.NewStyle().Foreground(p.Success).Bold(true),
		StatusWarning: lipgloss.NewStyle().Foreground(p.Warning).Bold(true),
		StatusError:   lipgloss.NewStyle().Foreground(p.Error).Bold(true),

		Progress:      lipgloss.NewStyle().Foreground(p.Success),
		ProgressTrack: lipgloss.NewStyle().Foreground(p.Muted),

		BorderStyle: lipgloss.NewStyle().Foreground(p.Border),
	}
}

// themeByName resolves a config-supplied theme name, defaulting to dark for
// any name other than "light", including the empty name. loadConfig already
// rejects names other than "dark", "light", and empty as a config error.
func themeByName(name string) theme {
	switch name {
	case "light":
		return newTheme(lightPalette)
	default:
		return newTheme(darkPalette)
	}
}

// statusStyle picks the style for a free-form status word.
func (t theme) statusStyle(status string) lipgloss.Style {
	switch status {
	case "ok", "ready", "active":
		return t.StatusOK
	case "warning", "degraded":
		return t.StatusWarning
	case "error", "failed":
		return t.StatusError
	default:
		return t.Muted
	}
}
