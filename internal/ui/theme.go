package ui

import (
	"github.com/yukimo/studytrack.git/internal/service"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the styles the views draw with. Names mirror the
// appearance presets the settings store persists.
type Theme struct {
	Name string

	Title    lipgloss.Style
	Header   lipgloss.Style
	Box      lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Positive lipgloss.Style
	Warning  lipgloss.Style

	intensity map[service.Intensity]lipgloss.Style
}

// IntensityStyle returns the heatmap cell style for a bucket.
func (t Theme) IntensityStyle(level service.Intensity) lipgloss.Style {
	if style, ok := t.intensity[level]; ok {
		return style
	}
	return t.Muted
}

func newTheme(name, title, accent, positive string) Theme {
	return Theme{
		Name: name,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color(title)).
			Padding(0, 1),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(accent)),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(title)).
			Padding(0, 2),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
		Positive: lipgloss.NewStyle().Foreground(lipgloss.Color(positive)).Bold(true),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true),
		intensity: map[service.Intensity]lipgloss.Style{
			service.IntensityNone:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
			service.IntensityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("#dcfce7")),
			service.IntensityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80")),
			service.IntensityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("#16a34a")),
			service.IntensityVeryHigh: lipgloss.NewStyle().Foreground(lipgloss.Color("#2563eb")),
			service.IntensityExtreme:  lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626")),
		},
	}
}

var themes = map[string]Theme{
	"default": newTheme("default", "#7D56F4", "#3b82f6", "#22c55e"),
	"ocean":   newTheme("ocean", "#0e7490", "#06b6d4", "#14b8a6"),
	"sunset":  newTheme("sunset", "#c2410c", "#fb923c", "#f472b6"),
	"forest":  newTheme("forest", "#166534", "#22c55e", "#10b981"),
	"night":   newTheme("night", "#312e81", "#818cf8", "#c084fc"),
	"warm":    newTheme("warm", "#b45309", "#f59e0b", "#ef4444"),
	"bubu":    newTheme("bubu", "#d97706", "#f59e0b", "#fb923c"),
}

// ThemeByName resolves a preset, falling back to default for unknown
// names so a stale preference never breaks rendering.
func ThemeByName(name string) Theme {
	if theme, ok := themes[name]; ok {
		return theme
	}
	return themes["default"]
}
