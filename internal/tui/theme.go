package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zorder/internal/billing"
)

var accent = zstyle.ZburnAccent

// palette is the presentation for one theme. Only rendering reads it.
type palette struct {
	icon  string
	panel lipgloss.Style
	input lipgloss.Style
	label lipgloss.Style
}

var palettes = map[billing.Theme]palette{
	billing.Light: {
		icon: "☀",
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("250")).
			Foreground(lipgloss.Color("235")).
			Background(lipgloss.Color("255")).
			Padding(0, 1),
		input: lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		label: lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	},
	billing.Dark: {
		icon: "☾",
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("235")).
			Padding(0, 1),
		input: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		label: lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
	},
}

func paletteFor(t billing.Theme) palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[billing.Light]
}

// themeBadge renders the toggle indicator shown in every view.
func themeBadge(t billing.Theme) string {
	p := paletteFor(t)
	return lipgloss.NewStyle().Foreground(accent).Render(p.icon + " " + t.String())
}
