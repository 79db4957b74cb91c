package theme

import (
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Pane       lipgloss.Style
	PaneTitle  lipgloss.Style
	Headline   lipgloss.Style
	ActiveLine lipgloss.Style
	Body       lipgloss.Style
	Warn       lipgloss.Style
	Muted      lipgloss.Style
}

func Default() Theme {
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpLavender := lipgloss.Color("#b4befe")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext0 := lipgloss.Color("#a6adc8")
	cpOverlay1 := lipgloss.Color("#7f849c")
	cpSurface0 := lipgloss.Color("#313244")

	return Theme{
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cpLavender),
		PaneTitle:  lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		Headline:   lipgloss.NewStyle().Foreground(cpSubtext0),
		ActiveLine: lipgloss.NewStyle().Bold(true).Background(cpSurface0).Foreground(cpText),
		Body:       lipgloss.NewStyle().Foreground(cpText),
		Warn:       lipgloss.NewStyle().Bold(true).Foreground(cpRed),
		Muted:      lipgloss.NewStyle().Foreground(cpOverlay1),
	}
}

func (t Theme) RenderActiveLine(active bool, line string) string {
	if !active {
		return t.Headline.Render(line)
	}
	return t.ActiveLine.Render(line)
}
