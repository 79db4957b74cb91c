package view

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/glabrego/oxmail-cli/internal/tui/state"
	tuitheme "github.com/glabrego/oxmail-cli/internal/tui/theme"
)

const (
	homeTitle       = "Stories"
	highlightSymbol = ">> "
)

// Home is the headline list with the selected row highlighted.
type Home struct {
	Headlines []string
	Selected  int
	Width     int
	Height    int
}

func RenderHome(h Home, th tuitheme.Theme) string {
	inner, innerHeight := paneSize(h.Width, h.Height)
	// Title plus the blank line under it.
	rows := max(1, innerHeight-2)

	lines := make([]string, 0, rows+2)
	lines = append(lines, th.PaneTitle.Render(homeTitle), "")

	start, end := state.CenteredWindow(len(h.Headlines), h.Selected, rows)
	for i := start; i < end; i++ {
		lines = append(lines, RenderHeadlineLine(h.Headlines[i], i == h.Selected, inner, th))
	}
	return th.Pane.Width(inner).Render(strings.Join(lines, "\n"))
}

func RenderHeadlineLine(headline string, active bool, width int, th tuitheme.Theme) string {
	prefix := strings.Repeat(" ", len(highlightSymbol))
	if active {
		prefix = highlightSymbol
	}
	line := ansi.Truncate(prefix+strings.TrimSpace(headline), max(1, width), "...")
	return th.RenderActiveLine(active, line)
}
