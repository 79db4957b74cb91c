package view

import (
	"github.com/charmbracelet/x/ansi"

	tuitheme "github.com/glabrego/oxmail-cli/internal/tui/theme"
)

// Footer renders the key help line under the pane.
func Footer(helpLine string, width int, th tuitheme.Theme) string {
	if width <= 0 {
		width = defaultWidth
	}
	return th.Muted.Render(ansi.Truncate(helpLine, width, "..."))
}
