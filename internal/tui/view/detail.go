package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	tuitheme "github.com/glabrego/oxmail-cli/internal/tui/theme"
)

const (
	articleTitlePrefix = "Article - "
	articleHPadding    = 2
)

// Article is the reader pane for the selected story. Err, when set, replaces
// the body with a visible placeholder.
type Article struct {
	Title  string
	Body   string
	Err    error
	Width  int
	Height int
}

func RenderArticle(a Article, th tuitheme.Theme) string {
	inner, innerHeight := paneSize(a.Width, a.Height)
	textWidth := max(1, inner-2*articleHPadding)
	// Title, blank line, and one blank line of bottom padding.
	rows := max(1, innerHeight-3)

	title := ansi.Truncate(articleTitlePrefix+a.Title, textWidth, "...")

	var body string
	switch {
	case a.Err != nil:
		body = th.Warn.Render(clipLines(wrapText("Could not load article: "+a.Err.Error(), textWidth), rows))
	case strings.TrimSpace(a.Body) == "":
		body = th.Muted.Render("(this article has no text)")
	default:
		body = th.Body.Render(clipLines(wrapText(a.Body, textWidth), rows))
	}

	content := strings.Join([]string{th.PaneTitle.Render(title), "", body}, "\n")
	return th.Pane.
		Width(inner).
		Padding(0, articleHPadding, 1, articleHPadding).
		Render(content)
}

func wrapText(text string, width int) string {
	return lipgloss.NewStyle().Width(max(1, width)).Render(text)
}

func clipLines(text string, limit int) string {
	lines := strings.Split(text, "\n")
	if len(lines) <= limit {
		return text
	}
	return strings.Join(lines[:limit], "\n")
}
