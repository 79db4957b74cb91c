package view

import (
	"fmt"

	tuitheme "github.com/glabrego/oxmail-cli/internal/tui/theme"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Screen is what the render step paints: exactly one of Home or Article.
type Screen interface {
	isScreen()
}

func (Home) isScreen()    {}
func (Article) isScreen() {}

// Render paints s. It only reads its input.
func Render(s Screen, th tuitheme.Theme) string {
	switch s := s.(type) {
	case Home:
		return RenderHome(s, th)
	case Article:
		return RenderArticle(s, th)
	default:
		return fmt.Sprintf("unknown screen %T", s)
	}
}

func paneSize(width, height int) (int, int) {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	// The rounded border takes one cell on every side.
	return max(1, width-2), max(1, height-2)
}
