package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glabrego/oxmail-cli/internal/logging"
	"github.com/glabrego/oxmail-cli/internal/story"
	"github.com/glabrego/oxmail-cli/internal/tui/state"
	tuitheme "github.com/glabrego/oxmail-cli/internal/tui/theme"
	"github.com/glabrego/oxmail-cli/internal/tui/view"
)

// Window is the screen currently shown.
type Window int

const (
	WindowHome Window = iota
	WindowArticle
)

func (w Window) String() string {
	if w == WindowArticle {
		return "article"
	}
	return "home"
}

// Model is the navigation state: which window is shown and which story is
// selected. It owns the stories for the lifetime of the program.
type Model struct {
	loader   story.Loader
	stories  []*story.Story
	window   Window
	selected int
	width    int
	height   int
	keys     keyMap
	help     help.Model
	theme    tuitheme.Theme
}

// NewModel starts on the home window with the first story selected. Callers
// must not pass an empty story list.
func NewModel(loader story.Loader, stories []*story.Story) Model {
	return Model{
		loader:  loader,
		stories: stories,
		window:  WindowHome,
		keys:    defaultKeyMap(),
		help:    help.New(),
		theme:   tuitheme.Default(),
	}
}

func (m Model) Window() Window { return m.window }

func (m Model) Selected() int { return m.selected }

// Current returns the selected story, or nil when there are none.
func (m Model) Current() *story.Story {
	if len(m.stories) == 0 {
		return nil
	}
	return m.stories[state.ClampCursor(m.selected, len(m.stories))]
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		logging.Debug("quit requested", "window", m.window)
		return m, tea.Quit
	}

	n := len(m.stories)
	switch m.window {
	case WindowHome:
		switch {
		case key.Matches(msg, m.keys.Down):
			m.selected = state.Next(m.selected, n)
		case key.Matches(msg, m.keys.Up):
			m.selected = state.Prev(m.selected, n)
		case key.Matches(msg, m.keys.Enter):
			m.window = WindowArticle
			m.loadCurrent()
		}
	case WindowArticle:
		switch {
		case key.Matches(msg, m.keys.Enter):
			m.window = WindowHome
		case key.Matches(msg, m.keys.Next):
			m.selected = state.Next(m.selected, n)
			m.loadCurrent()
		case key.Matches(msg, m.keys.Prev):
			m.selected = state.Prev(m.selected, n)
			m.loadCurrent()
		}
	}
	return m, nil
}

// loadCurrent fetches the selected story's article if it has not been
// fetched yet. It blocks the update loop until the fetch finishes; a failure
// is kept on the story for the article window to show.
func (m *Model) loadCurrent() {
	s := m.Current()
	if s == nil || m.loader == nil {
		return
	}
	if _, ok := s.Cached(); ok {
		return
	}
	if _, err := s.Content(context.Background(), m.loader); err != nil {
		logging.Warn("article unavailable", "story", s.Markdown(), "err", err)
		return
	}
	logging.Debug("article cached", "story", s.Markdown())
}

func (m Model) View() string {
	screen := m.screen()
	bindings := m.keys.homeHelp()
	if m.window == WindowArticle {
		bindings = m.keys.articleHelp()
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		view.Render(screen, m.theme),
		view.Footer(m.help.ShortHelpView(bindings), m.width, m.theme),
	)
}

func (m Model) screen() view.Screen {
	// One row is kept for the footer.
	height := m.height - 1
	if m.window == WindowArticle {
		if s := m.Current(); s != nil {
			body, _ := s.Cached()
			return view.Article{
				Title:  s.Headline(),
				Body:   body,
				Err:    s.Err(),
				Width:  m.width,
				Height: height,
			}
		}
	}

	headlines := make([]string, len(m.stories))
	for i, s := range m.stories {
		headlines[i] = s.Headline()
	}
	return view.Home{
		Headlines: headlines,
		Selected:  m.selected,
		Width:     m.width,
		Height:    height,
	}
}
