package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/oxmail-cli/internal/app"
	"github.com/glabrego/oxmail-cli/internal/config"
	"github.com/glabrego/oxmail-cli/internal/fetch"
	"github.com/glabrego/oxmail-cli/internal/logging"
	"github.com/glabrego/oxmail-cli/internal/tui"
)

// 60fps keeps the redraw and input poll at roughly 16ms.
const frameRate = 60

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "oxmail: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if err := logging.Init(cfg.LogPath, cfg.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled (%v)\n", err)
	}
	defer logging.Close()
	logging.Info("starting", "homepage", config.HomepageURL)

	service := app.NewService(fetch.NewClient(nil), config.HomepageURL, config.SiteURL)

	// The homepage is loaded before the terminal is touched, so a failure
	// here is reported on a normal screen.
	stories, err := service.LoadStories(context.Background())
	if err != nil {
		logging.Error("startup failed", "err", err)
		return err
	}

	// WithAltScreen enters raw mode and the alternate screen for the
	// lifetime of Run and restores the terminal on every return path.
	program := tea.NewProgram(
		tui.NewModel(service, stories),
		tea.WithAltScreen(),
		tea.WithFPS(frameRate),
	)
	if _, err := program.Run(); err != nil {
		logging.Error("tui error", "err", err)
		return fmt.Errorf("tui error: %w", err)
	}

	logging.Info("shutting down")
	return nil
}
