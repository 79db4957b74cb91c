package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const (
	// HomepageURL is where the story list is fetched from.
	HomepageURL = "https://oxfordmail.co.uk"
	// SiteURL prefixes every relative story link found on the homepage.
	SiteURL = "https://www.oxfordmail.co.uk"
)

const defaultLogFile = "oxmail.log"

// Config holds runtime settings for the CLI app.
type Config struct {
	LogPath string
	Debug   bool
}

func LoadFromEnv() (Config, error) {
	cfg := Config{
		LogPath: os.Getenv("OXMAIL_LOG_PATH"),
	}

	if cfg.LogPath == "" {
		cfg.LogPath = filepath.Join(os.TempDir(), defaultLogFile)
	}
	if raw := os.Getenv("OXMAIL_DEBUG"); raw != "" {
		debug, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("OXMAIL_DEBUG must be a boolean: %s", raw)
		}
		cfg.Debug = debug
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.LogPath == "" {
		return errors.New("LogPath is required")
	}
	if c.LogPath[len(c.LogPath)-1] == os.PathSeparator {
		return fmt.Errorf("LogPath must be a file, not a directory: %s", c.LogPath)
	}
	return nil
}
