package app

import (
	"context"
	"fmt"
	"time"

	"github.com/glabrego/oxmail-cli/internal/extract"
	"github.com/glabrego/oxmail-cli/internal/logging"
	"github.com/glabrego/oxmail-cli/internal/story"
)

type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Service loads the homepage story list and individual articles for one
// site. Relative story links are prefixed with siteURL, which need not be
// the host the homepage is served from.
type Service struct {
	fetcher     Fetcher
	homepageURL string
	siteURL     string
}

func NewService(fetcher Fetcher, homepageURL, siteURL string) *Service {
	return &Service{fetcher: fetcher, homepageURL: homepageURL, siteURL: siteURL}
}

// LoadStories fetches the homepage and extracts its top stories. An empty
// result is never returned without an error.
func (s *Service) LoadStories(ctx context.Context) ([]*story.Story, error) {
	start := time.Now()
	body, err := s.fetcher.Get(ctx, s.homepageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch homepage: %w", err)
	}

	doc, err := extract.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse homepage: %w", err)
	}

	stories, err := extract.StoryList(doc, s.siteURL)
	if err != nil {
		return nil, fmt.Errorf("read homepage: %w", err)
	}

	logging.Info("homepage loaded", "url", s.homepageURL, "stories", len(stories), "duration", time.Since(start))
	return stories, nil
}

// LoadArticle fetches one story page and returns its cleaned text. It
// satisfies story.Loader.
func (s *Service) LoadArticle(ctx context.Context, link string) (string, error) {
	start := time.Now()
	logging.Debug("fetching article", "url", link)

	body, err := s.fetcher.Get(ctx, link)
	if err != nil {
		logging.Warn("article fetch failed", "url", link, "err", err)
		return "", fmt.Errorf("fetch article: %w", err)
	}

	doc, err := extract.Parse(body)
	if err != nil {
		logging.Warn("article parse failed", "url", link, "err", err)
		return "", fmt.Errorf("parse article: %w", err)
	}

	text, err := extract.ArticleText(doc)
	if err != nil {
		logging.Warn("article extraction failed", "url", link, "err", err)
		return "", fmt.Errorf("read article: %w", err)
	}

	logging.Info("article loaded", "url", link, "bytes", len(text), "duration", time.Since(start))
	return text, nil
}
