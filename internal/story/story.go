package story

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// ContentState tracks the lazy article fetch for a Story.
type ContentState int

const (
	Unfetched ContentState = iota
	Fetched
	FetchFailed
)

func (s ContentState) String() string {
	switch s {
	case Unfetched:
		return "unfetched"
	case Fetched:
		return "fetched"
	case FetchFailed:
		return "fetch-failed"
	default:
		return fmt.Sprintf("ContentState(%d)", int(s))
	}
}

// Loader produces the cleaned article text for an absolute story link.
type Loader interface {
	LoadArticle(ctx context.Context, link string) (string, error)
}

// Story is one headline discovered on the homepage. Headline and link are
// fixed at construction; content is filled in at most once.
type Story struct {
	headline string
	link     string

	state   ContentState
	content string
	err     error
}

// New builds a Story whose link is baseURL followed by the relative href.
func New(headline, baseURL, href string) (*Story, error) {
	headline = strings.TrimSpace(headline)
	if headline == "" {
		return nil, fmt.Errorf("story has no headline")
	}
	link, err := validateLink(baseURL + href)
	if err != nil {
		return nil, fmt.Errorf("story %q: %w", headline, err)
	}
	return &Story{headline: headline, link: link}, nil
}

func validateLink(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("link is empty")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid link format: %s", trimmed)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("unsupported link scheme: %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("invalid link host: %s", trimmed)
	}
	return trimmed, nil
}

func (s *Story) Headline() string { return s.headline }

func (s *Story) Link() string { return s.link }

// Markdown renders the story as a markdown link reference.
func (s *Story) Markdown() string {
	return fmt.Sprintf("[%s](%s)", s.headline, s.link)
}

func (s *Story) State() ContentState { return s.state }

// Err returns the error from the most recent failed fetch, if the story is
// in the FetchFailed state.
func (s *Story) Err() error {
	if s.state != FetchFailed {
		return nil
	}
	return s.err
}

// Cached returns the article text when it has already been fetched.
func (s *Story) Cached() (string, bool) {
	if s.state != Fetched {
		return "", false
	}
	return s.content, true
}

// Content returns the article text, calling loader only when the story has
// not been fetched successfully yet. A failure leaves the story retryable.
func (s *Story) Content(ctx context.Context, loader Loader) (string, error) {
	if s.state == Fetched {
		return s.content, nil
	}

	text, err := loader.LoadArticle(ctx, s.link)
	if err != nil {
		s.state = FetchFailed
		s.err = err
		return "", err
	}

	s.state = Fetched
	s.content = text
	s.err = nil
	return text, nil
}
