// Package extract pulls the story list and article text out of the site's
// markup. The selectors are tied to one site's page shape; a markup change
// there surfaces here as an error, never as silently partial output.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	nethtml "golang.org/x/net/html"

	"github.com/glabrego/oxmail-cli/internal/story"
)

var (
	ErrExtraction         = errors.New("extract story list")
	ErrNotFound           = errors.New("article body not found")
	ErrMalformedParagraph = errors.New("malformed paragraph")
)

const (
	HeadlineSelector    = ".top-stories .omnicard__headline"
	ArticleBodySelector = ".article-body"
	ParagraphSelector   = "p"
)

var (
	headlineMatcher    = cascadia.MustCompile(HeadlineSelector)
	articleBodyMatcher = cascadia.MustCompile(ArticleBodySelector)
	paragraphMatcher   = cascadia.MustCompile(ParagraphSelector)
)

// Parse builds a queryable document from raw HTML.
func Parse(body []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

// StoryList returns one Story per top-story headline in document order.
// Any headline without a leading text node, or whose parent carries no href,
// fails the whole extraction.
func StoryList(doc *goquery.Document, baseURL string) ([]*story.Story, error) {
	matches := doc.FindMatcher(headlineMatcher)
	if matches.Length() == 0 {
		return nil, fmt.Errorf("%w: nothing matches %q", ErrExtraction, HeadlineSelector)
	}

	stories := make([]*story.Story, 0, matches.Length())
	var err error
	matches.EachWithBreak(func(i int, sel *goquery.Selection) bool {
		headline, ok := leadingText(sel.Get(0))
		if !ok {
			err = fmt.Errorf("%w: headline %d has no text", ErrExtraction, i)
			return false
		}
		href, ok := sel.Parent().Attr("href")
		if !ok {
			err = fmt.Errorf("%w: headline %d (%q) has no enclosing link", ErrExtraction, i, headline)
			return false
		}
		s, serr := story.New(headline, baseURL, href)
		if serr != nil {
			err = fmt.Errorf("%w: headline %d: %v", ErrExtraction, i, serr)
			return false
		}
		stories = append(stories, s)
		return true
	})
	if err != nil {
		return nil, err
	}
	return stories, nil
}

// ArticleText joins the trimmed text of every paragraph in the first article
// body with newlines. Repeated paragraphs are kept.
func ArticleText(doc *goquery.Document) (string, error) {
	body := doc.FindMatcher(articleBodyMatcher).First()
	if body.Length() == 0 {
		return "", fmt.Errorf("%w: nothing matches %q", ErrNotFound, ArticleBodySelector)
	}

	paragraphs := make([]string, 0, 16)
	var err error
	body.FindMatcher(paragraphMatcher).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		text, ok := leadingText(sel.Get(0))
		if !ok {
			err = fmt.Errorf("%w: paragraph %d has no text", ErrMalformedParagraph, i)
			return false
		}
		paragraphs = append(paragraphs, text)
		return true
	})
	if err != nil {
		return "", err
	}
	return strings.Join(paragraphs, "\n"), nil
}

func leadingText(node *nethtml.Node) (string, bool) {
	if node == nil || node.FirstChild == nil || node.FirstChild.Type != nethtml.TextNode {
		return "", false
	}
	return strings.TrimSpace(node.FirstChild.Data), true
}
