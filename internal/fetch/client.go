package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/net/html/charset"
)

// TransportError reports a failed GET: the request could not be built or
// sent, or the body could not be read and decoded as text.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type Client struct {
	http *http.Client
}

// NewClient wraps httpClient, or a zero http.Client when nil. No timeout is
// set; callers that want one pass it on the context.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{http: httpClient}
}

// Get fetches rawURL and returns the body decoded to UTF-8. The status code
// is not inspected: any response whose body decodes is usable. Decoding is
// lossy; bytes invalid in the declared charset become U+FFFD.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: fmt.Errorf("build request: %w", err)}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: fmt.Errorf("read body: %w", err)}
	}
	if len(raw) == 0 {
		return raw, nil
	}

	reader, err := charset.NewReader(bytes.NewReader(raw), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: fmt.Errorf("decode body: %w", err)}
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: fmt.Errorf("decode body: %w", err)}
	}
	return body, nil
}
