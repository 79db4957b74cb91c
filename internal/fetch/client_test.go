package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGet_ReturnsBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/news/1/" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<p>Hello</p>"))
	}))
	defer ts.Close()

	c := NewClient(ts.Client())
	body, err := c.Get(context.Background(), ts.URL+"/news/1/")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(body) != "<p>Hello</p>" {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestGet_NonSuccessStatusStillReturnsBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("<h1>Not here</h1>"))
	}))
	defer ts.Close()

	body, err := NewClient(ts.Client()).Get(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(body) != "<h1>Not here</h1>" {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestGet_EmptyBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	}))
	defer ts.Close()

	body, err := NewClient(ts.Client()).Get(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("empty body must not be a transport error, got %v", err)
	}
	if len(body) != 0 {
		t.Fatalf("expected empty body, got %q", body)
	}
}

func TestGet_InvalidBytesAreReplaced(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte{'<', 'p', '>', 0xff, 0xfe, '<', '/', 'p', '>'})
	}))
	defer ts.Close()

	body, err := NewClient(ts.Client()).Get(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(body) != "<p>\ufffd\ufffd</p>" {
		t.Fatalf("expected invalid bytes replaced, got %q", body)
	}
}

func TestGet_DecodesDeclaredCharset(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		// "café" in Latin-1.
		_, _ = w.Write([]byte{'c', 'a', 'f', 0xe9})
	}))
	defer ts.Close()

	body, err := NewClient(ts.Client()).Get(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(body) != "café" {
		t.Fatalf("expected body decoded to UTF-8, got %q", body)
	}
}

func TestGet_TransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	_, err := NewClient(nil).Get(context.Background(), url)
	if err == nil {
		t.Fatal("expected error from closed server")
	}
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransportError, got %T: %v", err, err)
	}
	if terr.URL != url {
		t.Fatalf("unexpected URL on error: %s", terr.URL)
	}
}

func TestGet_InvalidURL(t *testing.T) {
	_, err := NewClient(nil).Get(context.Background(), "://nope")
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}
