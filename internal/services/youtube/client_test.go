package youtube_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"marquee/internal/services"
	"marquee/internal/services/youtube"
)

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := youtube.New("", "agent"); err == nil {
		t.Fatal("expected error when base url missing")
	}
}

func TestNewRequiresUserAgent(t *testing.T) {
	if _, err := youtube.New("https://example.com", "  "); err == nil {
		t.Fatal("expected error when user agent missing")
	}
}

func TestSearchTrailerReturnsFirstVideoID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("search_query"); got != "Dune trailer" {
			t.Fatalf("unexpected search query: %q", got)
		}
		if got := r.Header.Get("User-Agent"); got != "test-agent" {
			t.Fatalf("unexpected user agent: %q", got)
		}
		_, _ = w.Write([]byte(`<html><a href="/watch?v=Way9Dexny3w">first</a><a href="/watch?v=AAAAAAAAAAA">second</a></html>`))
	}))
	t.Cleanup(server.Close)

	client, err := youtube.New(server.URL, "test-agent")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	id, err := client.SearchTrailer(context.Background(), "Dune trailer")
	if err != nil {
		t.Fatalf("SearchTrailer returned error: %v", err)
	}
	if id != "Way9Dexny3w" {
		t.Fatalf("unexpected video id: %q", id)
	}
}

func TestSearchTrailerNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>no videos here</html>`))
	}))
	t.Cleanup(server.Close)

	client, err := youtube.New(server.URL, "test-agent")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	id, err := client.SearchTrailer(context.Background(), "obscure query")
	if err != nil {
		t.Fatalf("SearchTrailer returned error: %v", err)
	}
	if id != "" {
		t.Fatalf("expected empty id, got %q", id)
	}
}

func TestSearchTrailerHTTPErrorIsLookupError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)

	client, err := youtube.New(server.URL, "test-agent")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, err = client.SearchTrailer(context.Background(), "anything")
	if err == nil {
		t.Fatal("expected error when YouTube returns non-200")
	}
	if !errors.Is(err, services.ErrLookup) {
		t.Fatalf("expected lookup error classification, got %v", err)
	}
}

func TestSearchTrailerEmptyQuery(t *testing.T) {
	client, err := youtube.New("https://example.com", "agent")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.SearchTrailer(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestSearchTrailerIgnoresShortIDs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`watch?v=short then watch?v=Way9Dexny3w trailing`))
	}))
	t.Cleanup(server.Close)

	client, err := youtube.New(server.URL, "test-agent")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	id, err := client.SearchTrailer(context.Background(), "q")
	if err != nil {
		t.Fatalf("SearchTrailer returned error: %v", err)
	}
	if id != "Way9Dexny3w" {
		t.Fatalf("unexpected video id: %q", id)
	}
}
