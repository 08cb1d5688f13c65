package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// lookupServer fakes the YouTube results page and the TMDB endpoints the
// enrichment run talks to, counting requests per endpoint.
type lookupServer struct {
	*httptest.Server

	mu          sync.Mutex
	failYouTube bool
	youtubeHits int
	personHits  int
	creditsHits int
}

func newLookupServer(t *testing.T) *lookupServer {
	t.Helper()
	srv := &lookupServer{}

	mux := http.NewServeMux()
	mux.HandleFunc("/results", func(w http.ResponseWriter, r *http.Request) {
		srv.mu.Lock()
		srv.youtubeHits++
		fail := srv.failYouTube
		srv.mu.Unlock()
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `<html><body><a href="/watch?v=Way9Dexny3w">Official Trailer</a></body></html>`)
	})
	mux.HandleFunc("/search/person", func(w http.ResponseWriter, r *http.Request) {
		srv.mu.Lock()
		srv.personHits++
		srv.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("query") {
		case "Denis Villeneuve":
			fmt.Fprint(w, `{"results":[{"id":137427,"name":"Denis Villeneuve","popularity":30.5}]}`)
		case "Christopher Nolan":
			fmt.Fprint(w, `{"results":[{"id":525,"name":"Christopher Nolan","popularity":48.1}]}`)
		default:
			fmt.Fprint(w, `{"results":[]}`)
		}
	})
	mux.HandleFunc("/person/137427/movie_credits", func(w http.ResponseWriter, r *http.Request) {
		srv.mu.Lock()
		srv.creditsHits++
		srv.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":137427,"crew":[`+
			`{"id":1,"title":"Arrival","job":"Director","popularity":78.2},`+
			`{"id":2,"title":"Blade Runner 2049","job":"Director","popularity":64.9},`+
			`{"id":3,"title":"Sicario","job":"Director","popularity":41.3},`+
			`{"id":4,"title":"Dune","job":"Producer","popularity":90.1},`+
			`{"id":5,"title":"Enemy","job":"Director","popularity":22.8}]}`)
	})

	srv.Server = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func (s *lookupServer) setFailYouTube(fail bool) {
	s.mu.Lock()
	s.failYouTube = fail
	s.mu.Unlock()
}

func (s *lookupServer) counts() (youtube, person, credits int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.youtubeHits, s.personHits, s.creditsHits
}

// writeTestConfig writes a config file pointing both lookup services at
// serverURL. An empty apiKey omits the TMDB key; an empty cachePath
// disables the cache. The ambient TMDB_API_KEY is cleared so the file
// controls the key.
func writeTestConfig(t *testing.T, dir, serverURL, apiKey, cachePath string) string {
	t.Helper()
	t.Setenv("TMDB_API_KEY", "")

	var b strings.Builder
	b.WriteString("[tmdb]\n")
	if apiKey != "" {
		fmt.Fprintf(&b, "api_key = %q\n", apiKey)
	}
	fmt.Fprintf(&b, "base_url = %q\n\n", serverURL)
	fmt.Fprintf(&b, "[youtube]\nbase_url = %q\n\n", serverURL)
	b.WriteString("[enrich]\ndelay_seconds = 0.0\n\n")
	if cachePath != "" {
		fmt.Fprintf(&b, "[cache]\nenabled = true\npath = %q\nttl_days = 30\n\n", cachePath)
	} else {
		b.WriteString("[cache]\nenabled = false\n\n")
	}
	b.WriteString("[logging]\nlevel = \"error\"\n")

	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func writeMovieCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args []string, configPath, stdin string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
