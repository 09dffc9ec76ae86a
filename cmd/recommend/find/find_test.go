package find

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const payload = `{
  "searched_song": {
    "name": "Blinding Lights",
    "artist": "The Weeknd",
    "features": {"energy": 0.8, "danceability": 0.6, "tempo": 171.0}
  },
  "recommendations": [
    {"id": "4uLU6hMCjMI75M1A2tKUQC", "name": "Midnight City", "artist": "M83"},
    {"id": "2WfaOiMkCvy7F5fcp2zZ8L", "name": "Take On Me", "artist": "a-ha"}
  ]
}`

func newBackend(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recommend" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

// isolate keeps tests away from the user's config, .env and log files.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("TUNETEXTURE_HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestRunPlain(t *testing.T) {
	isolate(t)
	server := newBackend(t, http.StatusOK, payload)

	var out bytes.Buffer
	err := run(context.Background(), &Params{Query: "Blinding Lights", BaseURL: server.URL, Plain: true}, &out)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Analyzed Texture: Blinding Lights - The Weeknd",
		"Energy", "Danceability", "Tempo", "100%",
		"Hidden Gems Found",
		"Midnight City", "https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Index(got, "Energy") > strings.Index(got, "Danceability") {
		t.Error("features should keep response order")
	}
}

func TestRunNonTerminalDefaultsToPlain(t *testing.T) {
	isolate(t)
	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })
	isTerminal = func() bool { return false }

	server := newBackend(t, http.StatusOK, payload)
	var out bytes.Buffer
	if err := run(context.Background(), &Params{Query: "Blinding Lights", BaseURL: server.URL}, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(out.String(), "Analyzed Texture: Blinding Lights") {
		t.Errorf("expected plain output:\n%s", out.String())
	}
}

func TestRunJSONKeepsFeatureOrder(t *testing.T) {
	isolate(t)
	server := newBackend(t, http.StatusOK, payload)

	var out bytes.Buffer
	if err := run(context.Background(), &Params{Query: "x", BaseURL: server.URL, JSON: true}, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	got := out.String()
	if !json.Valid(out.Bytes()) {
		t.Fatalf("invalid JSON:\n%s", got)
	}
	e, d, tp := strings.Index(got, `"energy"`), strings.Index(got, `"danceability"`), strings.Index(got, `"tempo"`)
	if e < 0 || !(e < d && d < tp) {
		t.Errorf("feature order not kept:\n%s", got)
	}
	if !strings.Contains(got, `"searched_song"`) || !strings.Contains(got, `"recommendations"`) {
		t.Errorf("missing top level keys:\n%s", got)
	}
}

func TestRunQR(t *testing.T) {
	isolate(t)
	server := newBackend(t, http.StatusOK, payload)

	var out bytes.Buffer
	if err := run(context.Background(), &Params{Query: "x", BaseURL: server.URL, Plain: true, QR: true}, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Play Midnight City - M83") {
		t.Errorf("missing QR caption:\n%s", got)
	}
	if !strings.Contains(got, "\033[40m  \033[0m") {
		t.Error("missing QR modules")
	}
}

func TestRunQRWithoutGems(t *testing.T) {
	isolate(t)
	server := newBackend(t, http.StatusOK,
		`{"searched_song":{"name":"a","artist":"b","features":{}},"recommendations":[]}`)

	var out bytes.Buffer
	err := run(context.Background(), &Params{Query: "x", BaseURL: server.URL, Plain: true, QR: true}, &out)
	if err == nil || !strings.Contains(err.Error(), "no hidden gems") {
		t.Errorf("run() error = %v, want no hidden gems", err)
	}
}

func TestRunFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"not found", http.StatusNotFound, `{"detail": "Song not found on Spotify"}`, "Song not found on Spotify"},
		{"server error", http.StatusInternalServerError, `oops`, "HTTP 500"},
		{"malformed payload", http.StatusOK, `{"recommendations": []}`, "searched_song"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			server := newBackend(t, tt.status, tt.body)

			var out bytes.Buffer
			err := run(context.Background(), &Params{Query: "Yellow", BaseURL: server.URL, Plain: true}, &out)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
			if out.Len() != 0 {
				t.Errorf("nothing should be printed on failure, got:\n%s", out.String())
			}
		})
	}
}

func TestRunEmptyQuery(t *testing.T) {
	isolate(t)
	var out bytes.Buffer
	if err := run(context.Background(), &Params{Query: "  "}, &out); err == nil {
		t.Error("expected error for blank query")
	}
}

func TestWriteQR(t *testing.T) {
	var out bytes.Buffer
	if err := writeQR(&out, "https://open.spotify.com/track/abc"); err != nil {
		t.Fatalf("writeQR() error = %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) < 21 {
		t.Errorf("got %d rows, want at least 21", len(lines))
	}
}
