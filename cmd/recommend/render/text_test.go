package render

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/gigurra/tunetexture/cmd/recommend/api"
	"github.com/gigurra/tunetexture/cmd/recommend/search"
)

func TestBar(t *testing.T) {
	tests := []struct {
		percent    float64
		width      int
		wantFilled int
	}{
		{80, 10, 8},
		{60, 10, 6},
		{100, 20, 20},
		{0, 10, 0},
		{-20, 10, 0},
		{250, 10, 10},
		{math.NaN(), 10, 0},
		{50, 0, 0},
	}

	for _, tt := range tests {
		bar := Bar(tt.percent, tt.width)
		filled := strings.Count(bar, "█")
		empty := strings.Count(bar, "░")
		if filled != tt.wantFilled || filled+empty != tt.width {
			t.Errorf("Bar(%v, %d) = %q: %d filled, %d empty", tt.percent, tt.width, bar, filled, empty)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(80.00000000000001); got != "80%" {
		t.Errorf("FormatPercent() = %q", got)
	}
	if got := FormatPercent(0); got != "0%" {
		t.Errorf("FormatPercent(0) = %q", got)
	}
}

func successView() View {
	return Project(search.State{Status: search.StatusSuccess, Result: blindingLights()}, Options{})
}

func TestText_Panels(t *testing.T) {
	out := Text(successView(), TextOptions{Width: 80, BarWidth: 10, Selected: -1})

	for _, want := range []string{"Analyzed Texture", "Blinding Lights", "The Weeknd", "Energy", "Danceability", "80%", "60%", "Hidden Gems Found", "Midnight City", "M83"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "█") != 14 {
		t.Errorf("expected 8+6 filled cells:\n%s", out)
	}
	if strings.Contains(out, "open.spotify.com") {
		t.Errorf("links shown without selection or ShowLinks:\n%s", out)
	}
}

func TestText_SelectedGemShowsLink(t *testing.T) {
	out := Text(successView(), TextOptions{Width: 120, Selected: 0})
	if !strings.Contains(out, "Play https://open.spotify.com/track/abc123") {
		t.Errorf("missing play link:\n%s", out)
	}
}

func TestText_ShowLinks(t *testing.T) {
	out := Text(successView(), TextOptions{Width: 200, Selected: -1, ShowLinks: true})
	if !strings.Contains(out, "https://open.spotify.com/track/abc123") {
		t.Errorf("missing link column:\n%s", out)
	}
}

func TestText_Layout(t *testing.T) {
	wide := Text(successView(), TextOptions{Width: 120, Selected: -1})
	sameLine := false
	for _, line := range strings.Split(wide, "\n") {
		if strings.Contains(line, "Analyzed Texture") && strings.Contains(line, "Hidden Gems Found") {
			sameLine = true
		}
	}
	if !sameLine {
		t.Errorf("wide layout should place panels side by side:\n%s", wide)
	}

	narrow := Text(successView(), TextOptions{Width: 60, Selected: -1})
	for _, line := range strings.Split(narrow, "\n") {
		if strings.Contains(line, "Analyzed Texture") && strings.Contains(line, "Hidden Gems Found") {
			t.Errorf("narrow layout should stack panels:\n%s", narrow)
		}
	}
}

func TestText_EmptyAndError(t *testing.T) {
	if out := Text(Project(search.State{}, Options{}), TextOptions{}); out != "" {
		t.Errorf("empty state rendered %q", out)
	}

	failed := Project(search.State{
		Status: search.StatusFailure,
		Err:    &api.Error{Op: api.OpStatus, Status: 404, Message: "Song not found on Spotify"},
	}, Options{})
	out := Text(failed, TextOptions{})
	if !strings.Contains(out, "Song not found on Spotify") {
		t.Errorf("missing error:\n%s", out)
	}
	if !strings.Contains(out, NotFoundHint) {
		t.Errorf("missing not found hint:\n%s", out)
	}
	if strings.Contains(out, "Analyzed Texture") {
		t.Errorf("panels rendered without result:\n%s", out)
	}
}

func TestText_NoRecommendations(t *testing.T) {
	result := blindingLights()
	result.Recommendations = []api.Recommendation{}
	out := Text(Project(search.State{Status: search.StatusSuccess, Result: result}, Options{}), TextOptions{Selected: -1})
	if !strings.Contains(out, "No hidden gems") {
		t.Errorf("missing empty hint:\n%s", out)
	}
}

func TestWritePlain(t *testing.T) {
	var buf bytes.Buffer
	WritePlain(&buf, successView())
	out := buf.String()

	for _, want := range []string{"Analyzed Texture: Blinding Lights - The Weeknd", "Energy", "0.8", "80%", "Hidden Gems Found", "Midnight City", "https://open.spotify.com/track/abc123"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Energy") > strings.Index(out, "Danceability") {
		t.Errorf("features out of order:\n%s", out)
	}
}

func TestWritePlain_Error(t *testing.T) {
	var buf bytes.Buffer
	WritePlain(&buf, View{Error: "backend unreachable"})
	if got := buf.String(); got != "Error: backend unreachable\n" {
		t.Errorf("output = %q", got)
	}

	buf.Reset()
	WritePlain(&buf, View{Error: "Song not found on Spotify", Hint: NotFoundHint})
	if got, want := buf.String(), "Error: Song not found on Spotify\n"+NotFoundHint+"\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
