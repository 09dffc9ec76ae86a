// Package render projects search state into the two result panels and draws them.
package render

import (
	"math"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gigurra/tunetexture/cmd/recommend/api"
	"github.com/gigurra/tunetexture/cmd/recommend/search"
	"github.com/samber/lo"
)

// DefaultPlaybackTemplate is the playback page of a recommendation; %s is the track id.
const DefaultPlaybackTemplate = "https://open.spotify.com/track/%s"

const (
	IdleCaption  = "Find Gems"
	BusyCaption  = "Analyzing..."
	TextureTitle = "Analyzed Texture"
	GemsTitle    = "Hidden Gems Found"
	PlayLabel    = "Play"
	NotFoundHint = "Try another title, or add the artist name."
)

// Options tune the projection.
type Options struct {
	PlaybackTemplate string
}

// View is everything a front end draws for one state.
type View struct {
	Query   string
	Caption string
	Busy    bool
	// Error is the user-facing reason of the last failure.
	Error string
	Hint  string
	// Stale is set when the panels show the result of an earlier search because the latest failed.
	Stale   bool
	Texture *TexturePanel
	Gems    *GemsPanel
}

// HasResult reports whether the result panels are present.
func (v View) HasResult() bool {
	return v.Texture != nil && v.Gems != nil
}

// TexturePanel shows the analyzed song.
type TexturePanel struct {
	Title  string
	Name   string
	Artist string
	Rows   []FeatureRow
}

// FeatureRow is one feature bar.
type FeatureRow struct {
	Key     string
	Label   string
	Value   float64
	Percent float64
}

// GemsPanel lists the recommendations in ranked order.
type GemsPanel struct {
	Title string
	Rows  []GemRow
}

// GemRow is one recommendation with its playback link.
type GemRow struct {
	Rank   int
	ID     string
	Name   string
	Artist string
	URL    string
}

// Project builds the view for state. It has no side effects.
func Project(state search.State, opts Options) View {
	v := View{
		Query:   state.Query,
		Caption: IdleCaption,
		Busy:    state.Loading(),
	}
	if v.Busy {
		v.Caption = BusyCaption
	}
	if state.Status == search.StatusFailure {
		v.Error = api.Reason(state.Err)
		v.Stale = state.HasResult()
		if api.IsNotFound(state.Err) {
			v.Hint = NotFoundHint
		}
	}
	if !state.HasResult() {
		return v
	}

	song := state.Result.SearchedSong
	v.Texture = &TexturePanel{
		Title:  TextureTitle,
		Name:   song.Name,
		Artist: song.Artist,
		Rows: lo.Map(song.Features, func(f api.Feature, _ int) FeatureRow {
			return FeatureRow{
				Key:     f.Name,
				Label:   Capitalize(f.Name),
				Value:   f.Value,
				Percent: BarPercent(f.Value),
			}
		}),
	}
	v.Gems = &GemsPanel{
		Title: GemsTitle,
		Rows: lo.Map(state.Result.Recommendations, func(r api.Recommendation, i int) GemRow {
			return GemRow{
				Rank:   i + 1,
				ID:     r.ID,
				Name:   r.Name,
				Artist: r.Artist,
				URL:    PlaybackURL(opts.PlaybackTemplate, r.ID),
			}
		}),
	}
	return v
}

// BarPercent is the filled share of a feature bar: min(v*100, 100), floored at 0.
// NaN renders as an empty bar.
func BarPercent(v float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	return math.Min(v*100, 100)
}

// Capitalize upper-cases the first letter of every space separated word.
func Capitalize(key string) string {
	words := strings.Split(key, " ")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if r == utf8.RuneError {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// PlaybackURL interpolates a track id into template. A template without %s gets the id
// appended as the last path segment.
func PlaybackURL(template, id string) string {
	if template == "" {
		template = DefaultPlaybackTemplate
	}
	escaped := url.PathEscape(id)
	if strings.Contains(template, "%s") {
		return strings.Replace(template, "%s", escaped, 1)
	}
	return strings.TrimRight(template, "/") + "/" + escaped
}
