package api

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestFeatures_UnmarshalPreservesOrder(t *testing.T) {
	var f Features
	data := `{"tempo": 120.5, "energy": 0.8, "acousticness": 0.1, "danceability": 0.6}`
	if err := json.Unmarshal([]byte(data), &f); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	want := Features{
		{Name: "tempo", Value: 120.5},
		{Name: "energy", Value: 0.8},
		{Name: "acousticness", Value: 0.1},
		{Name: "danceability", Value: 0.6},
	}
	if !reflect.DeepEqual(f, want) {
		t.Errorf("got %v, want %v", f, want)
	}
}

func TestFeatures_UnmarshalDuplicateKey(t *testing.T) {
	var f Features
	if err := json.Unmarshal([]byte(`{"energy": 0.1, "valence": 0.2, "energy": 0.9}`), &f); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	want := Features{{Name: "energy", Value: 0.9}, {Name: "valence", Value: 0.2}}
	if !reflect.DeepEqual(f, want) {
		t.Errorf("got %v, want %v", f, want)
	}
}

func TestFeatures_UnmarshalEmptyAndNull(t *testing.T) {
	var empty Features
	if err := json.Unmarshal([]byte(`{}`), &empty); err != nil {
		t.Fatalf("Unmarshal({}) error = %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("Unmarshal({}) = %#v, want empty non-nil", empty)
	}

	var null Features
	if err := json.Unmarshal([]byte(`null`), &null); err != nil {
		t.Fatalf("Unmarshal(null) error = %v", err)
	}
	if null != nil {
		t.Errorf("Unmarshal(null) = %#v, want nil", null)
	}
}

func TestFeatures_UnmarshalInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"array", `[0.1, 0.2]`},
		{"string value", `{"energy": "high"}`},
		{"null value", `{"energy": null}`},
		{"bool value", `{"energy": true}`},
		{"nested object", `{"energy": {"value": 0.3}}`},
		{"number", `0.5`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Features
			if err := json.Unmarshal([]byte(tt.data), &f); err == nil {
				t.Errorf("Unmarshal(%s) should return error, got %v", tt.data, f)
			}
		})
	}
}

func TestFeatures_MarshalKeepsOrder(t *testing.T) {
	f := Features{{Name: "valence", Value: 0.25}, {Name: "energy", Value: 1}}
	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if got, want := string(data), `{"valence":0.25,"energy":1}`; got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestParseResult(t *testing.T) {
	body := `{"searched_song":{"name":"Blinding Lights","artist":"The Weeknd","features":{"energy":0.8,"danceability":0.6}},"recommendations":[{"id":"abc123","name":"Midnight City","artist":"M83"},{"id":"zzz","name":"Genesis","artist":"Grimes"}]}`

	got, err := ParseResult([]byte(body))
	if err != nil {
		t.Fatalf("ParseResult() error = %v", err)
	}

	want := &Result{
		SearchedSong: SearchedSong{
			Name:   "Blinding Lights",
			Artist: "The Weeknd",
			Features: Features{
				{Name: "energy", Value: 0.8},
				{Name: "danceability", Value: 0.6},
			},
		},
		Recommendations: []Recommendation{
			{ID: "abc123", Name: "Midnight City", Artist: "M83"},
			{ID: "zzz", Name: "Genesis", Artist: "Grimes"},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseResult() = %+v, want %+v", got, want)
	}
}

func TestParseResult_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"missing searched_song", `{"recommendations":[]}`, "searched_song"},
		{"null searched_song", `{"searched_song":null,"recommendations":[]}`, "searched_song"},
		{"missing name", `{"searched_song":{"artist":"a","features":{}},"recommendations":[]}`, "searched_song.name"},
		{"empty name", `{"searched_song":{"name":"","artist":"a","features":{}},"recommendations":[]}`, "searched_song.name"},
		{"missing features", `{"searched_song":{"name":"x","artist":"y"},"recommendations":[]}`, "searched_song.features"},
		{"missing recommendations", `{"searched_song":{"name":"x","artist":"y","features":{}}}`, "recommendations"},
		{"recommendation without id", `{"searched_song":{"name":"x","artist":"y","features":{}},"recommendations":[{"id":"a"},{"name":"b"}]}`, "recommendations[1].id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResult([]byte(tt.body))
			verr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("ParseResult() error = %v, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestParseResult_NotJSON(t *testing.T) {
	for _, body := range []string{"", "<html>", `[1,2]`, `{"searched_song":{"features":[1]},"recommendations":[]}`} {
		if _, err := ParseResult([]byte(body)); err == nil {
			t.Errorf("ParseResult(%q) should return error", body)
		}
	}
}

func TestParseResult_EmptyRecommendations(t *testing.T) {
	got, err := ParseResult([]byte(`{"searched_song":{"name":"x","artist":"y","features":{}},"recommendations":[]}`))
	if err != nil {
		t.Fatalf("ParseResult() error = %v", err)
	}
	if got.Recommendations == nil || len(got.Recommendations) != 0 {
		t.Errorf("Recommendations = %#v, want empty non-nil", got.Recommendations)
	}
}
