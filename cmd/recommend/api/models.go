// Package api talks to the tunetexture recommendation backend.
//
// The backend exposes a single endpoint, GET /recommend?song=<title>, answering with the
// matched song, its audio features and a ranked list of similar tracks.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Feature is a single named audio descriptor such as energy or danceability.
type Feature struct {
	Name  string
	Value float64
}

// Features keeps audio descriptors in the order the backend sent them.
// The key set is open-ended, so it cannot be a struct, and a plain map would lose the order.
type Features []Feature

// UnmarshalJSON decodes a JSON object of numbers, preserving key order.
// A repeated key keeps its first position and its last value.
func (f *Features) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("features must be an object")
	}

	out := Features{}
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("features: unexpected token %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("feature %q: %w", key, err)
		}
		value, err := parseNumber(raw)
		if err != nil {
			return fmt.Errorf("feature %q: %w", key, err)
		}

		if i, seen := index[key]; seen {
			out[i].Value = value
			continue
		}
		index[key] = len(out)
		out = append(out, Feature{Name: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*f = out
	return nil
}

// MarshalJSON encodes the features as a JSON object in stored order.
func (f Features) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, feat := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(feat.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(feat.Value)
		if err != nil {
			return nil, fmt.Errorf("feature %q: %w", feat.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func parseNumber(raw json.RawMessage) (float64, error) {
	trimmed := bytes.TrimSpace(raw)
	var n float64
	if bytes.Equal(trimmed, []byte("null")) || json.Unmarshal(trimmed, &n) != nil {
		return 0, fmt.Errorf("not a number: %s", string(trimmed))
	}
	return n, nil
}

// SearchedSong is the track the backend matched for the query.
type SearchedSong struct {
	Name     string   `json:"name"`
	Artist   string   `json:"artist"`
	Features Features `json:"features"`
}

// Recommendation is one hidden gem. ID is the playback-service track id.
type Recommendation struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Artist string `json:"artist"`
}

// Result is the full /recommend payload.
// Recommendations keep the backend's ranking and must not be re-sorted.
type Result struct {
	SearchedSong    SearchedSong     `json:"searched_song"`
	Recommendations []Recommendation `json:"recommendations"`
}
