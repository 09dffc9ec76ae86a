package api

import (
	"encoding/json"
	"fmt"
)

type wireResult struct {
	SearchedSong    *SearchedSong     `json:"searched_song"`
	Recommendations *[]Recommendation `json:"recommendations"`
}

// ParseResult decodes and validates a /recommend response body.
// Unknown fields are ignored; missing structural fields are rejected so that a malformed
// payload never reaches the renderer.
func ParseResult(body []byte) (*Result, error) {
	var wire wireResult
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, err
	}

	if wire.SearchedSong == nil {
		return nil, &ValidationError{Field: "searched_song", Reason: "missing"}
	}
	if wire.SearchedSong.Name == "" {
		return nil, &ValidationError{Field: "searched_song.name", Reason: "missing"}
	}
	if wire.SearchedSong.Features == nil {
		return nil, &ValidationError{Field: "searched_song.features", Reason: "missing"}
	}
	if wire.Recommendations == nil {
		return nil, &ValidationError{Field: "recommendations", Reason: "missing"}
	}

	recs := *wire.Recommendations
	for i, rec := range recs {
		if rec.ID == "" {
			return nil, &ValidationError{Field: fmt.Sprintf("recommendations[%d].id", i), Reason: "missing"}
		}
	}

	return &Result{
		SearchedSong:    *wire.SearchedSong,
		Recommendations: recs,
	}, nil
}
