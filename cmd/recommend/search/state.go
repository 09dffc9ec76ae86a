// Package search holds the query, loading and result state of a texture search and the
// controller that drives it.
package search

import "github.com/gigurra/tunetexture/cmd/recommend/api"

// Status of the most recently issued search.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// State is a snapshot of everything the renderer needs.
type State struct {
	// Query is the text currently in the input.
	Query string
	// Status of the latest issued search.
	Status Status
	// Result is the payload of the last successful search, nil until one succeeds.
	// A failed search never replaces it.
	Result *api.Result
	// Err is the reason of the last failure, nil unless Status is StatusFailure.
	Err error
	// Generation is the id of the latest issued search, 0 before the first one.
	Generation uint64
	// Submitted is the query of the latest issued search.
	Submitted string
}

// Loading reports whether the latest issued search is still in flight.
func (s State) Loading() bool {
	return s.Status == StatusLoading
}

// HasResult reports whether there is a payload to render.
func (s State) HasResult() bool {
	return s.Result != nil
}
