package search

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/gigurra/tunetexture/cmd/recommend/api"
	"github.com/google/uuid"
)

// Recommender fetches the texture and hidden gems of a song.
type Recommender interface {
	Recommend(ctx context.Context, song string) (*api.Result, error)
}

// Ticket identifies one issued search.
type Ticket struct {
	Generation uint64
	Query      string
	RequestID  string
}

// Settlement is the outcome of a ticket's network round trip.
type Settlement struct {
	Ticket
	Result  *api.Result
	Err     error
	Elapsed time.Duration
}

// Controller validates queries, issues searches and applies their outcomes.
//
// Begin and Settle mutate state and must be called from a single goroutine (the UI loop).
// Run only performs the request and may be called from any goroutine.
type Controller struct {
	state        State
	recommender  Recommender
	logger       *slog.Logger
	newRequestID func() string
}

// NewController creates a controller in the idle state. A nil logger uses slog.Default().
func NewController(recommender Recommender, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		recommender:  recommender,
		logger:       logger,
		newRequestID: uuid.NewString,
	}
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	return c.state
}

// Query returns the current input text.
func (c *Controller) Query() string {
	return c.state.Query
}

// SetQuery replaces the current input text. No validation happens here.
func (c *Controller) SetQuery(query string) {
	c.state.Query = query
}

// AppendRunes adds typed text to the end of the query.
func (c *Controller) AppendRunes(runes []rune) {
	c.state.Query += string(runes)
}

// Backspace removes the last character of the query.
func (c *Controller) Backspace() {
	runes := []rune(c.state.Query)
	if len(runes) == 0 {
		return
	}
	c.state.Query = string(runes[:len(runes)-1])
}

// ClearQuery empties the query.
func (c *Controller) ClearQuery() {
	c.state.Query = ""
}

// Begin starts a search for query. A query that is empty after trimming is rejected
// without any state change. Otherwise the state moves to loading and the returned
// ticket must be passed to Run.
func (c *Controller) Begin(query string) (Ticket, bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return Ticket{}, false
	}

	c.state.Generation++
	c.state.Status = StatusLoading
	c.state.Submitted = trimmed

	ticket := Ticket{
		Generation: c.state.Generation,
		Query:      trimmed,
		RequestID:  c.newRequestID(),
	}
	c.logger.Debug("search started",
		"request_id", ticket.RequestID,
		"generation", ticket.Generation,
		"query", ticket.Query)
	return ticket, true
}

// Run performs the network round trip for ticket. It does not touch controller state.
func (c *Controller) Run(ctx context.Context, ticket Ticket) Settlement {
	start := time.Now()
	result, err := c.recommender.Recommend(ctx, ticket.Query)
	settlement := Settlement{
		Ticket:  ticket,
		Result:  result,
		Err:     err,
		Elapsed: time.Since(start),
	}

	if err != nil {
		c.logger.Error("search failed",
			"request_id", ticket.RequestID,
			"generation", ticket.Generation,
			"query", ticket.Query,
			"elapsed", settlement.Elapsed,
			"error", err)
	} else {
		c.logger.Info("search completed",
			"request_id", ticket.RequestID,
			"generation", ticket.Generation,
			"query", ticket.Query,
			"elapsed", settlement.Elapsed,
			"features", len(result.SearchedSong.Features),
			"recommendations", len(result.Recommendations))
	}
	return settlement
}

// Settle applies a settlement if it belongs to the latest issued search and reports
// whether it was applied. Settlements of superseded searches are dropped.
func (c *Controller) Settle(s Settlement) bool {
	if s.Generation != c.state.Generation || c.state.Status != StatusLoading {
		c.logger.Debug("stale search result dropped",
			"request_id", s.RequestID,
			"generation", s.Generation,
			"latest", c.state.Generation)
		return false
	}

	if s.Err != nil || s.Result == nil {
		c.state.Status = StatusFailure
		c.state.Err = s.Err
		if c.state.Err == nil {
			c.state.Err = &api.Error{Op: api.OpDecode, Message: "empty response"}
		}
		return true
	}

	c.state.Status = StatusSuccess
	c.state.Result = s.Result
	c.state.Err = nil
	return true
}

// Search runs a complete search synchronously and reports whether one was issued.
func (c *Controller) Search(ctx context.Context, query string) (State, bool) {
	ticket, ok := c.Begin(query)
	if !ok {
		return c.state, false
	}
	c.Settle(c.Run(ctx, ticket))
	return c.state, true
}
