package api

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const recommendPath = "/recommend"

// DefaultTimeout bounds a single /recommend call.
const DefaultTimeout = 15 * time.Second

// Client calls the recommendation backend.
type Client struct {
	http *resty.Client
}

// NewClient creates a client for the backend at baseURL.
// No retries are configured: a failed call is reported once.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)

	return &Client{http: client}
}

// Recommend asks the backend for the texture of song and its hidden gems.
// The song is sent as the query-encoded "song" parameter.
func (c *Client) Recommend(ctx context.Context, song string) (*Result, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("song", song).
		Get(recommendPath)
	if err != nil {
		return nil, &Error{Op: OpRequest, Err: err}
	}

	body := resp.Body()
	if !resp.IsSuccess() {
		return nil, &Error{
			Op:      OpStatus,
			Status:  resp.StatusCode(),
			Message: detailMessage(body),
		}
	}

	result, err := ParseResult(body)
	if err != nil {
		return nil, &Error{Op: OpDecode, Status: resp.StatusCode(), Err: err}
	}
	return result, nil
}

// detailMessage extracts the "detail" string of an error body, if there is one.
func detailMessage(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}
	var detail string
	// Validation errors carry a list of objects; the status code says enough for those.
	_ = json.Unmarshal(payload.Detail, &detail)
	return detail
}
