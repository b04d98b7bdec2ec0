// internal/api/client.go
//
// HTTP client for the prediction service.
// Responsibilities:
//   - POST JSON bodies to /start, /answer, /feedback and decode the replies.
//   - Wrap transport/encode/decode failures with endpoint context.
//   - Pass application-level rejections through untouched: the server
//     replies with a JSON body ({"success":false,"error":...}) even on
//     non-2xx statuses, and the controller decides what to show.
//
// Notes:
//   - The underlying http.Client carries NO timeout: a request in flight
//     is not abortable; the controller's input lock is the only guard
//     against a second submission while one is outstanding.

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// Client talks to one prediction service instance.
type Client struct {
	base string
	http *http.Client
}

// New constructs a Client for the service at baseURL.
func New(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{},
	}
}

// Start opens a new game round and returns the first question.
func (c *Client) Start(ctx context.Context) (*StartResponse, error) {
	var out StartResponse
	if err := c.post(ctx, "/start", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Answer submits the user's answer to the current question.
func (c *Client) Answer(ctx context.Context, req AnswerRequest) (*AnswerResponse, error) {
	var out AnswerResponse
	if err := c.post(ctx, "/answer", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Feedback reports whether the final prediction was right, and if not,
// which word the user had in mind.
func (c *Client) Feedback(ctx context.Context, req FeedbackRequest) (*FeedbackResponse, error) {
	var out FeedbackResponse
	if err := c.post(ctx, "/feedback", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// post encodes body (nil → "{}"), POSTs it to path, and decodes the JSON
// reply into out regardless of HTTP status. A non-JSON body is a protocol
// failure and comes back as an error.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	var buf bytes.Buffer
	if body == nil {
		buf.WriteString("{}")
	} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return fmt.Errorf("encode %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, &buf)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		log.Debug().Int("status", resp.StatusCode).Str("path", path).Msg("non-2xx from prediction service")
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
