// internal/client/comments_client.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"trail-comments/internal/models"
	"trail-comments/internal/parser"
	"trail-comments/internal/trail"
)

const (
	CommentsEndpoint = "/api/comments"
	DefaultLimit     = 50
)

type CommentsClient struct {
	client  HTTPDoer
	baseURL *url.URL
	clock   Clock
	parser  parser.ParserInterface
}

type ClientOption func(*CommentsClient)

// WithClock replaces time.Now as the source of the default trail day.
func WithClock(clock Clock) ClientOption {
	return func(c *CommentsClient) {
		if clock != nil {
			c.clock = clock
		}
	}
}

func WithParser(p parser.ParserInterface) ClientOption {
	return func(c *CommentsClient) {
		if p != nil {
			c.parser = p
		}
	}
}

// NewCommentsClient creates a client for the comments API served at origin.
// httpClient defaults to http.DefaultClient when nil.
func NewCommentsClient(origin string, httpClient HTTPDoer, opts ...ClientOption) (*CommentsClient, error) {
	if origin == "" {
		return nil, fmt.Errorf("comments origin is required")
	}

	baseURL, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("parse comments origin: %w", err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("comments origin must be an absolute URL: %s", origin)
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	c := &CommentsClient{
		client:  httpClient,
		baseURL: baseURL,
		clock:   time.Now,
		parser:  parser.NewCommentsParser(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// TrailID returns the trail day for t, or for the client's clock when t is
// omitted.
func (c *CommentsClient) TrailID(t ...time.Time) string {
	if len(t) > 0 {
		return trail.ID(t[0])
	}
	return trail.Today(c.clock)
}

type listOptions struct {
	limit int
}

type ListOption func(*listOptions)

// WithLimit caps the number of comments returned. Non-positive values keep
// the default of 50.
func WithLimit(limit int) ListOption {
	return func(o *listOptions) {
		if limit > 0 {
			o.limit = limit
		}
	}
}

func (c *CommentsClient) GetCommentsURL(trailID string, limit int) string {
	u := c.baseURL.ResolveReference(&url.URL{Path: CommentsEndpoint})

	params := url.Values{}
	params.Set("trailId", trailID)
	params.Set("limit", strconv.Itoa(limit))
	u.RawQuery = params.Encode()

	return u.String()
}

func (c *CommentsClient) createURL() string {
	return c.baseURL.ResolveReference(&url.URL{Path: CommentsEndpoint}).String()
}

// ListComments fetches the comments for trailID. A successful JSON response
// that is not an array yields no comments.
func (c *CommentsClient) ListComments(ctx context.Context, trailID string, opts ...ListOption) ([]models.Comment, error) {
	o := listOptions{limit: DefaultLimit}
	for _, opt := range opts {
		opt(&o)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.GetCommentsURL(trailID, o.limit), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Pragma", "no-cache")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, NewCommentsAPIError(MsgLoadFailed, resp.StatusCode)
	}
	if !isJSON(resp) {
		return nil, NewCommentsAPIError(MsgUnexpectedResponse, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return c.parser.ParseCommentList(body)
}

// CreateComment posts payload as JSON and returns the server's record.
// json.RawMessage and []byte payloads are sent verbatim.
func (c *CommentsClient) CreateComment(ctx context.Context, payload any) (models.Comment, error) {
	data, err := encodePayload(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.createURL(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, NewCommentsAPIError(MsgCreateFailed, resp.StatusCode)
	}
	if !isJSON(resp) {
		return nil, NewCommentsAPIError(MsgUnexpectedResponse, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return c.parser.ParseComment(body)
}

func encodePayload(payload any) ([]byte, error) {
	switch p := payload.(type) {
	case json.RawMessage:
		if !json.Valid(p) {
			return nil, fmt.Errorf("marshaling payload: invalid JSON")
		}
		return p, nil
	case []byte:
		if !json.Valid(p) {
			return nil, fmt.Errorf("marshaling payload: invalid JSON")
		}
		return p, nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling payload: %w", err)
	}
	return data, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func isJSON(resp *http.Response) bool {
	return strings.Contains(strings.ToLower(resp.Header.Get("Content-Type")), "application/json")
}
