package internal

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
	"sync/atomic"
	"time"
)

// Client talks to the job assistant backend. A zero timeout leaves the
// remote call unbounded, matching the widget's original behavior of
// waiting for the assistant indefinitely.
type Client struct {
	baseURL    string
	httpClient *http.Client
	pending    atomic.Bool
}

// NewClient creates a backend client for the given base URL
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Pending reports whether a chat request is currently in flight
func (c *Client) Pending() bool {
	return c.pending.Load()
}

type chatRequest struct {
	Messages []Turn `json:"messages"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Chat sends the full transcript to the assistant and returns the
// cleaned reply text. At most one request may be in flight: concurrent
// calls fail fast with ErrRequestPending. An empty reply (after
// trimming and citation stripping) returns "" with no error; having
// nothing to show is not a failure.
func (c *Client) Chat(ctx context.Context, transcript []Turn) (string, error) {
	if !c.pending.CompareAndSwap(false, true) {
		return "", ErrRequestPending
	}
	defer c.pending.Store(false)

	endpoint := c.baseURL + "/api/chat"
	body, err := json.Marshal(chatRequest{Messages: transcript})
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", decodeAPIError(endpoint, resp)
	}

	var reply chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return "", &APIError{Endpoint: endpoint, Status: resp.StatusCode, Message: ""}
	}

	return strings.TrimSpace(StripCitations(reply.Response)), nil
}

// Jobs fetches one page of filtered job listings
func (c *Client) Jobs(ctx context.Context, query JobsQuery) (*JobsPage, error) {
	params := url.Values{}
	if query.Query != "" {
		params.Set("q", query.Query)
	}
	if query.Location != "" {
		params.Set("location", query.Location)
	}
	if query.PostedFrom != "" {
		params.Set("posted_from", query.PostedFrom)
	}
	if query.PostedTo != "" {
		params.Set("posted_to", query.PostedTo)
	}
	if query.MinScore > 0 {
		params.Set("min_score", strconv.Itoa(query.MinScore))
	}
	if query.Offset > 0 {
		params.Set("offset", strconv.Itoa(query.Offset))
	}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}

	var page JobsPage
	if err := c.getJSON(ctx, "/api/jobs", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Stats fetches the site-wide listing summary
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := c.getJSON(ctx, "/api/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// EmailDraft asks the backend to draft an application email for the
// listing identified by its source URL
func (c *Client) EmailDraft(ctx context.Context, sourceURL string) (*EmailDraft, error) {
	params := url.Values{}
	params.Set("source_url", sourceURL)

	var draft EmailDraft
	if err := c.getJSON(ctx, "/api/email-draft", params, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

// getJSON performs a GET against path and decodes the JSON response
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(endpoint, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Endpoint: endpoint, Status: resp.StatusCode, Message: ""}
	}
	return nil
}

// decodeAPIError extracts the optional server-supplied error message
// from a non-success response. An unparsable body is treated as having
// no message.
func decodeAPIError(endpoint string, resp *http.Response) error {
	apiErr := &APIError{Endpoint: endpoint, Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		apiErr.Message = strings.TrimSpace(parsed.Error)
	}
	return apiErr
}
