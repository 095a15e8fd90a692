package pulse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// DefaultBaseURL is the production PULSE Magazine endpoint
const DefaultBaseURL = "https://pulse.gemdynamics.dev"

// Client issues requests against the PULSE Magazine API
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Out     io.Writer
}

// NewClient creates a client for the given base URL. A zero timeout
// disables the client-side deadline.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
		Out:     os.Stdout,
	}
}

// Comment is the request body for posting a comment
type Comment struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

// Intelligence fetches the aggregate intelligence feed
func (c *Client) Intelligence(ctx context.Context) error {
	return c.call(ctx, http.MethodGet, "/api/v1/intelligence", nil, "Failed to fetch intelligence")
}

// ReadArticle fetches a single article by slug
func (c *Client) ReadArticle(ctx context.Context, slug string) error {
	path := "/api/v1/articles/" + url.PathEscape(slug)
	return c.call(ctx, http.MethodGet, path, nil, "Failed to read article")
}

// PostComment submits a comment under the article identified by slug
func (c *Client) PostComment(ctx context.Context, slug, author, content string) error {
	body, err := json.Marshal(Comment{Author: author, Content: content})
	if err != nil {
		return fmt.Errorf("failed to marshal comment: %w", err)
	}
	path := "/api/v1/articles/" + url.PathEscape(slug) + "/comments"
	return c.call(ctx, http.MethodPost, path, body, "Failed to post comment")
}

// call performs a single request and renders the outcome. A 200 response is
// pretty-printed; any other status becomes a flat error object on stdout and
// a nil return. Only transport-level failures surface as errors.
func (c *Client) call(ctx context.Context, method, path string, body []byte, failure string) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	slog.Debug("Sending request", "method", method, "url", req.URL.String())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	slog.Debug("Received response", "status", resp.Status)

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintln(c.Out, errorObject(fmt.Sprintf("%s: %d", failure, resp.StatusCode)))
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	pretty, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}

	fmt.Fprintln(c.Out, string(pretty))
	return nil
}

// errorObject renders a single-line {"error": "<message>"} payload,
// space after the colon included.
func errorObject(message string) string {
	quoted, _ := json.Marshal(message)
	return fmt.Sprintf(`{"error": %s}`, quoted)
}
