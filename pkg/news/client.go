package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxBodySize limits provider responses
const maxBodySize = 4 * 1024 * 1024

// httpClient performs JSON GET requests against provider APIs
type httpClient struct {
	client    *http.Client
	userAgent string
}

func newHTTPClient(timeout time.Duration, userAgent string) *httpClient {
	if userAgent == "" {
		userAgent = "Viralscope/1.0"
	}
	return &httpClient{client: &http.Client{Timeout: timeout}, userAgent: userAgent}
}

// getJSON fetches url and decodes the body into out, non-2xx statuses are errors
func (c *httpClient) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
