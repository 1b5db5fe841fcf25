// Package content pulls readable article text from news pages, used to fill articles
// that providers deliver without a description.
package content

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/markusmobius/go-trafilatura"
)

// HTTPExtractor extracts article content from URLs using trafilatura
type HTTPExtractor struct {
	client    *http.Client
	userAgent string
	maxLength int
}

// Opts defines extractor parameters
type Opts struct {
	Timeout   time.Duration
	UserAgent string
	MaxLength int // max runes of returned text, 0 for unlimited
}

// NewHTTPExtractor creates a new content extractor
func NewHTTPExtractor(opts Opts) *HTTPExtractor {
	if opts.UserAgent == "" {
		opts.UserAgent = "Mozilla/5.0 (compatible; Viralscope/1.0)"
	}
	return &HTTPExtractor{
		client:    &http.Client{Timeout: opts.Timeout},
		userAgent: opts.UserAgent,
		maxLength: opts.MaxLength,
	}
}

// Extract retrieves and extracts text content from the given URL
func (e *HTTPExtractor) Extract(ctx context.Context, urlStr string) (string, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", fmt.Errorf("invalid URL: %s", urlStr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	addBrowserHeaders(req)
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch URL %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, urlStr)
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		ExcludeTables:   true,
		Deduplicate:     true,
		OriginalURL:     parsedURL,
	}

	result, err := trafilatura.Extract(resp.Body, opts)
	if err != nil {
		return "", fmt.Errorf("extract content from %s: %w", urlStr, err)
	}
	if result == nil {
		return "", fmt.Errorf("no content extracted from %s", urlStr)
	}

	text := strings.Join(strings.Fields(result.ContentText), " ")
	if text == "" {
		return "", fmt.Errorf("no text content extracted from %s", urlStr)
	}
	return truncate(text, e.maxLength), nil
}

// truncate cuts s to at most n runes on a word boundary when possible
func truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	cut := string(runes[:n])
	if !unicode.IsSpace(runes[n]) {
		if idx := strings.LastIndex(cut, " "); idx > len(cut)/2 {
			cut = cut[:idx]
		}
	}
	return strings.TrimSpace(cut) + "..."
}
