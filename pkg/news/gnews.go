package news

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/umputun/viralscope/pkg/domain"
)

// ProviderOpts defines a provider endpoint and query parameters
type ProviderOpts struct {
	URL       string
	APIKey    string
	Country   string
	Language  string
	Category  string
	Max       int
	Timeout   time.Duration
	UserAgent string
}

// GNews fetches top headlines from gnews.io
type GNews struct {
	opts   ProviderOpts
	client *httpClient
}

type gnewsResponse struct {
	TotalArticles int `json:"totalArticles"`
	Articles      []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Content     string `json:"content"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// NewGNews makes a GNews source
func NewGNews(opts ProviderOpts) *GNews {
	return &GNews{opts: opts, client: newHTTPClient(opts.Timeout, opts.UserAgent)}
}

// Name returns the source name
func (g *GNews) Name() string { return "gnews" }

// Enabled reports whether the source has an API key
func (g *GNews) Enabled() bool { return g.opts.APIKey != "" }

// Fetch returns top headlines
func (g *GNews) Fetch(ctx context.Context) ([]domain.RawArticle, error) {
	var resp gnewsResponse
	if err := g.client.getJSON(ctx, g.requestURL(), &resp); err != nil {
		return nil, fmt.Errorf("gnews: %w", err)
	}

	res := make([]domain.RawArticle, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		res = append(res, domain.RawArticle{
			Source:      sourceName(a.Source.Name, "GNews"),
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
		})
	}
	return res, nil
}

func (g *GNews) requestURL() string {
	q := url.Values{}
	q.Set("category", g.opts.Category)
	q.Set("lang", g.opts.Language)
	q.Set("country", g.opts.Country)
	q.Set("max", strconv.Itoa(g.opts.Max))
	q.Set("apikey", g.opts.APIKey)
	return g.opts.URL + "?" + q.Encode()
}

func sourceName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
