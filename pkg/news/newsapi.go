package news

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/viralscope/pkg/domain"
)

// removedTitle marks articles withdrawn by the publisher
const removedTitle = "[Removed]"

// NewsAPI fetches top headlines from newsapi.org, retrying once through a read-only relay
// when the direct call fails. The free plan rejects non-localhost callers, the relay works around it.
type NewsAPI struct {
	opts     ProviderOpts
	relayURL string
	client   *httpClient
}

type newsAPIResponse struct {
	Status       string `json:"status"`
	TotalResults int    `json:"totalResults"`
	Articles     []struct {
		Source struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// NewNewsAPI makes a NewsAPI source, empty relayURL disables the relay retry
func NewNewsAPI(opts ProviderOpts, relayURL string) *NewsAPI {
	return &NewsAPI{opts: opts, relayURL: relayURL, client: newHTTPClient(opts.Timeout, opts.UserAgent)}
}

// Name returns the source name
func (n *NewsAPI) Name() string { return "newsapi" }

// Enabled reports whether the source has an API key
func (n *NewsAPI) Enabled() bool { return n.opts.APIKey != "" }

// Fetch returns top headlines, direct first then once via relay
func (n *NewsAPI) Fetch(ctx context.Context) ([]domain.RawArticle, error) {
	direct := n.requestURL()
	var resp newsAPIResponse
	err := n.client.getJSON(ctx, direct, &resp)
	if err != nil && n.relayURL != "" {
		lgr.Printf("[DEBUG] newsapi direct call failed, retry via relay: %v", err)
		resp = newsAPIResponse{}
		err = n.client.getJSON(ctx, n.relayURL+"?url="+url.QueryEscape(direct), &resp)
	}
	if err != nil {
		return nil, fmt.Errorf("newsapi: %w", err)
	}
	if resp.Status != "" && resp.Status != "ok" {
		return nil, fmt.Errorf("newsapi: status %q", resp.Status)
	}

	res := make([]domain.RawArticle, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		if a.Title == removedTitle {
			continue
		}
		res = append(res, domain.RawArticle{
			Source:      sourceName(a.Source.Name, "NewsAPI"),
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
		})
	}
	return res, nil
}

func (n *NewsAPI) requestURL() string {
	q := url.Values{}
	q.Set("country", n.opts.Country)
	q.Set("pageSize", strconv.Itoa(n.opts.Max))
	q.Set("apiKey", n.opts.APIKey)
	return n.opts.URL + "?" + q.Encode()
}
