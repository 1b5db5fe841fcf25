// Package feed renders the generated news feed as RSS 2.0 for feed readers.
package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/viralscope/pkg/domain"
)

// Generator creates RSS feeds from news items
type Generator struct {
	baseURL string
}

// Channel is the feed to render
type Channel struct {
	Language  domain.Language
	Items     []domain.NewsItem
	FetchedAt time.Time
	TTL       time.Duration // how long readers may cache the feed
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GenerateRSS creates an RSS 2.0 feed for a language
func (g *Generator) GenerateRSS(ch Channel) (string, error) {
	selfLink := fmt.Sprintf("%s/rss/%s", g.baseURL, strings.ToLower(string(ch.Language)))

	rssItems := make([]*RSSItem, 0, len(ch.Items))
	for _, item := range ch.Items {
		rssItems = append(rssItems, g.convertToRSSItem(item, ch))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         fmt.Sprintf("Viralscope - Viral News (%s)", ch.Language),
			Link:          g.baseURL + "/",
			Description:   "Trending US news rewritten for short videos, plus hypothetical scenarios",
			Language:      channelLanguage(ch.Language),
			AtomLink:      &AtomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: ch.FetchedAt.Format(time.RFC1123Z),
			TTL:           int(ch.TTL.Minutes()),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem converts a news item to an RSS item
func (g *Generator) convertToRSSItem(item domain.NewsItem, ch Channel) *RSSItem {
	kind := "real"
	if item.IsFiction() {
		kind = "fiction"
	}
	return &RSSItem{
		Title:       fmt.Sprintf("[%d] %s", item.ViralScore, item.Headline),
		Link:        fmt.Sprintf("%s/api/v1/feed/%s#%s", g.baseURL, strings.ToLower(string(ch.Language)), item.ID),
		GUID:        RSSGUID{Value: item.ID},
		Description: item.Summary,
		PubDate:     ch.FetchedAt.Format(time.RFC1123Z),
		Categories:  []string{string(item.Category), kind},
	}
}

func channelLanguage(lang domain.Language) string {
	if lang == domain.LangPT {
		return "pt-br"
	}
	return "en-us"
}
