package studio

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/viralscope/pkg/cache"
	"github.com/umputun/viralscope/pkg/domain"
	"github.com/umputun/viralscope/pkg/llm"
)

// SynthesizeFeed turns articles into a feed. A generated feed is stored in the cache,
// a failed or impossible generation yields the fallback items.
func (s *Service) SynthesizeFeed(ctx context.Context, articles []domain.RawArticle, lang domain.Language) []domain.NewsItem {
	items, _, _ := s.synthesize(ctx, articles, lang)
	return items
}

// synthesize returns the feed, whether it was generated by the model and its timestamp
func (s *Service) synthesize(ctx context.Context, articles []domain.RawArticle, lang domain.Language) ([]domain.NewsItem, bool, time.Time) {
	now := s.now()
	if !s.gen.Configured() {
		lgr.Printf("[WARN] llm api key is not configured, serving fallback feed for %s", lang)
		return fallbackItems(lang, now, false), false, now
	}

	entries, err := s.gen.GenerateFeed(ctx, llm.FeedRequest{Articles: articles, Language: lang})
	if err != nil {
		lgr.Printf("[WARN] feed generation for %s failed, serving fallback: %v", lang, err)
		return fallbackItems(lang, now, true), false, now
	}

	generatedAt := s.now()
	items := decorate(entries, lang, generatedAt)
	if err := s.store.Put(ctx, lang, cache.NewEntry(generatedAt, items)); err != nil {
		lgr.Printf("[WARN] can't cache feed for %s: %v", lang, err)
	}
	lgr.Printf("[INFO] generated feed for %s, %d items from %d articles", lang, len(items), len(articles))
	return items, true, generatedAt
}

// decorate assigns ids, display dates and highlights to generated entries
func decorate(entries []llm.FeedEntry, lang domain.Language, generatedAt time.Time) []domain.NewsItem {
	date := FormatShortDate(generatedAt, lang)
	items := make([]domain.NewsItem, len(entries))
	for i, e := range entries {
		items[i] = domain.NewsItem{
			ID:         fmt.Sprintf("news-%d-%d", generatedAt.UnixMilli(), i),
			Headline:   e.Headline,
			Summary:    e.Summary,
			ViralScore: e.ViralScore,
			Category:   e.Category,
			IsReal:     e.IsReal,
			Date:       date,
		}
	}
	markHighlights(items)
	return items
}
