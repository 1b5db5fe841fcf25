// Package studio produces the viral news feed and video scripts. It decides between the
// cached feed, a freshly generated one and the built-in fallback set, and never leaves
// callers without a feed.
package studio

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/singleflight"

	"github.com/umputun/viralscope/pkg/cache"
	"github.com/umputun/viralscope/pkg/domain"
	"github.com/umputun/viralscope/pkg/llm"
	"github.com/umputun/viralscope/pkg/metrics"
)

//go:generate moq -out mocks/generator.go -pkg mocks -skip-ensure -fmt goimports . Generator
//go:generate moq -out mocks/aggregator.go -pkg mocks -skip-ensure -fmt goimports . Aggregator

// Generator produces content with a generative model
type Generator interface {
	Configured() bool
	GenerateFeed(ctx context.Context, req llm.FeedRequest) ([]llm.FeedEntry, error)
	GenerateScript(ctx context.Context, req llm.ScriptRequest) (llm.ScriptResult, error)
}

// Aggregator collects source articles, never fails
type Aggregator interface {
	FetchArticles(ctx context.Context) []domain.RawArticle
}

// Service orchestrates feed and script generation
type Service struct {
	gen          Generator
	agg          Aggregator
	store        *cache.Store
	now          func() time.Time
	fetchTimeout time.Duration
	group        singleflight.Group
}

// Opts defines optional service parameters
type Opts struct {
	FetchTimeout time.Duration // bounds a shared fetch, 0 for no limit
	Now          func() time.Time
}

// FeedResult is a feed with its freshness information
type FeedResult struct {
	Language    domain.Language   `json:"language"`
	Items       []domain.NewsItem `json:"items"`
	FetchedAt   time.Time         `json:"fetched_at"`
	NextRefresh time.Time         `json:"next_refresh"`
	Cached      bool              `json:"cached"`   // served from a fresh cache entry
	Fallback    bool              `json:"fallback"` // built-in items, not cached
}

// NewService makes a studio service
func NewService(gen Generator, agg Aggregator, store *cache.Store, opts Opts) *Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{gen: gen, agg: agg, store: store, now: opts.Now, fetchTimeout: opts.FetchTimeout}
}

// FetchFeed returns the feed for a language. A fresh cache entry is returned without any network calls,
// otherwise articles are aggregated and a new feed is generated. Concurrent calls for the same
// language share a single fetch.
func (s *Service) FetchFeed(ctx context.Context, lang domain.Language) (FeedResult, error) {
	if res, ok := s.cached(ctx, lang); ok {
		recordFeed(res)
		return res, nil
	}

	ch := s.group.DoChan(string(lang), func() (any, error) {
		fetchCtx := context.WithoutCancel(ctx)
		if s.fetchTimeout > 0 {
			var cancel context.CancelFunc
			fetchCtx, cancel = context.WithTimeout(fetchCtx, s.fetchTimeout)
			defer cancel()
		}
		// a previous shared fetch may have just filled the cache
		if res, ok := s.cached(fetchCtx, lang); ok {
			return res, nil
		}
		return s.fetchFresh(fetchCtx, lang), nil
	})

	select {
	case <-ctx.Done():
		return FeedResult{}, fmt.Errorf("fetch feed %s: %w", lang, ctx.Err())
	case r := <-ch:
		if r.Err != nil {
			return FeedResult{}, fmt.Errorf("fetch feed %s: %w", lang, r.Err)
		}
		if r.Shared {
			lgr.Printf("[DEBUG] feed fetch for %s shared between callers", lang)
		}
		res := r.Val.(FeedResult)
		recordFeed(res)
		return res, nil
	}
}

// Refresh drops the cached feed and fetches a new one
func (s *Service) Refresh(ctx context.Context, lang domain.Language) (FeedResult, error) {
	if err := s.store.Invalidate(ctx, lang); err != nil {
		return FeedResult{}, fmt.Errorf("refresh feed: %w", err)
	}
	lgr.Printf("[INFO] feed cache for %s invalidated", lang)
	return s.FetchFeed(ctx, lang)
}

// NextRefreshTime returns when a new feed may be fetched for a language
func (s *Service) NextRefreshTime(ctx context.Context, lang domain.Language) time.Time {
	return s.store.NextRefreshTime(ctx, lang)
}

// cached returns the stored feed if it is still fresh
func (s *Service) cached(ctx context.Context, lang domain.Language) (FeedResult, bool) {
	entry, ok := s.store.Get(ctx, lang)
	if !ok || !s.store.Fresh(entry, s.now()) {
		return FeedResult{}, false
	}
	lgr.Printf("[DEBUG] feed for %s served from cache", lang)
	fetchedAt := entry.FetchedAt()
	return FeedResult{
		Language:    lang,
		Items:       entry.Data,
		FetchedAt:   fetchedAt,
		NextRefresh: fetchedAt.Add(s.store.TTL()),
		Cached:      true,
	}, true
}

// fetchFresh aggregates articles and generates a feed, or falls back to built-in items
func (s *Service) fetchFresh(ctx context.Context, lang domain.Language) FeedResult {
	if !s.gen.Configured() {
		lgr.Printf("[WARN] llm api key is not configured, serving fallback feed for %s", lang)
		now := s.now()
		return FeedResult{
			Language:    lang,
			Items:       fallbackItems(lang, now, false),
			FetchedAt:   now,
			NextRefresh: s.store.NextRefreshTime(ctx, lang),
			Fallback:    true,
		}
	}

	articles := s.agg.FetchArticles(ctx)
	items, generated, fetchedAt := s.synthesize(ctx, articles, lang)
	res := FeedResult{Language: lang, Items: items, FetchedAt: fetchedAt, Fallback: !generated}
	res.NextRefresh = s.store.NextRefreshTime(ctx, lang)
	return res
}

// recordFeed counts a served feed by its source
func recordFeed(res FeedResult) {
	source := metrics.SourceGenerated
	switch {
	case res.Cached:
		source = metrics.SourceCache
	case res.Fallback:
		source = metrics.SourceFallback
	}
	metrics.RecordFeed(string(res.Language), source)
}

// Configured reports whether the generative model has a credential
func (s *Service) Configured() bool {
	return s.gen.Configured()
}

// CacheTTL returns how long a generated feed stays fresh
func (s *Service) CacheTTL() time.Duration {
	return s.store.TTL()
}
