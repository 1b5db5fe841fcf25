// Package scheduler keeps feed caches warm in the background.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/viralscope/pkg/domain"
	"github.com/umputun/viralscope/pkg/studio"
)

//go:generate moq -out mocks/feed_fetcher.go -pkg mocks -skip-ensure -fmt goimports . FeedFetcher

// FeedFetcher returns the feed for a language, refetching only stale entries
type FeedFetcher interface {
	FetchFeed(ctx context.Context, lang domain.Language) (studio.FeedResult, error)
}

// Scheduler periodically fetches feeds for configured languages
type Scheduler struct {
	fetcher   FeedFetcher
	languages []domain.Language
	interval  time.Duration
	wg        sync.WaitGroup
	cancel    context.CancelFunc
}

// Params defines scheduler parameters
type Params struct {
	Fetcher   FeedFetcher
	Languages []domain.Language
	Interval  time.Duration
}

// NewScheduler creates a new scheduler instance
func NewScheduler(params Params) *Scheduler {
	if params.Interval == 0 {
		params.Interval = 30 * time.Minute
	}
	if len(params.Languages) == 0 {
		params.Languages = []domain.Language{domain.LangPT, domain.LangEN}
	}
	return &Scheduler{
		fetcher:   params.Fetcher,
		languages: params.Languages,
		interval:  params.Interval,
	}
}

// Start begins the scheduler, the first prewarm runs immediately
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.prewarmWorker(ctx)

	lgr.Printf("[INFO] scheduler started with prewarm interval %v for %v", s.interval, s.languages)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// prewarmWorker fetches feeds on start and on every tick
func (s *Scheduler) prewarmWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.prewarm(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.prewarm(ctx)
		}
	}
}

// prewarm fetches the feed of every language one by one
func (s *Scheduler) prewarm(ctx context.Context) {
	for _, lang := range s.languages {
		if ctx.Err() != nil {
			return
		}
		res, err := s.fetcher.FetchFeed(ctx, lang)
		if err != nil {
			lgr.Printf("[WARN] prewarm of %s feed failed: %v", lang, err)
			continue
		}
		switch {
		case res.Cached:
			lgr.Printf("[DEBUG] %s feed is fresh until %s", lang, res.NextRefresh.Format(time.RFC3339))
		case res.Fallback:
			lgr.Printf("[WARN] %s feed prewarm got fallback items, will retry on next tick", lang)
		default:
			lgr.Printf("[INFO] %s feed prewarmed with %d items", lang, len(res.Items))
		}
	}
}
