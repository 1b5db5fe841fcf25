// Package news collects trending headlines from the configured news providers.
// Provider failures never surface to callers, a failed provider contributes nothing.
package news

import (
	"context"
	"html"
	"strings"
	"sync/atomic"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/viralscope/pkg/domain"
	"github.com/umputun/viralscope/pkg/metrics"
)

//go:generate moq -out mocks/source.go -pkg mocks -skip-ensure -fmt goimports . Source Enricher

// DefaultMaxArticles caps the joined article list
const DefaultMaxArticles = 30

// Source is a single news provider
type Source interface {
	Name() string
	Enabled() bool
	Fetch(ctx context.Context) ([]domain.RawArticle, error)
}

// Enricher extracts article text from a page url
type Enricher interface {
	Extract(ctx context.Context, url string) (string, error)
}

// Aggregator queries sources concurrently and joins their articles in source order
type Aggregator struct {
	sources       []Source
	maxArticles   int
	enricher      Enricher
	maxConcurrent int
	sanitizer     *bluemonday.Policy
}

// Opts defines aggregator parameters
type Opts struct {
	MaxArticles   int
	Enricher      Enricher // optional, fills empty descriptions
	MaxConcurrent int      // enrichment concurrency
}

// NewAggregator makes an aggregator for the given sources, results keep the sources order
func NewAggregator(opts Opts, sources ...Source) *Aggregator {
	if opts.MaxArticles <= 0 {
		opts.MaxArticles = DefaultMaxArticles
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 5
	}
	return &Aggregator{
		sources:       sources,
		maxArticles:   opts.MaxArticles,
		enricher:      opts.Enricher,
		maxConcurrent: opts.MaxConcurrent,
		sanitizer:     bluemonday.StrictPolicy(),
	}
}

// FetchArticles returns articles of all sources, possibly empty. Never fails.
func (a *Aggregator) FetchArticles(ctx context.Context) []domain.RawArticle {
	results := make([][]domain.RawArticle, len(a.sources))
	var g errgroup.Group
	for i, src := range a.sources {
		if !src.Enabled() {
			lgr.Printf("[DEBUG] news source %s skipped, no api key", src.Name())
			continue
		}
		g.Go(func() error {
			articles, err := src.Fetch(ctx)
			metrics.RecordProvider(src.Name(), len(articles), err)
			if err != nil {
				lgr.Printf("[WARN] news source %s failed: %v", src.Name(), err)
				return nil
			}
			lgr.Printf("[DEBUG] news source %s returned %d articles", src.Name(), len(articles))
			results[i] = articles
			return nil
		})
	}
	_ = g.Wait()

	res := make([]domain.RawArticle, 0, a.maxArticles)
	for _, articles := range results {
		for _, article := range articles {
			if len(res) >= a.maxArticles {
				break
			}
			article = a.sanitize(article)
			if article.Title == "" {
				continue
			}
			res = append(res, article)
		}
	}

	if a.enricher != nil {
		a.enrich(ctx, res)
	}
	lgr.Printf("[INFO] fetched %d articles from %d sources", len(res), len(a.sources))
	return res
}

// sanitize strips html from text fields
func (a *Aggregator) sanitize(article domain.RawArticle) domain.RawArticle {
	clean := func(s string) string {
		return strings.TrimSpace(html.UnescapeString(a.sanitizer.Sanitize(s)))
	}
	article.Title = clean(article.Title)
	article.Description = clean(article.Description)
	return article
}

// enrich fills empty descriptions with extracted page text, failures leave articles unchanged
func (a *Aggregator) enrich(ctx context.Context, articles []domain.RawArticle) {
	var g errgroup.Group
	g.SetLimit(a.maxConcurrent)
	var enriched atomic.Int32
	for i := range articles {
		if articles[i].Description != "" || articles[i].URL == "" {
			continue
		}
		g.Go(func() error {
			text, err := a.enricher.Extract(ctx, articles[i].URL)
			if err != nil {
				lgr.Printf("[DEBUG] can't extract %s: %v", articles[i].URL, err)
				return nil
			}
			articles[i].Description = text
			enriched.Add(1)
			return nil
		})
	}
	_ = g.Wait()
	if n := enriched.Load(); n > 0 {
		lgr.Printf("[DEBUG] enriched %d articles with extracted content", n)
	}
}
