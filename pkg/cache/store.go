// Package cache keeps the generated news feed per language with a freshness window.
// Entries live in a small key-value backend (sqlite, redis or memory) under a versioned key,
// bumping the version orphans every entry written by older deployments.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/viralscope/pkg/domain"
)

// DefaultTTL is the freshness window of a cached feed
const DefaultTTL = 12 * time.Hour

// KV is a minimal persistent key-value backend
type KV interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Entry is a cached feed with the time it was fetched
type Entry struct {
	Timestamp int64             `json:"timestamp"` // epoch milliseconds
	Data      []domain.NewsItem `json:"data"`
}

// NewEntry makes an entry stamped with the given fetch time
func NewEntry(fetchedAt time.Time, items []domain.NewsItem) Entry {
	return Entry{Timestamp: fetchedAt.UnixMilli(), Data: items}
}

// FetchedAt returns the fetch time of the entry
func (e Entry) FetchedAt() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// Store is a feed cache on top of KV
type Store struct {
	kv      KV
	version string
	ttl     time.Duration
	now     func() time.Time
}

// Opts defines optional store parameters
type Opts struct {
	Version string
	TTL     time.Duration
	Now     func() time.Time
}

// NewStore makes a store with the given backend, empty opts fields get defaults
func NewStore(kv KV, opts Opts) *Store {
	res := &Store{kv: kv, version: opts.Version, ttl: opts.TTL, now: opts.Now}
	if res.version == "" {
		res.version = "v8"
	}
	if res.ttl <= 0 {
		res.ttl = DefaultTTL
	}
	if res.now == nil {
		res.now = time.Now
	}
	return res
}

// Key returns the versioned storage key for a language
func (s *Store) Key(lang domain.Language) string {
	return fmt.Sprintf("viralscope_%s_cache_%s", s.version, lang)
}

// TTL returns the freshness window
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Get returns the entry for a language. Missing and undecodable entries are reported as not found.
func (s *Store) Get(ctx context.Context, lang domain.Language) (Entry, bool) {
	key := s.Key(lang)
	raw, found, err := s.kv.Get(ctx, key)
	if err != nil {
		lgr.Printf("[WARN] can't read cache %s: %v", key, err)
		return Entry{}, false
	}
	if !found {
		return Entry{}, false
	}
	var entry Entry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		lgr.Printf("[WARN] corrupted cache %s, ignored: %v", key, err)
		return Entry{}, false
	}
	return entry, true
}

// Put stores the entry for a language, overwriting unconditionally
func (s *Store) Put(ctx context.Context, lang domain.Language, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}
	if err := s.kv.Set(ctx, s.Key(lang), string(data)); err != nil {
		return fmt.Errorf("store cache entry for %s: %w", lang, err)
	}
	return nil
}

// Invalidate removes the entry for a language
func (s *Store) Invalidate(ctx context.Context, lang domain.Language) error {
	if err := s.kv.Delete(ctx, s.Key(lang)); err != nil {
		return fmt.Errorf("invalidate cache for %s: %w", lang, err)
	}
	return nil
}

// NextRefreshTime returns when a new feed may be fetched, now if nothing is cached
func (s *Store) NextRefreshTime(ctx context.Context, lang domain.Language) time.Time {
	entry, ok := s.Get(ctx, lang)
	if !ok {
		return s.now()
	}
	return entry.FetchedAt().Add(s.ttl)
}

// Fresh reports whether the entry is younger than ttl at the given time
func (s *Store) Fresh(entry Entry, now time.Time) bool {
	return now.Sub(entry.FetchedAt()) < s.ttl
}
