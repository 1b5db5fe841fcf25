package domain

import (
	"fmt"
	"strings"
)

// Language is the output language of generated content
type Language string

const (
	LangPT Language = "PT"
	LangEN Language = "EN"
)

// ParseLanguage converts a case-insensitive language code into Language
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToUpper(strings.TrimSpace(s))) {
	case LangPT:
		return LangPT, nil
	case LangEN:
		return LangEN, nil
	default:
		return "", fmt.Errorf("unsupported language %q", s)
	}
}

// Category of a news item
type Category string

const (
	CategoryPolitics Category = "POLITICS"
	CategoryEconomy  Category = "ECONOMY"
	CategoryDisaster Category = "DISASTER"
	CategoryFiction  Category = "FICTION"
	CategoryTech     Category = "TECH"
)

// Categories lists all known categories in schema order
var Categories = []Category{CategoryPolitics, CategoryEconomy, CategoryDisaster, CategoryFiction, CategoryTech}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// NewsItem is a single entry of the generated feed
type NewsItem struct {
	ID          string   `json:"id"`
	Headline    string   `json:"headline"`
	Summary     string   `json:"summary"`
	ViralScore  int      `json:"viralScore"`
	Category    Category `json:"category"`
	IsReal      bool     `json:"isReal"`
	Date        string   `json:"date"`
	IsHighlight bool     `json:"isHighlight,omitempty"`
}

// IsFiction reports whether the item belongs to the hypothetical block of the feed
func (n NewsItem) IsFiction() bool {
	return !n.IsReal || n.Category == CategoryFiction
}

// RawArticle is a provider-neutral article fetched from a news API
type RawArticle struct {
	Source      string
	Title       string
	Description string
	URL         string
	PublishedAt string
}

// FeedKind selects a subset of the feed
type FeedKind string

const (
	FeedAll     FeedKind = "all"
	FeedReal    FeedKind = "real"
	FeedFiction FeedKind = "fiction"
)

// ParseFeedKind converts a query value into FeedKind, empty means all
func ParseFeedKind(s string) (FeedKind, error) {
	switch FeedKind(strings.ToLower(strings.TrimSpace(s))) {
	case "", FeedAll:
		return FeedAll, nil
	case FeedReal:
		return FeedReal, nil
	case FeedFiction:
		return FeedFiction, nil
	default:
		return "", fmt.Errorf("unsupported feed kind %q", s)
	}
}

// FilterItems returns items matching kind, preserving order. Tabs split on IsReal alone,
// so a real item the model labeled FICTION stays under real.
func FilterItems(items []NewsItem, kind FeedKind) []NewsItem {
	if kind == FeedAll || kind == "" {
		return items
	}
	res := make([]NewsItem, 0, len(items))
	for _, item := range items {
		if (kind == FeedReal) == item.IsReal {
			res = append(res, item)
		}
	}
	return res
}
