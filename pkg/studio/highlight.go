package studio

import "github.com/umputun/viralscope/pkg/domain"

// markHighlights flags the first item, and the first later fiction item that follows a non-fiction one
func markHighlights(items []domain.NewsItem) {
	prevFiction, fictionMarked := false, false
	for i := range items {
		fiction := items[i].IsFiction()
		items[i].IsHighlight = i == 0
		if i > 0 && fiction && !prevFiction && !fictionMarked {
			items[i].IsHighlight = true
			fictionMarked = true
		}
		prevFiction = fiction
	}
}
