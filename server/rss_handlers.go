package server

import (
	"net/http"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/viralscope/pkg/feed"
)

// rssHandler serves the current feed of a language as RSS
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	lang, ok := pathLanguage(w, r)
	if !ok {
		return
	}

	res, err := s.studio.FetchFeed(r.Context(), lang)
	if err != nil {
		lgr.Printf("[ERROR] failed to get %s feed for RSS: %v", lang, err)
		http.Error(w, "Failed to generate RSS feed", http.StatusServiceUnavailable)
		return
	}

	generator := feed.NewGenerator(s.config.GetBaseURL())
	rss, err := generator.GenerateRSS(feed.Channel{
		Language:  lang,
		Items:     res.Items,
		FetchedAt: res.FetchedAt,
		TTL:       s.studio.CacheTTL(),
	})
	if err != nil {
		lgr.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		lgr.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
