package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/viralscope/pkg/domain"
	"github.com/umputun/viralscope/pkg/studio"
)

// nextRefreshResponse tells the client when the feed may change
type nextRefreshResponse struct {
	Language         domain.Language `json:"language"`
	NextRefresh      time.Time       `json:"next_refresh"`
	RemainingSeconds int64           `json:"remaining_seconds"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":         "ok",
		"version":        s.version,
		"time":           time.Now().UTC(),
		"llm_configured": s.studio.Configured(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// feedHandler returns the feed for a language, optionally filtered by kind
func (s *Server) feedHandler(w http.ResponseWriter, r *http.Request) {
	lang, ok := pathLanguage(w, r)
	if !ok {
		return
	}
	kind, err := domain.ParseFeedKind(r.URL.Query().Get("kind"))
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	res, err := s.studio.FetchFeed(r.Context(), lang)
	if err != nil {
		lgr.Printf("[WARN] failed to fetch %s feed: %v", lang, err)
		renderError(w, r, err, http.StatusServiceUnavailable)
		return
	}
	res.Items = domain.FilterItems(res.Items, kind)
	renderJSON(w, r, http.StatusOK, res)
}

// refreshHandler drops the cached feed and returns a freshly fetched one
func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	lang, ok := pathLanguage(w, r)
	if !ok {
		return
	}
	if !s.refreshLimiters[lang].Allow() {
		renderError(w, r, fmt.Errorf("%s feed was refreshed recently, try again later", lang), http.StatusTooManyRequests)
		return
	}

	res, err := s.studio.Refresh(r.Context(), lang)
	if err != nil {
		lgr.Printf("[WARN] failed to refresh %s feed: %v", lang, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// nextRefreshHandler reports when the cached feed becomes stale
func (s *Server) nextRefreshHandler(w http.ResponseWriter, r *http.Request) {
	lang, ok := pathLanguage(w, r)
	if !ok {
		return
	}

	next := s.studio.NextRefreshTime(r.Context(), lang)
	remaining := int64(time.Until(next).Seconds())
	renderJSON(w, r, http.StatusOK, nextRefreshResponse{
		Language:         lang,
		NextRefresh:      next,
		RemainingSeconds: max(remaining, 0),
	})
}

// scriptHandler generates a video script for the news item in request body.
// With ?format=prompts only the image prompts are returned as plain text.
func (s *Server) scriptHandler(w http.ResponseWriter, r *http.Request) {
	lang, ok := pathLanguage(w, r)
	if !ok {
		return
	}

	var item domain.NewsItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		renderError(w, r, fmt.Errorf("invalid news item: %w", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(item.Headline) == "" {
		renderError(w, r, errors.New("headline is required"), http.StatusBadRequest)
		return
	}

	script, err := s.studio.SynthesizeScript(r.Context(), item, lang)
	if err != nil {
		if errors.Is(err, studio.ErrNoCredential) {
			renderError(w, r, err, http.StatusServiceUnavailable)
			return
		}
		lgr.Printf("[WARN] failed to generate script for %q: %v", item.Headline, err)
		renderError(w, r, err, http.StatusBadGateway)
		return
	}

	if r.URL.Query().Get("format") == "prompts" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(script.PromptsText())); err != nil {
			lgr.Printf("[WARN] failed to write prompts response: %v", err)
		}
		return
	}
	renderJSON(w, r, http.StatusOK, script)
}

// pathLanguage parses {lang} path value, renders 400 on unsupported language
func pathLanguage(w http.ResponseWriter, r *http.Request) (domain.Language, bool) {
	lang, err := domain.ParseLanguage(r.PathValue("lang"))
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return "", false
	}
	return lang, true
}
