package server

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/viralscope/pkg/domain"
	"github.com/umputun/viralscope/pkg/studio"
	"github.com/umputun/viralscope/server/mocks"
)

func TestServer_rssHandler(t *testing.T) {
	st := &mocks.StudioMock{
		FetchFeedFunc: func(_ context.Context, lang domain.Language) (studio.FeedResult, error) {
			return testFeed(lang), nil
		},
		CacheTTLFunc: func() time.Duration { return 12 * time.Hour },
	}
	srv := New(testConfig(), st, "test", false)

	w := serve(srv, http.MethodGet, "/rss/en", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/rss+xml; charset=utf-8", w.Header().Get("Content-Type"))

	parsed, err := gofeed.NewParser().ParseString(w.Body.String())
	require.NoError(t, err)
	assert.Equal(t, "Viralscope - Viral News (EN)", parsed.Title)
	require.Len(t, parsed.Items, 3)
	assert.Equal(t, "[97] SENATE IN CHAOS", parsed.Items[0].Title)
	assert.Equal(t, "https://viral.example.com/api/v1/feed/en#news-1-0", parsed.Items[0].Link)

	require.Len(t, st.FetchFeedCalls(), 1)
	assert.Equal(t, domain.LangEN, st.FetchFeedCalls()[0].Lang)
}

func TestServer_rssHandler_Errors(t *testing.T) {
	st := &mocks.StudioMock{
		FetchFeedFunc: func(context.Context, domain.Language) (studio.FeedResult, error) {
			return studio.FeedResult{}, errors.New("deadline exceeded")
		},
	}
	srv := New(testConfig(), st, "test", false)

	w := serve(srv, http.MethodGet, "/rss/pt", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = serve(srv, http.MethodGet, "/rss/xx", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, st.FetchFeedCalls())
}
