package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGNews_Fetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "general", q.Get("category"))
		assert.Equal(t, "en", q.Get("lang"))
		assert.Equal(t, "us", q.Get("country"))
		assert.Equal(t, "10", q.Get("max"))
		assert.Equal(t, "gkey", q.Get("apikey"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalArticles":2,"articles":[
			{"title":"Senate passes bill","description":"late night vote","url":"https://example.com/1",
			 "publishedAt":"2026-10-17T08:00:00Z","source":{"name":"Reuters"}},
			{"title":"Storm hits coast","description":"","url":"https://example.com/2",
			 "publishedAt":"2026-10-17T09:00:00Z","source":{"name":""}}]}`))
	}))
	defer ts.Close()

	g := NewGNews(ProviderOpts{URL: ts.URL, APIKey: "gkey", Country: "us", Language: "en", Category: "general",
		Max: 10, Timeout: time.Second, UserAgent: "test-agent"})
	assert.True(t, g.Enabled())
	assert.Equal(t, "gnews", g.Name())

	articles, err := g.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "Reuters", articles[0].Source)
	assert.Equal(t, "Senate passes bill", articles[0].Title)
	assert.Equal(t, "late night vote", articles[0].Description)
	assert.Equal(t, "https://example.com/1", articles[0].URL)
	assert.Equal(t, "2026-10-17T08:00:00Z", articles[0].PublishedAt)
	assert.Equal(t, "GNews", articles[1].Source)
}

func TestGNews_FetchErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusInternalServerError) }},
		{"forbidden", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusForbidden) }},
		{"bad json", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte(`{"articles":[`)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()
			g := NewGNews(ProviderOpts{URL: ts.URL, APIKey: "k", Timeout: time.Second})
			_, err := g.Fetch(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "gnews")
		})
	}

	t.Run("disabled without key", func(t *testing.T) {
		g := NewGNews(ProviderOpts{URL: "http://localhost"})
		assert.False(t, g.Enabled())
	})
}

const newsAPIBody = `{"status":"ok","totalResults":3,"articles":[
	{"source":{"id":"cnn","name":"CNN"},"title":"Markets tumble","description":"stocks fall","url":"https://example.com/a","publishedAt":"2026-10-17T07:00:00Z"},
	{"source":{"id":null,"name":"[Removed]"},"title":"[Removed]","description":"[Removed]","url":"https://removed.com","publishedAt":"1970-01-01T00:00:00Z"},
	{"source":{"id":null,"name":""},"title":"Wildfire spreads","description":null,"url":"https://example.com/b","publishedAt":"2026-10-17T06:00:00Z"}]}`

func TestNewsAPI_FetchDirect(t *testing.T) {
	var relayCalls atomic.Int32
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		relayCalls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer relay.Close()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "us", q.Get("country"))
		assert.Equal(t, "20", q.Get("pageSize"))
		assert.Equal(t, "nkey", q.Get("apiKey"))
		_, _ = w.Write([]byte(newsAPIBody))
	}))
	defer ts.Close()

	n := NewNewsAPI(ProviderOpts{URL: ts.URL, APIKey: "nkey", Country: "us", Max: 20, Timeout: time.Second}, relay.URL)
	articles, err := n.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 2, "removed article skipped")
	assert.Equal(t, "CNN", articles[0].Source)
	assert.Equal(t, "Markets tumble", articles[0].Title)
	assert.Equal(t, "NewsAPI", articles[1].Source)
	assert.Empty(t, articles[1].Description)
	assert.Equal(t, int32(0), relayCalls.Load())
}

func TestNewsAPI_FetchViaRelay(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUpgradeRequired)
	}))
	defer ts.Close()

	var relayCalls atomic.Int32
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		relayCalls.Add(1)
		target, err := url.Parse(r.URL.Query().Get("url"))
		assert.NoError(t, err)
		assert.Equal(t, "nkey", target.Query().Get("apiKey"))
		assert.Equal(t, "us", target.Query().Get("country"))
		assert.Equal(t, ts.URL, target.Scheme+"://"+target.Host)
		_, _ = w.Write([]byte(newsAPIBody))
	}))
	defer relay.Close()

	n := NewNewsAPI(ProviderOpts{URL: ts.URL, APIKey: "nkey", Country: "us", Max: 20, Timeout: time.Second}, relay.URL)
	articles, err := n.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, articles, 2)
	assert.Equal(t, int32(1), relayCalls.Load())
}

func TestNewsAPI_FetchBothFail(t *testing.T) {
	var directCalls, relayCalls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		directCalls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		relayCalls.Add(1)
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer relay.Close()

	n := NewNewsAPI(ProviderOpts{URL: ts.URL, APIKey: "nkey", Timeout: time.Second}, relay.URL)
	_, err := n.Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), directCalls.Load())
	assert.Equal(t, int32(1), relayCalls.Load(), "relay tried exactly once")
}

func TestNewsAPI_NoRelay(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	n := NewNewsAPI(ProviderOpts{URL: ts.URL, APIKey: "nkey", Timeout: time.Second}, "")
	_, err := n.Fetch(context.Background())
	require.Error(t, err)
}

func TestNewsAPI_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"error","code":"apiKeyInvalid"}`))
	}))
	defer ts.Close()

	n := NewNewsAPI(ProviderOpts{URL: ts.URL, APIKey: "nkey", Timeout: time.Second}, "")
	_, err := n.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error")
}
