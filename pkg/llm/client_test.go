package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/viralscope/pkg/config"
	"github.com/umputun/viralscope/pkg/domain"
)

const feedReply = `{"news":[
	{"headline":"SENATE IN CHAOS","summary":"Late night vote collapses. Leaders scramble.","viralScore":97,"category":"POLITICS","isReal":true},
	{"headline":"MARKETS IN FREEFALL","summary":"Dow drops 1200 points. Panic spreads.","viralScore":95,"category":"economy","isReal":true},
	{"headline":"YELLOWSTONE WAKES UP","summary":"Sensors spike overnight. Evacuation rumors.","viralScore":140,"category":"FICTION","isReal":false}]}`

func scriptReply(scenes int) string {
	sc := make([]string, 0, scenes)
	for i := range scenes {
		sc = append(sc, fmt.Sprintf(`{"id":%d,"description":"scene %d","prompt":"Candid shot %d","prompt_pt":"Foto %d"}`, i+1, i+1, i+1, i+1))
	}
	return `{"teleprompterText":"BREAKING NEWS: something big happened today in Washington.",
		"scenes":[` + strings.Join(sc, ",") + `],
		"viralAnalysis":{"score":88,"hookStrength":"EXTREME","retentionPrediction":"HIGH","emotionalTrigger":"Fear","keyTrend":"Elections"},
		"wordCount":9}`
}

func newTestServer(t *testing.T, reply string, check func(req openai.ChatCompletionRequest)) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req openai.ChatCompletionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if check != nil {
			check(req)
		}

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: reply}}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(ts.Close)
	return ts, &calls
}

func testConfig(endpoint string) config.LLMConfig {
	return config.LLMConfig{
		Endpoint:          endpoint + "/v1",
		APIKey:            "test-key",
		Model:             "gemini-2.5-flash",
		FeedTemperature:   0.8,
		ScriptTemperature: 0.7,
		Timeout:           5 * time.Second,
	}
}

func TestClient_Configured(t *testing.T) {
	assert.True(t, NewClient(config.LLMConfig{APIKey: "k"}).Configured())
	assert.False(t, NewClient(config.LLMConfig{}).Configured())
}

func TestClient_GenerateFeed(t *testing.T) {
	ts, calls := newTestServer(t, feedReply, func(req openai.ChatCompletionRequest) {
		assert.Equal(t, "gemini-2.5-flash", req.Model)
		assert.InDelta(t, 0.8, req.Temperature, 0.001)
		require.Len(t, req.Messages, 1)
		assert.Contains(t, req.Messages[0].Content, `Article 1 [Reuters]: "Senate vote"`)
		assert.Contains(t, req.Messages[0].Content, "Brazilian Portuguese")
		require.NotNil(t, req.ResponseFormat)
		assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONSchema, req.ResponseFormat.Type)
		require.NotNil(t, req.ResponseFormat.JSONSchema)
		assert.Equal(t, "news_feed", req.ResponseFormat.JSONSchema.Name)
		assert.True(t, req.ResponseFormat.JSONSchema.Strict)
	})

	client := NewClient(testConfig(ts.URL))
	entries, err := client.GenerateFeed(context.Background(), FeedRequest{
		Articles: []domain.RawArticle{{Source: "Reuters", Title: "Senate vote", Description: "late", PublishedAt: "2026-10-17"}},
		Language: domain.LangPT,
	})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, int32(1), calls.Load())

	assert.Equal(t, "SENATE IN CHAOS", entries[0].Headline)
	assert.Equal(t, domain.CategoryEconomy, entries[1].Category, "category normalized")
	assert.Equal(t, 100, entries[2].ViralScore, "score clamped")
	assert.False(t, entries[2].IsReal)
}

func TestClient_GenerateFeed_NotStrict(t *testing.T) {
	strict := false
	ts, _ := newTestServer(t, feedReply, func(req openai.ChatCompletionRequest) {
		require.NotNil(t, req.ResponseFormat)
		require.NotNil(t, req.ResponseFormat.JSONSchema)
		assert.False(t, req.ResponseFormat.JSONSchema.Strict)
	})
	cfg := testConfig(ts.URL)
	cfg.StrictSchema = &strict
	_, err := NewClient(cfg).GenerateFeed(context.Background(), FeedRequest{Language: domain.LangEN})
	require.NoError(t, err)
}

func TestClient_GenerateFeed_Errors(t *testing.T) {
	t.Run("malformed reply", func(t *testing.T) {
		ts, _ := newTestServer(t, "sorry, I can't help with that", nil)
		_, err := NewClient(testConfig(ts.URL)).GenerateFeed(context.Background(), FeedRequest{Language: domain.LangEN})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedResponse))
	})

	t.Run("empty content", func(t *testing.T) {
		ts, _ := newTestServer(t, "", nil)
		_, err := NewClient(testConfig(ts.URL)).GenerateFeed(context.Background(), FeedRequest{Language: domain.LangEN})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedResponse))
	})

	t.Run("api error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded","type":"rate_limit","code":429}}`))
		}))
		defer ts.Close()
		_, err := NewClient(testConfig(ts.URL)).GenerateFeed(context.Background(), FeedRequest{Language: domain.LangEN})
		require.Error(t, err)
		var apiErr *openai.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusTooManyRequests, apiErr.HTTPStatusCode)
	})

	t.Run("no api key", func(t *testing.T) {
		ts, calls := newTestServer(t, feedReply, nil)
		cfg := testConfig(ts.URL)
		cfg.APIKey = ""
		_, err := NewClient(cfg).GenerateFeed(context.Background(), FeedRequest{Language: domain.LangEN})
		require.Error(t, err)
		assert.Equal(t, int32(0), calls.Load())
	})
}

func TestClient_GenerateScript(t *testing.T) {
	ts, calls := newTestServer(t, "```json\n"+scriptReply(20)+"\n```", func(req openai.ChatCompletionRequest) {
		assert.InDelta(t, 0.7, req.Temperature, 0.001)
		require.Len(t, req.Messages, 1)
		assert.Contains(t, req.Messages[0].Content, `Headline: "MARKETS IN FREEFALL"`)
		assert.Contains(t, req.Messages[0].Content, "REAL US NEWS (TRENDING)")
		assert.Contains(t, req.Messages[0].Content, "URGENT UPDATE")
		require.NotNil(t, req.ResponseFormat)
		require.NotNil(t, req.ResponseFormat.JSONSchema)
		assert.Equal(t, "viral_script", req.ResponseFormat.JSONSchema.Name)
	})

	client := NewClient(testConfig(ts.URL))
	res, err := client.GenerateScript(context.Background(), ScriptRequest{
		Item:     domain.NewsItem{ID: "news-1-0", Headline: "MARKETS IN FREEFALL", Summary: "Dow drops", IsReal: true},
		Language: domain.LangEN,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.True(t, strings.HasPrefix(res.TeleprompterText, "BREAKING NEWS"))
	require.Len(t, res.Scenes, 20)
	assert.Equal(t, 1, res.Scenes[0].ID)
	assert.Equal(t, "Candid shot 1", res.Scenes[0].Prompt)
	assert.Equal(t, "Foto 20", res.Scenes[19].PromptPT)
	assert.Equal(t, 9, res.WordCount)
	assert.Equal(t, domain.ViralAnalysis{Score: 88, HookStrength: domain.HookExtreme, RetentionPrediction: domain.RetentionHigh,
		EmotionalTrigger: "Fear", KeyTrend: "Elections"}, res.ViralAnalysis)
}

func TestClient_GenerateScript_Malformed(t *testing.T) {
	ts, _ := newTestServer(t, `{"teleprompterText":"","scenes":[]}`, nil)
	_, err := NewClient(testConfig(ts.URL)).GenerateScript(context.Background(), ScriptRequest{Language: domain.LangPT})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedResponse))
}
