package llm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/viralscope/pkg/domain"
)

func TestParseFeed(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
		wantErr bool
	}{
		{name: "object", content: feedReply, want: 3},
		{name: "code fence", content: "```json\n" + feedReply + "\n```", want: 3},
		{name: "bare array", content: `[{"headline":"A","summary":"B","viralScore":90,"category":"TECH","isReal":true}]`, want: 1},
		{name: "prose around", content: `Here you go: {"news":[{"headline":"A","summary":"B","viralScore":90,"category":"TECH","isReal":true}]} enjoy`, want: 1},
		{name: "empty feed", content: `{"news":[]}`, wantErr: true},
		{name: "no json", content: "nothing here", wantErr: true},
		{name: "broken json", content: `{"news":[{"headline":}]}`, wantErr: true},
		{name: "bad category", content: `{"news":[{"headline":"A","summary":"B","viralScore":90,"category":"SPORTS","isReal":true}]}`, wantErr: true},
		{name: "empty headline", content: `{"news":[{"headline":" ","summary":"B","viralScore":90,"category":"TECH","isReal":true}]}`, wantErr: true},
		{name: "empty summary", content: `{"news":[{"headline":"A","summary":"","viralScore":90,"category":"TECH","isReal":true}]}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := parseFeed(tt.content)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMalformedResponse))
				return
			}
			require.NoError(t, err)
			assert.Len(t, entries, tt.want)
		})
	}
}

func TestParseFeed_ClampsScores(t *testing.T) {
	entries, err := parseFeed(`{"news":[
		{"headline":"A","summary":"B","viralScore":-5,"category":"TECH","isReal":true},
		{"headline":"C","summary":"D","viralScore":250,"category":"fiction","isReal":false}]}`)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 0, entries[0].ViralScore)
	assert.Equal(t, 100, entries[1].ViralScore)
	assert.Equal(t, domain.CategoryFiction, entries[1].Category)
}

func TestParseScript(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		res, err := parseScript(scriptReply(20))
		require.NoError(t, err)
		assert.Len(t, res.Scenes, 20)
		assert.Equal(t, domain.HookExtreme, res.ViralAnalysis.HookStrength)
	})

	t.Run("fewer scenes accepted", func(t *testing.T) {
		res, err := parseScript(scriptReply(5))
		require.NoError(t, err)
		assert.Len(t, res.Scenes, 5)
	})

	t.Run("missing scene ids assigned", func(t *testing.T) {
		content := strings.ReplaceAll(scriptReply(3), `"id":`, `"ignored":`)
		res, err := parseScript(content)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, []int{res.Scenes[0].ID, res.Scenes[1].ID, res.Scenes[2].ID})
	})

	t.Run("lowercase enums", func(t *testing.T) {
		content := strings.Replace(scriptReply(2), `"EXTREME"`, `"extreme"`, 1)
		res, err := parseScript(content)
		require.NoError(t, err)
		assert.Equal(t, domain.HookExtreme, res.ViralAnalysis.HookStrength)
	})

	tests := []struct {
		name    string
		content string
	}{
		{"no json", "no"},
		{"empty text", strings.Replace(scriptReply(2), "BREAKING NEWS: something big happened today in Washington.", " ", 1)},
		{"no scenes", `{"teleprompterText":"x","scenes":[],"viralAnalysis":{"hookStrength":"HIGH","retentionPrediction":"HIGH"}}`},
		{"empty prompt", strings.Replace(scriptReply(2), "Candid shot 2", "", 1)},
		{"bad hook", strings.Replace(scriptReply(2), `"EXTREME"`, `"INSANE"`, 1)},
		{"bad retention", strings.Replace(scriptReply(2), `"retentionPrediction":"HIGH"`, `"retentionPrediction":"FOREVER"`, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseScript(tt.content)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedResponse))
		})
	}
}

func TestParseFeed_FractionalScores(t *testing.T) {
	entries, err := parseFeed(`{"news":[
		{"headline":"A","summary":"B","viralScore":95.0,"category":"POLITICS","isReal":true},
		{"headline":"C","summary":"D","viralScore":87.5,"category":"FICTION","isReal":false},
		{"headline":"E","summary":"F","viralScore":99.9,"category":"TECH","isReal":true}]}`)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 95, entries[0].ViralScore)
	assert.Equal(t, 88, entries[1].ViralScore)
	assert.Equal(t, 100, entries[2].ViralScore)
}

func TestParseScript_FractionalNumbers(t *testing.T) {
	content := strings.Replace(scriptReply(2), `"score":88`, `"score":87.5`, 1)
	content = strings.Replace(content, `"wordCount":9`, `"wordCount":230.0`, 1)
	res, err := parseScript(content)
	require.NoError(t, err)
	assert.Equal(t, 88, res.ViralAnalysis.Score)
	assert.Equal(t, 230, res.WordCount)
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{-1, 0}, {0, 0}, {55, 55}, {87.4, 87}, {87.5, 88}, {95.0, 95}, {100, 100}, {101, 100}, {100.4, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clampScore(tt.in), "score %v", tt.in)
	}
}
