package llm

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/viralscope/pkg/domain"
)

// expectedScenes is the number of image prompts requested per script
const expectedScenes = 20

// extractJSON returns the outermost JSON value between open and close, tolerating code fences and prose
func extractJSON(content string, open, closing byte) (string, bool) {
	start := strings.IndexByte(content, open)
	end := strings.LastIndexByte(content, closing)
	if start == -1 || end == -1 || start >= end {
		return "", false
	}
	return content[start : end+1], true
}

// parseFeed decodes and validates the feed reply. A bare array is accepted as well as {"news": [...]}.
func parseFeed(content string) ([]FeedEntry, error) {
	var entries []feedEntryPayload
	objStart, arrStart := strings.IndexByte(content, '{'), strings.IndexByte(content, '[')
	if arrStart != -1 && (objStart == -1 || arrStart < objStart) {
		raw, ok := extractJSON(content, '[', ']')
		if !ok {
			return nil, fmt.Errorf("%w: no json found", ErrMalformedResponse)
		}
		if err := json.Unmarshal([]byte(raw), &entries); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
	} else {
		raw, ok := extractJSON(content, '{', '}')
		if !ok {
			return nil, fmt.Errorf("%w: no json found", ErrMalformedResponse)
		}
		var payload feedPayload
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		entries = payload.News
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: empty feed", ErrMalformedResponse)
	}

	res := make([]FeedEntry, 0, len(entries))
	for i, e := range entries {
		entry := FeedEntry{
			Headline:   strings.TrimSpace(e.Headline),
			Summary:    strings.TrimSpace(e.Summary),
			ViralScore: clampScore(e.ViralScore),
			Category:   domain.Category(strings.ToUpper(strings.TrimSpace(e.Category))),
			IsReal:     e.IsReal,
		}
		if entry.Headline == "" || entry.Summary == "" {
			return nil, fmt.Errorf("%w: item %d has empty headline or summary", ErrMalformedResponse, i)
		}
		if !entry.Category.Valid() {
			return nil, fmt.Errorf("%w: item %d has unknown category %q", ErrMalformedResponse, i, entry.Category)
		}
		res = append(res, entry)
	}
	return res, nil
}

// parseScript decodes and validates the script reply
func parseScript(content string) (ScriptResult, error) {
	raw, ok := extractJSON(content, '{', '}')
	if !ok {
		return ScriptResult{}, fmt.Errorf("%w: no json found", ErrMalformedResponse)
	}
	var payload scriptPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return ScriptResult{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	text := strings.TrimSpace(payload.TeleprompterText)
	if text == "" {
		return ScriptResult{}, fmt.Errorf("%w: empty teleprompter text", ErrMalformedResponse)
	}
	if len(payload.Scenes) == 0 {
		return ScriptResult{}, fmt.Errorf("%w: no scenes", ErrMalformedResponse)
	}
	if len(payload.Scenes) != expectedScenes {
		lgr.Printf("[WARN] model returned %d scenes instead of %d", len(payload.Scenes), expectedScenes)
	}

	scenes := make([]domain.ScriptScene, 0, len(payload.Scenes))
	for i, s := range payload.Scenes {
		if strings.TrimSpace(s.Prompt) == "" {
			return ScriptResult{}, fmt.Errorf("%w: scene %d has empty prompt", ErrMalformedResponse, i+1)
		}
		id := s.ID
		if id <= 0 {
			id = i + 1
		}
		scenes = append(scenes, domain.ScriptScene{
			ID:          id,
			Description: strings.TrimSpace(s.Description),
			Prompt:      strings.TrimSpace(s.Prompt),
			PromptPT:    strings.TrimSpace(s.PromptPT),
		})
	}

	hook := domain.HookStrength(strings.ToUpper(strings.TrimSpace(payload.ViralAnalysis.HookStrength)))
	if !hook.Valid() {
		return ScriptResult{}, fmt.Errorf("%w: unknown hook strength %q", ErrMalformedResponse, payload.ViralAnalysis.HookStrength)
	}
	retention := domain.Retention(strings.ToUpper(strings.TrimSpace(payload.ViralAnalysis.RetentionPrediction)))
	if !retention.Valid() {
		return ScriptResult{}, fmt.Errorf("%w: unknown retention %q", ErrMalformedResponse, payload.ViralAnalysis.RetentionPrediction)
	}

	return ScriptResult{
		TeleprompterText: text,
		Scenes:           scenes,
		WordCount:        int(math.Round(payload.WordCount)),
		ViralAnalysis: domain.ViralAnalysis{
			Score:               clampScore(payload.ViralAnalysis.Score),
			HookStrength:        hook,
			RetentionPrediction: retention,
			EmotionalTrigger:    strings.TrimSpace(payload.ViralAnalysis.EmotionalTrigger),
			KeyTrend:            strings.TrimSpace(payload.ViralAnalysis.KeyTrend),
		},
	}, nil
}

// clampScore rounds a model score to the nearest integer within 0..100
func clampScore(v float64) int {
	return int(math.Round(max(0, min(100, v))))
}
