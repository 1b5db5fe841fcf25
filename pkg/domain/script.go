package domain

import "strings"

// HookStrength grades the opening of a script
type HookStrength string

const (
	HookExtreme HookStrength = "EXTREME"
	HookHigh    HookStrength = "HIGH"
	HookMedium  HookStrength = "MEDIUM"
	HookLow     HookStrength = "LOW"
)

// Valid checks if hook strength is a known value
func (h HookStrength) Valid() bool {
	switch h {
	case HookExtreme, HookHigh, HookMedium, HookLow:
		return true
	}
	return false
}

// Retention predicts how much of the video viewers will watch
type Retention string

const (
	RetentionHigh   Retention = "HIGH"
	RetentionMedium Retention = "MEDIUM"
	RetentionLow    Retention = "LOW"
)

// Valid checks if retention is a known value
func (r Retention) Valid() bool {
	switch r {
	case RetentionHigh, RetentionMedium, RetentionLow:
		return true
	}
	return false
}

// ScriptScene is one image-generation prompt of a script
type ScriptScene struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
	PromptPT    string `json:"prompt_pt,omitempty"`
}

// ViralAnalysis scores the viral potential of a script
type ViralAnalysis struct {
	Score               int          `json:"score"`
	HookStrength        HookStrength `json:"hookStrength"`
	RetentionPrediction Retention    `json:"retentionPrediction"`
	EmotionalTrigger    string       `json:"emotionalTrigger"`
	KeyTrend            string       `json:"keyTrend"`
}

// ViralScript is a generated video script for one news item, never persisted
type ViralScript struct {
	NewsID            string        `json:"newsId"`
	Headline          string        `json:"headline"`
	TeleprompterText  string        `json:"teleprompterText"`
	Scenes            []ScriptScene `json:"scenes"`
	EstimatedDuration string        `json:"estimatedDuration"`
	WordCount         int           `json:"wordCount"`
	ViralAnalysis     ViralAnalysis `json:"viralAnalysis"`
}

// PromptsText joins english scene prompts separated by blank lines
func (s ViralScript) PromptsText() string {
	prompts := make([]string, 0, len(s.Scenes))
	for _, scene := range s.Scenes {
		prompts = append(prompts, scene.Prompt)
	}
	return strings.Join(prompts, "\n\n")
}
