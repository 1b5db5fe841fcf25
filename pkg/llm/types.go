package llm

import (
	"github.com/umputun/viralscope/pkg/domain"
)

// FeedEntry is a single generated news entry before decoration
type FeedEntry struct {
	Headline   string
	Summary    string
	ViralScore int
	Category   domain.Category
	IsReal     bool
}

// ScriptResult is a validated script reply
type ScriptResult struct {
	TeleprompterText string
	Scenes           []domain.ScriptScene
	WordCount        int
	ViralAnalysis    domain.ViralAnalysis
}

// feedPayload is the wire shape of the feed reply
type feedPayload struct {
	News []feedEntryPayload `json:"news"`
}

// feedEntryPayload is the wire shape of a feed entry, scores may come back fractional
type feedEntryPayload struct {
	Headline   string  `json:"headline" jsonschema:"description=Shocking or urgent headline"`
	Summary    string  `json:"summary" jsonschema:"description=Two sentence context"`
	ViralScore float64 `json:"viralScore" jsonschema:"minimum=0,maximum=100,description=Score from 80 to 99"`
	Category   string  `json:"category" jsonschema:"enum=POLITICS,enum=ECONOMY,enum=DISASTER,enum=FICTION,enum=TECH"`
	IsReal     bool    `json:"isReal" jsonschema:"description=True for US news and false for hypothetical scenarios"`
}

// scriptPayload is the wire shape of the script reply
type scriptPayload struct {
	TeleprompterText string          `json:"teleprompterText" jsonschema:"description=Continuous script of 250+ words formatted for reading aloud with no scene markers"`
	Scenes           []scenePayload  `json:"scenes" jsonschema:"minItems=20,maxItems=20,description=Exactly 20 image prompts following the flow of the script"`
	ViralAnalysis    analysisPayload `json:"viralAnalysis" jsonschema:"description=Analysis of the viral potential of the script"`
	WordCount        float64         `json:"wordCount"`
}

type scenePayload struct {
	ID          int    `json:"id"`
	Description string `json:"description" jsonschema:"description=Brief visual description for the editor"`
	Prompt      string `json:"prompt" jsonschema_description:"High fidelity English prompt for ImageFX. Style: casual photo, realism, 8K. NO ANIMATION. NO CINEMATIC."`
	PromptPT    string `json:"prompt_pt" jsonschema:"description=Portuguese translation of the prompt for reference"`
}

type analysisPayload struct {
	Score               float64 `json:"score" jsonschema:"minimum=0,maximum=100,description=Viral potential score based on hook and topic"`
	HookStrength        string  `json:"hookStrength" jsonschema:"enum=EXTREME,enum=HIGH,enum=MEDIUM,enum=LOW"`
	RetentionPrediction string  `json:"retentionPrediction" jsonschema:"enum=HIGH,enum=MEDIUM,enum=LOW"`
	EmotionalTrigger    string  `json:"emotionalTrigger" jsonschema_description:"Primary emotion (e.g. Fear, Outrage, Hope, Curiosity)"`
	KeyTrend            string  `json:"keyTrend" jsonschema:"description=The main trend this piggybacks on"`
}
