package llm

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/viralscope/pkg/domain"
)

func TestBuildFeedPrompt(t *testing.T) {
	t.Run("with articles", func(t *testing.T) {
		articles := make([]domain.RawArticle, 35)
		for i := range articles {
			articles[i] = domain.RawArticle{Source: "CNN", Title: fmt.Sprintf("title %d", i+1),
				Description: "desc", PublishedAt: "2026-10-17T08:00:00Z"}
		}
		prompt := buildFeedPrompt(articles, domain.LangEN)
		assert.Contains(t, prompt, `Article 1 [CNN]: "title 1"`)
		assert.Contains(t, prompt, "Date: 2026-10-17T08:00:00Z")
		assert.Contains(t, prompt, "Content: desc")
		assert.Contains(t, prompt, `Article 30 [CNN]: "title 30"`)
		assert.NotContains(t, prompt, "Article 31")
		assert.Contains(t, prompt, "SELECT THE TOP 8 to 10 MOST IMPACTFUL STORIES")
		assert.NotContains(t, prompt, "API FETCH FAILED")
		assert.Contains(t, prompt, "Generate 6 additional \"FICTION\" items")
		assert.Contains(t, prompt, "Output everything in English.")
	})

	t.Run("without articles", func(t *testing.T) {
		prompt := buildFeedPrompt(nil, domain.LangPT)
		assert.Contains(t, prompt, "API FETCH FAILED - FALLBACK MODE")
		assert.Contains(t, prompt, `Generate 10 "REAL" news items`)
		assert.NotContains(t, prompt, "Article 1")
		assert.Contains(t, prompt, "Generate 6 additional \"FICTION\" items")
		assert.Contains(t, prompt, "Brazilian Portuguese")
	})
}

func TestBuildScriptPrompt(t *testing.T) {
	item := domain.NewsItem{Headline: "INVASÃO SILENCIOSA", Summary: "Marinha detecta estrutura", IsReal: false,
		Category: domain.CategoryFiction}

	pt := buildScriptPrompt(item, domain.LangPT)
	assert.Contains(t, pt, `Headline: "INVASÃO SILENCIOSA"`)
	assert.Contains(t, pt, `Context: "Marinha detecta estrutura"`)
	assert.Contains(t, pt, "FICTIONAL HYPOTHETICAL USA SCENARIO")
	assert.Contains(t, pt, "WRITE THE SCRIPT IN BRAZILIAN PORTUGUESE")
	assert.Contains(t, pt, "PLANTÃO URGENTE")
	assert.Contains(t, pt, "Minimum 220 words")
	assert.Contains(t, pt, "Create exactly 20 distinct image prompts")
	assert.Contains(t, pt, "NO Animation, NO Cinematic filters, NO 3D render style, NO Cartoons")

	item.IsReal = true
	en := buildScriptPrompt(item, domain.LangEN)
	assert.Contains(t, en, "REAL US NEWS (TRENDING)")
	assert.Contains(t, en, "WRITE THE SCRIPT IN ENGLISH")
	assert.Contains(t, en, `"JUST IN"`)
	assert.False(t, strings.Contains(en, "PLANTÃO"))
}
