package llm

import (
	"fmt"
	"strings"

	"github.com/umputun/viralscope/pkg/domain"
)

// maxPromptArticles limits articles listed in the feed prompt
const maxPromptArticles = 30

const feedPersona = `Act as iG UZi, an elite News Director and viral content strategist for US Creators.`

const realNewsInstructions = `INSTRUCTIONS FOR "REAL" NEWS (PRIORITY: VIRAL & TRENDING):
1. ANALYZE the articles above and identify the top stories that are "EXPLODING" or "BOOMING" right now in the US.
2. Look for keywords: "Crisis", "Record", "War", "Scandal", "Breaking", "Emergency", "Trump", "Biden", "Market Crash".
3. DISCARD boring news. Only keep what will make a viewer stop scrolling on TikTok.
4. SELECT THE TOP 8 to 10 MOST IMPACTFUL STORIES.
5. REWRITE the headlines to be EXTREMELY CLICKBAITY but FACTUALLY BASED on the API data.
6. Set "isReal" to true.
7. Viral Score must be high (94-99) for these trending items.`

const noSourceInstructions = `(API FETCH FAILED - FALLBACK MODE)
Generate 10 "REAL" news items based on the ABSOLUTE LATEST high-stakes UNITED STATES topics (e.g. Current Election drama, Inflation Spikes, Global Conflict involving US).
Make them feel like "Breaking News" happening this second.
Set "isReal" to true.`

const fictionInstructions = `INSTRUCTIONS FOR "FICTION" NEWS (VIRAL SCENARIOS):
- Generate 6 additional "FICTION" items.
- These are "What If" scenarios or Conspiracies (e.g. "Yellowstone Eruption Imminent", "Dollar Replaced by Crypto", "Alien Signal Confirmed").
- These must be terrifying or awe-inspiring.
- Set "isReal" to false.
- Set Category to 'FICTION'.`

// buildFeedPrompt creates the feed prompt, listing articles when there are any
func buildFeedPrompt(articles []domain.RawArticle, lang domain.Language) string {
	var sb strings.Builder
	sb.WriteString(feedPersona)
	sb.WriteString("\n\n")

	if len(articles) > 0 {
		sb.WriteString("I have fetched the following REAL-TIME US NEWS from GNews and NewsAPI:\n\n")
		for i, a := range articles {
			if i >= maxPromptArticles {
				break
			}
			sb.WriteString(fmt.Sprintf("Article %d [%s]: %q\n", i+1, a.Source, a.Title))
			sb.WriteString(fmt.Sprintf("Date: %s\n", a.PublishedAt))
			sb.WriteString(fmt.Sprintf("Content: %s\n\n", a.Description))
		}
		sb.WriteString(realNewsInstructions)
	} else {
		sb.WriteString(noSourceInstructions)
	}
	sb.WriteString("\n\n")

	sb.WriteString(fictionInstructions)
	sb.WriteString("\n\n")

	sb.WriteString("GENERAL RULES:\n")
	if lang == domain.LangPT {
		sb.WriteString("- Output everything in Brazilian Portuguese (Headlines and Summaries).\n")
	} else {
		sb.WriteString("- Output everything in English.\n")
	}
	sb.WriteString("- Headlines must be short, punchy, and upper-case friendly.\n")
	sb.WriteString(`- Sort REAL news by "Viral Potential" (Most shocking first).` + "\n")
	sb.WriteString("- List all REAL items first, then all FICTION items.\n")
	sb.WriteString("- Total output: ~15 items (Mix of Real Trending + Fiction).\n")
	sb.WriteString(`- Respond with a JSON object containing a "news" array.`)
	return sb.String()
}

const scriptArtDirection = `2. GENERATE 20 ART PROMPTS (OPTIMIZED FOR IMAGE FX).
   - Create exactly 20 distinct image prompts.
   - "prompt": Must be in English (regardless of script language).
   - "prompt_pt": Provide a Portuguese translation of the prompt for the user.
   - STYLE: CASUAL PHOTOGRAPHY, REALISM, 8K, RAW FOOTAGE.
   - NEGATIVE CONSTRAINTS: NO Animation, NO Cinematic filters, NO 3D render style, NO Cartoons.
   - The images must look like they were taken by a witness in the USA with a high-end smartphone or a photojournalist.
   - Keywords to use: "Casual photo", "Amateur photography", "Candid shot", "News footage", "4k", "Raw style", "Authentic", "USA location".

3. PERFORM A VIRAL ANALYSIS.
   - Analyze the script you just wrote.
   - Score it from 0-100 on viral potential.
   - Evaluate Hook Strength and Retention.
   - Identify the Emotional Trigger.

OUTPUT JSON ONLY.`

// buildScriptPrompt creates the script prompt for a news item
func buildScriptPrompt(item domain.NewsItem, lang domain.Language) string {
	langInstruction := "WRITE THE SCRIPT IN ENGLISH. Keep prompts in English."
	openingInstruction := `MUST START WITH A PHRASE LIKE "BREAKING NEWS", "URGENT UPDATE", "JUST IN", OR "ALERT".`
	if lang == domain.LangPT {
		langInstruction = "WRITE THE SCRIPT IN BRAZILIAN PORTUGUESE. Keep prompts in English."
		openingInstruction = `MUST START WITH A PHRASE LIKE "BREAKING NEWS", "URGENTE", "ATENÇÃO", OR "PLANTÃO URGENTE".`
	}
	itemType := "FICTIONAL HYPOTHETICAL USA SCENARIO"
	if item.IsReal {
		itemType = "REAL US NEWS (TRENDING)"
	}

	var sb strings.Builder
	sb.WriteString("ACT AS A WORLD-CLASS DOCUMENTARY SCREENWRITER AND ART DIRECTOR.\n\n")
	sb.WriteString("SOURCE MATERIAL:\n")
	sb.WriteString(fmt.Sprintf("Headline: %q\n", item.Headline))
	sb.WriteString(fmt.Sprintf("Context: %q\n", item.Summary))
	sb.WriteString(fmt.Sprintf("Type: %s\n\n", itemType))

	sb.WriteString("TASK:\n")
	sb.WriteString("1. WRITE A VIRAL SCRIPT (1 Minute 20 Seconds).\n")
	sb.WriteString(fmt.Sprintf("   - %s\n", langInstruction))
	sb.WriteString(fmt.Sprintf("   - %s\n", openingInstruction))
	sb.WriteString("   - Minimum 220 words.\n")
	sb.WriteString("   - Style: Teleprompter (Continuous text, easy to read aloud).\n")
	sb.WriteString(`   - Tone: Urgent, Dramatic, Investigative, "The Truth They Hide".` + "\n")
	sb.WriteString("   - FOCUS: UNITED STATES OF AMERICA.\n")
	sb.WriteString("   - Structure:\n")
	sb.WriteString(`     * HOOK (0-5s): SHOCKING OPENER ("BREAKING NEWS...").` + "\n")
	sb.WriteString("     * CONTEXT (5-30s): What is happening right now in the US?\n")
	sb.WriteString("     * THE TWIST (30-60s): Why this matters to every American/World.\n")
	sb.WriteString("     * IMPACT (60-80s): Final warning or call to action.\n\n")
	sb.WriteString(scriptArtDirection)
	return sb.String()
}
