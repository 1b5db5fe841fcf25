package studio

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/viralscope/pkg/domain"
	"github.com/umputun/viralscope/pkg/llm"
)

// estimatedDuration is the target length of every script
const estimatedDuration = "1:20"

// ErrNoCredential is matched by CredentialError
var ErrNoCredential = errors.New("llm credential is not configured")

// CredentialError reports a missing model credential with a message in the requested language
type CredentialError struct {
	Language domain.Language
}

func (e *CredentialError) Error() string {
	if e.Language == domain.LangPT {
		return "ERRO: Chave da API não configurada. Configure 'llm.api_key' (ou a variável GEMINI_API_KEY)."
	}
	return "ERROR: API Key missing. Please set 'llm.api_key' (or the GEMINI_API_KEY environment variable)."
}

// Is makes errors.Is(err, ErrNoCredential) work
func (e *CredentialError) Is(target error) bool {
	return target == ErrNoCredential
}

// SynthesizeScript generates a video script for a news item. Failures are returned as is, there is no fallback.
func (s *Service) SynthesizeScript(ctx context.Context, item domain.NewsItem, lang domain.Language) (domain.ViralScript, error) {
	if !s.gen.Configured() {
		return domain.ViralScript{}, &CredentialError{Language: lang}
	}

	res, err := s.gen.GenerateScript(ctx, llm.ScriptRequest{Item: item, Language: lang})
	if err != nil {
		return domain.ViralScript{}, fmt.Errorf("synthesize script for %s: %w", item.ID, err)
	}

	wordCount := res.WordCount
	if wordCount <= 0 {
		wordCount = len(strings.Fields(res.TeleprompterText))
	}
	lgr.Printf("[INFO] generated script for %q, %d words, %d scenes", item.Headline, wordCount, len(res.Scenes))

	return domain.ViralScript{
		NewsID:            item.ID,
		Headline:          item.Headline,
		TeleprompterText:  res.TeleprompterText,
		Scenes:            res.Scenes,
		EstimatedDuration: estimatedDuration,
		WordCount:         wordCount,
		ViralAnalysis:     res.ViralAnalysis,
	}, nil
}
