// Package llm talks to an OpenAI-compatible chat completion API to generate the news feed
// and video scripts. Responses are constrained with JSON schemas reflected from the response
// types and validated before they leave the package.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/sashabaranov/go-openai"

	"github.com/umputun/viralscope/pkg/config"
	"github.com/umputun/viralscope/pkg/domain"
	"github.com/umputun/viralscope/pkg/metrics"
)

// ErrMalformedResponse is returned when the model reply doesn't match the expected shape
var ErrMalformedResponse = errors.New("malformed response")

// Client generates content with a chat completion model
type Client struct {
	client *openai.Client
	config config.LLMConfig
}

// FeedRequest is the input for feed generation, empty Articles switches to the no-source prompt
type FeedRequest struct {
	Articles []domain.RawArticle
	Language domain.Language
}

// ScriptRequest is the input for script generation
type ScriptRequest struct {
	Item     domain.NewsItem
	Language domain.Language
}

// NewClient creates a new model client
func NewClient(cfg config.LLMConfig) *Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

// Configured reports whether a credential is set
func (c *Client) Configured() bool {
	return c.config.APIKey != ""
}

// GenerateFeed asks the model for a list of viral news entries
func (c *Client) GenerateFeed(ctx context.Context, req FeedRequest) ([]FeedEntry, error) {
	prompt := buildFeedPrompt(req.Articles, req.Language)
	lgr.Printf("[DEBUG] generate feed for %s with %d articles", req.Language, len(req.Articles))

	content, err := c.complete(ctx, prompt, c.config.FeedTemperature, feedSchema)
	if err != nil {
		return nil, fmt.Errorf("generate feed: %w", err)
	}

	entries, err := parseFeed(content)
	if err != nil {
		return nil, fmt.Errorf("generate feed: %w", err)
	}
	return entries, nil
}

// GenerateScript asks the model for a video script about a single news item
func (c *Client) GenerateScript(ctx context.Context, req ScriptRequest) (ScriptResult, error) {
	prompt := buildScriptPrompt(req.Item, req.Language)
	lgr.Printf("[DEBUG] generate script for %q in %s", req.Item.Headline, req.Language)

	content, err := c.complete(ctx, prompt, c.config.ScriptTemperature, scriptSchema)
	if err != nil {
		return ScriptResult{}, fmt.Errorf("generate script: %w", err)
	}

	res, err := parseScript(content)
	if err != nil {
		return ScriptResult{}, fmt.Errorf("generate script: %w", err)
	}
	return res, nil
}

// complete sends a single prompt and returns the reply text
func (c *Client) complete(ctx context.Context, prompt string, temperature float64, schema responseSchema) (content string, err error) {
	if !c.Configured() {
		return "", errors.New("llm api key is not configured")
	}

	start := time.Now()
	defer func() { metrics.RecordModelCall(schema.name, err, time.Since(start)) }()

	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       c.config.Model,
		Temperature: float32(temperature),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:        schema.name,
				Description: schema.description,
				Schema:      schema.schema,
				Strict:      c.strict(),
			},
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response from llm")
	}
	content = resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("%w: empty content, finish reason %q", ErrMalformedResponse, resp.Choices[0].FinishReason)
	}
	return content, nil
}

func (c *Client) strict() bool {
	return c.config.StrictSchema == nil || *c.config.StrictSchema
}
