// Package llm generates optional natural-language briefings over the top of
// a priority report using any OpenAI-compatible endpoint.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"priofeed/pkg/domain"
)

// Digest produces short briefings for ranked item sets
type Digest struct {
	client    *openai.Client
	config    Config
	systemMsg string
}

// Config holds LLM configuration for briefing generation
type Config struct {
	Endpoint     string
	APIKey       string
	Model        string
	Temperature  float64
	MaxTokens    int
	Timeout      time.Duration
	SystemPrompt string
}

// default system prompt for briefing generation
const defaultSystemPrompt = `You are an assistant that writes a short morning briefing from a ranked list of work items.
Summarize in 2-4 sentences what needs attention first and why. Mention at most three items by name.
Write directly about the work itself. NEVER use phrases like "The list contains" or "These items show".
Keep it under 80 words, no bullet points.`

// NewDigest creates a briefing generator
func NewDigest(cfg Config) *Digest {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 200
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.3
	}

	return &Digest{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

// Briefing generates a short natural-language summary of the top items
func (d *Digest) Briefing(ctx context.Context, items []domain.ScoredItem) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("no items to summarize")
	}

	req := openai.ChatCompletionRequest{
		Model:       d.config.Model,
		Temperature: float32(d.config.Temperature),
		MaxTokens:   d.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: d.systemMsg,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: d.buildPrompt(items),
			},
		},
	}

	resp, err := d.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// buildPrompt renders the item list for the LLM
func (d *Digest) buildPrompt(items []domain.ScoredItem) string {
	var sb strings.Builder
	sb.WriteString("Write a briefing for these priority items:\n\n")
	for i, item := range items {
		sb.WriteString(fmt.Sprintf("%d. [%s, score %d, %s] %s\n",
			i+1, item.Source, item.PriorityScore, item.UrgencyLevel, item.Title))
		if item.Description != "" {
			sb.WriteString(fmt.Sprintf("   %s\n", item.Description))
		}
		if reasoning := item.Metadata["reasoning"]; reasoning != "" {
			sb.WriteString(fmt.Sprintf("   Why it ranks here: %s\n", reasoning))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
