package inference

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider runs sentiment classification through an OpenAI-compatible
// chat endpoint, asking for a strict JSON probability pair.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

const openaiSystemPrompt = `You are a sentiment classifier for Arabic news text.
Respond with ONLY a JSON object of the form {"positive": <0..1>, "negative": <0..1>}.
The two values must sum to 1. No prose, no markdown.`

// NewOpenAIProvider creates the adapter.
func NewOpenAIProvider(cfg Config) (*OpenAIProvider, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.Token)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}, nil
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Infer asks the model for the probability pair.
func (p *OpenAIProvider) Infer(ctx context.Context, text string) (Probs, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: openaiSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		MaxTokens:   64,
		Temperature: 0,
	})
	if err != nil {
		return Probs{}, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return Probs{}, fmt.Errorf("no response from openai")
	}

	return parseProbsJSON(resp.Choices[0].Message.Content)
}

// parseProbsJSON decodes a {"positive":x,"negative":y} payload, tolerating
// markdown code fences around it.
func parseProbsJSON(raw string) (Probs, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var out struct {
		Positive float64 `json:"positive"`
		Negative float64 `json:"negative"`
	}
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return Probs{}, fmt.Errorf("parse sentiment response %q: %w", truncate(raw, 120), err)
	}

	if out.Positive == 0 && out.Negative == 0 {
		return Probs{}, fmt.Errorf("sentiment response carried no probabilities")
	}

	return Probs{Positive: out.Positive, Negative: out.Negative}, nil
}
