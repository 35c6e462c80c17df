package inference

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider runs sentiment classification through the Gemini API with
// the same strict-JSON contract as the OpenAI adapter.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates the adapter.
func NewGeminiProvider(cfg Config) (*GeminiProvider, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Token))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-1.5-flash"
	}

	return &GeminiProvider{client: client, model: model}, nil
}

// Name returns the provider name.
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// Close releases the underlying gRPC connection.
func (p *GeminiProvider) Close() {
	if p.client != nil {
		_ = p.client.Close()
	}
}

// Infer asks the model for the probability pair.
func (p *GeminiProvider) Infer(ctx context.Context, text string) (Probs, error) {
	model := p.client.GenerativeModel(p.model)
	model.SetTemperature(0)

	prompt := fmt.Sprintf(`Classify the sentiment of this Arabic news text.
Respond with ONLY a JSON object {"positive": <0..1>, "negative": <0..1>} whose values sum to 1.

TEXT:
%s`, text)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return Probs{}, fmt.Errorf("gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return Probs{}, fmt.Errorf("no response from gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}

	return parseProbsJSON(sb.String())
}
