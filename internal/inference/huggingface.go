package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HuggingFaceProvider calls a hosted text-classification endpoint that
// returns a JSON array of {label, score} pairs, possibly nested one level.
type HuggingFaceProvider struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

type hfRequest struct {
	Inputs     string   `json:"inputs"`
	Parameters struct{} `json:"parameters"`
}

type hfScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type hfError struct {
	Error string `json:"error"`
}

// NewHuggingFaceProvider creates the adapter. The endpoint is required; the
// token is optional for public models.
func NewHuggingFaceProvider(cfg Config) (*HuggingFaceProvider, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("huggingface endpoint is required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &HuggingFaceProvider{
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		token:    cfg.Token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Name returns the provider name.
func (p *HuggingFaceProvider) Name() string {
	return "huggingface"
}

// Infer posts the text and maps the provider's label scheme to canonical
// probabilities.
func (p *HuggingFaceProvider) Infer(ctx context.Context, text string) (Probs, error) {
	body, err := json.Marshal(hfRequest{Inputs: text})
	if err != nil {
		return Probs{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return Probs{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return Probs{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Probs{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr hfError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error != "" {
			return Probs{}, fmt.Errorf("API error (%d): %s", resp.StatusCode, apiErr.Error)
		}
		return Probs{}, fmt.Errorf("API error (%d): %s", resp.StatusCode, string(respBody))
	}

	scores, err := parseScores(respBody)
	if err != nil {
		return Probs{}, err
	}

	return probsFromScores(scores)
}

// parseScores accepts both the flat `[{label,score}]` shape and the
// one-level-nested `[[{label,score}]]` shape some model hosts return.
func parseScores(data []byte) ([]hfScore, error) {
	var flat []hfScore
	if err := json.Unmarshal(data, &flat); err == nil && len(flat) > 0 && flat[0].Label != "" {
		return flat, nil
	}

	var nested [][]hfScore
	if err := json.Unmarshal(data, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		return nested[0], nil
	}

	return nil, fmt.Errorf("unexpected response shape: %s", truncate(string(data), 200))
}

// probsFromScores maps provider label schemes (LABEL_0/LABEL_1,
// NEGATIVE/POSITIVE and variants) to the canonical pair. When only one side
// is present, the other is its complement.
func probsFromScores(scores []hfScore) (Probs, error) {
	var positive, negative *float64

	for _, s := range scores {
		score := s.Score
		switch strings.ToUpper(s.Label) {
		case "LABEL_1", "POSITIVE", "POS":
			positive = &score
		case "LABEL_0", "NEGATIVE", "NEG":
			negative = &score
		}
	}

	switch {
	case positive != nil && negative != nil:
		return Probs{Positive: *positive, Negative: *negative}, nil
	case positive != nil:
		return Probs{Positive: *positive, Negative: 1 - *positive}, nil
	case negative != nil:
		return Probs{Positive: 1 - *negative, Negative: *negative}, nil
	default:
		return Probs{}, fmt.Errorf("no recognized sentiment labels in response")
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
