package inference

import (
	"math"
	"testing"

	"github.com/mashaer-ai/mashaer/internal/model"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		positive  float64
		negative  float64
		wantLabel model.SentimentLabel
		wantScore float64
		wantPos   float64
	}{
		{"clear positive", 0.70, 0.30, model.SentimentPositive, 0.70, 0.70},
		{"clear negative", 0.20, 0.80, model.SentimentNegative, 0.80, 0.20},
		{"near tie is neutral", 0.52, 0.48, model.SentimentNeutral, 0.5, 0.52},
		{"exact tie is neutral", 0.5, 0.5, model.SentimentNeutral, 0.5, 0.5},
		{"degenerate zero pair", 0, 0, model.SentimentNeutral, 0.5, 0.5},
		{"unnormalized input", 2, 6, model.SentimentNegative, 0.75, 0.25},
		{"negative input clamped", -1, 0.5, model.SentimentNegative, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Normalize(tt.positive, tt.negative)

			if r.Label != tt.wantLabel {
				t.Errorf("label = %q, want %q", r.Label, tt.wantLabel)
			}
			if math.Abs(r.Confidence-tt.wantScore) > 1e-9 {
				t.Errorf("confidence = %v, want %v", r.Confidence, tt.wantScore)
			}
			if math.Abs(r.PositiveProb-tt.wantPos) > 1e-9 {
				t.Errorf("positive prob = %v, want %v", r.PositiveProb, tt.wantPos)
			}
			if math.Abs(r.PositiveProb+r.NegativeProb-1) > 1e-9 {
				t.Errorf("probs sum to %v, want 1", r.PositiveProb+r.NegativeProb)
			}
		})
	}
}

func TestNormalizeNeutralBandBoundary(t *testing.T) {
	outside := Normalize(0.56, 0.44)
	if outside.Label != model.SentimentPositive {
		t.Errorf("diff above band: label = %q, want %q", outside.Label, model.SentimentPositive)
	}

	inside := Normalize(0.54, 0.46)
	if inside.Label != model.SentimentNeutral {
		t.Errorf("diff below band: label = %q, want %q", inside.Label, model.SentimentNeutral)
	}
}

func TestEmotion(t *testing.T) {
	tests := []struct {
		label   model.SentimentLabel
		markers bool
		want    string
	}{
		{model.SentimentPositive, true, "سعادة"},
		{model.SentimentPositive, false, "تفاؤل"},
		{model.SentimentNegative, true, "غضب"},
		{model.SentimentNegative, false, "استياء"},
		{model.SentimentNeutral, true, "محايد"},
		{model.SentimentNeutral, false, "محايد"},
	}

	for _, tt := range tests {
		if got := Emotion(tt.label, tt.markers); got != tt.want {
			t.Errorf("Emotion(%q, %v) = %q, want %q", tt.label, tt.markers, got, tt.want)
		}
	}
}
