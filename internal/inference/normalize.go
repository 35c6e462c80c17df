package inference

import (
	"math"

	"github.com/mashaer-ai/mashaer/internal/model"
)

// NeutralBand is the probability-difference dead-zone. Pairs closer than
// this report neutral instead of committing to a side on near-tied scores.
// Calibrated against the production corpus; do not derive.
const NeutralBand = 0.10

// Normalize renormalizes a raw probability pair to sum to 1 and applies the
// tie-margin rule to pick the final label. A degenerate pair (both zero or
// negative) normalizes to an even split.
func Normalize(positive, negative float64) model.SentimentResult {
	if positive < 0 {
		positive = 0
	}
	if negative < 0 {
		negative = 0
	}

	sum := positive + negative
	if sum <= 0 {
		positive, negative = 0.5, 0.5
	} else {
		positive /= sum
		negative /= sum
	}

	result := model.SentimentResult{
		PositiveProb: positive,
		NegativeProb: negative,
	}

	if math.Abs(positive-negative) < NeutralBand {
		result.Label = model.SentimentNeutral
		result.Confidence = 0.5
		return result
	}

	if positive > negative {
		result.Label = model.SentimentPositive
		result.Confidence = positive
	} else {
		result.Label = model.SentimentNegative
		result.Confidence = negative
	}
	return result
}

// Emotion maps a sentiment label to the display emotion. Texts whose
// emotional markers matched get the stronger variant.
func Emotion(label model.SentimentLabel, markersMatched bool) string {
	switch label {
	case model.SentimentPositive:
		if markersMatched {
			return "سعادة"
		}
		return "تفاؤل"
	case model.SentimentNegative:
		if markersMatched {
			return "غضب"
		}
		return "استياء"
	default:
		return "محايد"
	}
}
