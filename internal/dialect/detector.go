// Package dialect scores text against weighted term tables to decide whether
// it reads as a regional dialect rather than Modern Standard Arabic.
package dialect

import (
	"strings"

	"github.com/mashaer-ai/mashaer/internal/lexicon"
	"github.com/mashaer-ai/mashaer/internal/model"
)

// MatchThreshold is the confidence above which a text counts as a dialect
// match (strict >). Calibrated against the production corpus; do not derive.
const MatchThreshold = 20.0

// maxIndicators caps the reported indicator list for display upstream.
const maxIndicators = 12

// Detector scans text against the injected lexicon tables.
type Detector struct {
	tables    lexicon.Tables
	threshold float64
}

// New creates a detector with the default match threshold.
func New(tables lexicon.Tables) *Detector {
	return NewWithThreshold(tables, MatchThreshold)
}

// NewWithThreshold overrides the match threshold, mostly for tests.
func NewWithThreshold(tables lexicon.Tables, threshold float64) *Detector {
	return &Detector{tables: tables, threshold: threshold}
}

// Detect scores text and returns the verdict with the matched terms.
// Confidence is the max of a word-density score and an absolute-match score,
// plus a bonus per emotional marker, clamped to [0,100].
func (d *Detector) Detect(text string) model.DialectResult {
	lowered := strings.ToLower(text)

	var points float64
	var indicators []string
	for _, term := range d.tables.Indicators {
		if strings.Contains(lowered, strings.ToLower(term.Term)) {
			points += term.Weight
			indicators = appendUnique(indicators, term.Term)
		}
	}

	var markers []string
	for _, term := range d.tables.Markers {
		if strings.Contains(lowered, strings.ToLower(term.Term)) {
			points += term.Weight
			markers = appendUnique(markers, term.Term)
		}
	}

	words := len(strings.Fields(text))
	denom := float64(words) * 0.15
	if denom < 1 {
		denom = 1
	}
	wordDensityScore := points / denom * 100

	absoluteMatchScore := float64(len(indicators)) / 3 * 100
	if absoluteMatchScore > 100 {
		absoluteMatchScore = 100
	}

	confidence := wordDensityScore
	if absoluteMatchScore > confidence {
		confidence = absoluteMatchScore
	}
	confidence += 10 * float64(len(markers))

	if confidence > 100 {
		confidence = 100
	}
	if confidence < 0 {
		confidence = 0
	}

	if len(indicators) > maxIndicators {
		indicators = indicators[:maxIndicators]
	}

	return model.DialectResult{
		IsMatch:          confidence > d.threshold,
		Confidence:       confidence,
		Indicators:       indicators,
		EmotionalMarkers: markers,
	}
}

func appendUnique(list []string, term string) []string {
	for _, existing := range list {
		if existing == term {
			return list
		}
	}
	return append(list, term)
}
