package lexicon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WeightedTerm is one lexicon entry. Weight is the number of points a
// substring match contributes to the raw dialect score.
type WeightedTerm struct {
	Term   string  `yaml:"term"`
	Weight float64 `yaml:"weight"`
}

// Tables holds the versioned term tables the dialect detector and content
// scorer run against. Pure data; all matching behavior lives in the callers.
type Tables struct {
	Version string `yaml:"version"`

	// Indicators are dialect indicator terms. Most carry weight 1; a
	// high-signal subset carries weight 2.
	Indicators []WeightedTerm `yaml:"indicators"`

	// Markers are emotional marker expressions, weight 1.5 each in the
	// production tables.
	Markers []WeightedTerm `yaml:"markers"`

	// FunctionWords are common MSA function words used by the content
	// quality scorer, not by the dialect detector.
	FunctionWords []string `yaml:"function_words"`

	// PlaceholderPatterns are case-insensitive substrings that mark a
	// paywalled or blocked article body.
	PlaceholderPatterns []string `yaml:"placeholder_patterns"`
}

// Load reads a table file so deployments and tests can substitute their own
// lexicon instead of the built-in one.
func Load(path string) (Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("read lexicon: %w", err)
	}

	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tables{}, fmt.Errorf("parse lexicon: %w", err)
	}

	if len(t.Indicators) == 0 {
		return Tables{}, fmt.Errorf("lexicon %s has no indicator terms", path)
	}

	if len(t.PlaceholderPatterns) == 0 {
		t.PlaceholderPatterns = DefaultLevantine().PlaceholderPatterns
	}
	if len(t.FunctionWords) == 0 {
		t.FunctionWords = DefaultLevantine().FunctionWords
	}

	return t, nil
}
