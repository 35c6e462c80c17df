package content

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mashaer-ai/mashaer/internal/lexicon"
)

// Quality buckets, coarse labels for the additive score.
type Bucket string

const (
	BucketNone  Bucket = "none"
	BucketShort Bucket = "short"
	BucketFair  Bucket = "fair"
	BucketGood  Bucket = "good"
)

// Passing floors. Fallback content (titles, descriptions) is inherently
// shorter, so it gets a lower bar.
const (
	MinPrimaryScore  = 20
	MinFallbackScore = 15

	minTextRunes = 3
)

// Assessment is the scorer's verdict for one text blob.
type Assessment struct {
	Valid  bool
	Reason string
	Score  int // 0-100
	Bucket Bucket
}

// Scorer rates a text blob for analysis-worthiness against the lexicon's
// placeholder patterns and function-word table.
type Scorer struct {
	placeholders  []string
	functionWords []string
}

// NewScorer creates a scorer backed by the given tables.
func NewScorer(tables lexicon.Tables) *Scorer {
	lowered := make([]string, len(tables.PlaceholderPatterns))
	for i, p := range tables.PlaceholderPatterns {
		lowered[i] = strings.ToLower(p)
	}
	return &Scorer{
		placeholders:  lowered,
		functionWords: tables.FunctionWords,
	}
}

// Score rates text for analysis-worthiness. A "blocked main content" verdict
// on primary text signals the caller to fall back, not a hard failure.
func (s *Scorer) Score(text string, primary bool) Assessment {
	trimmed := strings.TrimSpace(text)

	if utf8.RuneCountInString(trimmed) < minTextRunes {
		return Assessment{Reason: "too short", Bucket: BucketNone}
	}

	if primary && s.isBlocked(trimmed) {
		return Assessment{Reason: "blocked main content", Bucket: BucketNone}
	}

	arabicCount, totalCount := countArabic(trimmed)
	if arabicCount == 0 {
		return Assessment{Reason: "non-arabic", Bucket: BucketNone}
	}

	score := wordCountPoints(len(strings.Fields(trimmed)), primary)
	score += sentencePoints(trimmed)
	score += densityPoints(arabicCount, totalCount)
	score += s.functionWordPoints(trimmed)
	if score > 100 {
		score = 100
	}

	threshold := MinPrimaryScore
	if !primary {
		threshold = MinFallbackScore
	}

	a := Assessment{
		Valid:  score >= threshold,
		Score:  score,
		Bucket: bucketFor(score),
	}
	if !a.Valid {
		a.Reason = "below quality threshold"
	}
	return a
}

func (s *Scorer) isBlocked(text string) bool {
	lowered := strings.ToLower(text)
	for _, p := range s.placeholders {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}

// wordCountPoints contributes 5-40 points. Fallback thresholds are roughly
// half of primary since titles and descriptions are inherently shorter.
func wordCountPoints(words int, primary bool) int {
	thresholds := []int{300, 150, 50, 10}
	if !primary {
		thresholds = []int{150, 75, 25, 5}
	}

	switch {
	case words >= thresholds[0]:
		return 40
	case words >= thresholds[1]:
		return 30
	case words >= thresholds[2]:
		return 20
	case words >= thresholds[3]:
		return 10
	default:
		return 5
	}
}

// sentencePoints contributes up to 20 points, splitting on the Latin and
// Arabic sentence terminators.
func sentencePoints(text string) int {
	count := 0
	for _, part := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '؟'
	}) {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}

	points := count * 5
	if points > 20 {
		points = 20
	}
	return points
}

// densityPoints contributes up to 25 points from the share of Arabic runes.
func densityPoints(arabicCount, totalCount int) int {
	if totalCount == 0 {
		return 0
	}
	points := int(float64(arabicCount) / float64(totalCount) * 25)
	if points > 25 {
		points = 25
	}
	return points
}

// functionWordPoints contributes up to 15 points, 3 per common Arabic
// function word present.
func (s *Scorer) functionWordPoints(text string) int {
	points := 0
	for _, w := range s.functionWords {
		if strings.Contains(text, w) {
			points += 3
			if points >= 15 {
				return 15
			}
		}
	}
	return points
}

func bucketFor(score int) Bucket {
	switch {
	case score >= 70:
		return BucketGood
	case score >= 40:
		return BucketFair
	default:
		return BucketShort
	}
}

func countArabic(text string) (arabic, total int) {
	for _, r := range text {
		total++
		if unicode.Is(unicode.Arabic, r) {
			arabic++
		}
	}
	return arabic, total
}
