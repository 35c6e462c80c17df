package content

import (
	"strings"
	"testing"

	"github.com/mashaer-ai/mashaer/internal/lexicon"
)

func newTestScorer() *Scorer {
	return NewScorer(lexicon.DefaultLevantine())
}

func TestScoreRejectsTooShort(t *testing.T) {
	scorer := newTestScorer()

	for _, text := range []string{"", "  ", "اب", "a"} {
		a := scorer.Score(text, true)
		if a.Valid {
			t.Errorf("Score(%q) = valid, want invalid", text)
		}
		if a.Reason != "too short" {
			t.Errorf("Score(%q) reason = %q, want %q", text, a.Reason, "too short")
		}
	}
}

func TestScoreRejectsNonArabic(t *testing.T) {
	scorer := newTestScorer()

	a := scorer.Score("Breaking news from the capital city today.", true)
	if a.Valid {
		t.Fatal("expected English text to be invalid")
	}
	if a.Reason != "non-arabic" {
		t.Errorf("reason = %q, want %q", a.Reason, "non-arabic")
	}
}

func TestScoreBlockedPrimaryContent(t *testing.T) {
	scorer := newTestScorer()

	text := "اشترك الآن للحصول على المحتوى الكامل من الموقع الرسمي للصحيفة اليومية"

	a := scorer.Score(text, true)
	if a.Valid {
		t.Fatal("expected paywalled primary text to be invalid")
	}
	if a.Reason != "blocked main content" {
		t.Errorf("reason = %q, want %q", a.Reason, "blocked main content")
	}

	// Placeholder patterns only apply to primary text. The same string as
	// fallback should be scored on its merits.
	b := scorer.Score(text, false)
	if b.Reason == "blocked main content" {
		t.Error("fallback text should not hit the placeholder check")
	}
}

func TestScoreBlockedIsCaseInsensitive(t *testing.T) {
	scorer := newTestScorer()

	a := scorer.Score("هذا المقال متاح للمشتركين فقط. Subscribe To Read the full story.", true)
	if a.Reason != "blocked main content" {
		t.Errorf("reason = %q, want %q", a.Reason, "blocked main content")
	}
}

func TestScoreAcceptsRichArabicBody(t *testing.T) {
	scorer := newTestScorer()

	body := strings.Repeat("هذا خبر مهم من العاصمة. ", 60)

	a := scorer.Score(body, true)
	if !a.Valid {
		t.Fatalf("expected long Arabic body to be valid, got reason %q score %d", a.Reason, a.Score)
	}
	if a.Score < 70 || a.Bucket != BucketGood {
		t.Errorf("score = %d bucket = %q, want >= 70 and %q", a.Score, a.Bucket, BucketGood)
	}
}

func TestScoreMonotonicInLength(t *testing.T) {
	scorer := newTestScorer()

	// Repetition keeps the Arabic density constant, so more words and more
	// sentences must never lower the score.
	prev := -1
	for _, n := range []int{1, 5, 20, 60} {
		a := scorer.Score(strings.Repeat("هذا خبر مهم من العاصمة. ", n), true)
		if a.Score < prev {
			t.Errorf("score dropped from %d to %d at %d repetitions", prev, a.Score, n)
		}
		prev = a.Score
	}
}

func TestScoreFallbackThresholdIsLower(t *testing.T) {
	scorer := newTestScorer()

	text := "خبر جديد من العاصمة"

	fallback := scorer.Score(text, false)
	if !fallback.Valid {
		t.Fatalf("expected short fallback text to clear the fallback floor, score %d", fallback.Score)
	}
	if fallback.Score < MinFallbackScore {
		t.Errorf("score = %d, want >= %d", fallback.Score, MinFallbackScore)
	}
}

func TestScoreClampsAt100(t *testing.T) {
	scorer := newTestScorer()

	body := strings.Repeat("قال المسؤول هذا القرار مهم في كل وقت بعد هذه المرحلة. ", 100)

	a := scorer.Score(body, true)
	if a.Score > 100 {
		t.Errorf("score = %d, want <= 100", a.Score)
	}
}

func TestBucketBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  Bucket
	}{
		{0, BucketShort},
		{39, BucketShort},
		{40, BucketFair},
		{69, BucketFair},
		{70, BucketGood},
		{100, BucketGood},
	}

	for _, tt := range tests {
		if got := bucketFor(tt.score); got != tt.want {
			t.Errorf("bucketFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
