package model

import "time"

// ContentSource records which fallback tier produced the analyzed text.
type ContentSource string

const (
	SourceBody             ContentSource = "body"
	SourceTitleDescription ContentSource = "title_description"
	SourceTitleOnly        ContentSource = "title_only"
	SourceNone             ContentSource = "none"
)

// Article is one scraped item queued for analysis. The scraper owns the
// content fields; this subsystem only reads them and writes the analysis
// fields back after a successful run.
type Article struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Body        string    `json:"body,omitempty"`
	URL         string    `json:"url,omitempty"`
	Language    string    `json:"language"` // defaults to "ar"
	CreatedAt   time.Time `json:"created_at"`

	IsAnalyzed        bool     `json:"is_analyzed"`
	Sentiment         string   `json:"sentiment,omitempty"`
	Emotion           string   `json:"emotion,omitempty"`
	Dialect           bool     `json:"dialect"`
	DialectConfidence float64  `json:"dialect_confidence"`
	DialectIndicators []string `json:"dialect_indicators,omitempty"`
	EmotionalMarkers  []string `json:"emotional_markers,omitempty"`
}

// SentimentLabel is the normalized sentiment verdict.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// SentimentResult is the normalized output of one inference call.
// PositiveProb and NegativeProb always sum to 1 after normalization.
type SentimentResult struct {
	Label        SentimentLabel `json:"label"`
	Confidence   float64        `json:"confidence"`
	PositiveProb float64        `json:"positive_prob"`
	NegativeProb float64        `json:"negative_prob"`
}

// DialectResult is the lexicon-weighted dialect verdict for one text.
// IsMatch holds exactly when Confidence exceeds the detector threshold.
type DialectResult struct {
	IsMatch          bool     `json:"is_match"`
	Confidence       float64  `json:"confidence"` // 0-100
	Indicators       []string `json:"indicators,omitempty"`
	EmotionalMarkers []string `json:"emotional_markers,omitempty"`
}

// AnalysisRecord is the persisted result of analyzing one article.
// Re-running an article overwrites its record rather than duplicating it.
type AnalysisRecord struct {
	ID               string          `json:"id"`
	ArticleID        string          `json:"article_id"`
	ProjectID        string          `json:"project_id"`
	UserID           string          `json:"user_id"`
	Text             string          `json:"text"`
	ContentSource    ContentSource   `json:"content_source"`
	QualityScore     int             `json:"quality_score"`
	Sentiment        SentimentResult `json:"sentiment"`
	Dialect          DialectResult   `json:"dialect"`
	Emotion          string          `json:"emotion"`
	DetectedLanguage string          `json:"detected_language,omitempty"`
	AnalyzedAt       time.Time       `json:"analyzed_at"`
}
