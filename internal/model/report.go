package model

import "fmt"

// ItemSummary is the per-article entry of a batch report. Failed items carry
// Error and Details instead of the analysis fields.
type ItemSummary struct {
	ArticleID     string         `json:"article_id"`
	Success       bool           `json:"success"`
	Sentiment     SentimentLabel `json:"sentiment,omitempty"`
	Emotion       string         `json:"emotion,omitempty"`
	Confidence    float64        `json:"confidence,omitempty"`
	QualityScore  int            `json:"quality_score,omitempty"`
	ContentSource ContentSource  `json:"content_source,omitempty"`
	Dialect       *DialectResult `json:"dialect,omitempty"`
	Error         string         `json:"error,omitempty"`
	Details       string         `json:"details,omitempty"`
}

// BatchReport aggregates one batch invocation. It is returned to the caller
// and never persisted; a single bad item never fails the batch as a whole.
type BatchReport struct {
	Processed int           `json:"processed"`
	Errors    int           `json:"errors"`
	Total     int           `json:"total"`
	Results   []ItemSummary `json:"results"`
	Message   string        `json:"message"`
}

// Summary returns the human-readable one-liner for the report.
func (r *BatchReport) Summary() string {
	return fmt.Sprintf("analyzed %d of %d articles", r.Processed, r.Total)
}
