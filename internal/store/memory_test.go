package store

import (
	"context"
	"testing"
	"time"

	"github.com/mashaer-ai/mashaer/internal/model"
)

func seedArticles(s *Memory) {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	s.Seed(
		model.Article{ID: "a1", ProjectID: "p1", UserID: "u1", Title: "خبر أول", CreatedAt: base},
		model.Article{ID: "a2", ProjectID: "p1", UserID: "u1", Title: "خبر ثان", CreatedAt: base.Add(time.Hour)},
		model.Article{ID: "a3", ProjectID: "p1", UserID: "u1", Title: "خبر ثالث", CreatedAt: base.Add(2 * time.Hour), IsAnalyzed: true},
		model.Article{ID: "b1", ProjectID: "p2", UserID: "u1", Title: "مشروع آخر", CreatedAt: base},
	)
}

func TestMemoryListUnanalyzed(t *testing.T) {
	s := NewMemory()
	seedArticles(s)

	articles, err := s.ListUnanalyzed(context.Background(), "p1", "u1", 10)
	if err != nil {
		t.Fatalf("ListUnanalyzed: %v", err)
	}

	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2", len(articles))
	}
	if articles[0].ID != "a1" || articles[1].ID != "a2" {
		t.Errorf("order = %s, %s, want a1, a2", articles[0].ID, articles[1].ID)
	}
	for _, a := range articles {
		if a.Language != "ar" {
			t.Errorf("article %s language = %q, want default ar", a.ID, a.Language)
		}
	}
}

func TestMemoryListUnanalyzedLimit(t *testing.T) {
	s := NewMemory()
	seedArticles(s)

	articles, err := s.ListUnanalyzed(context.Background(), "p1", "u1", 1)
	if err != nil {
		t.Fatalf("ListUnanalyzed: %v", err)
	}
	if len(articles) != 1 || articles[0].ID != "a1" {
		t.Errorf("got %v, want just the oldest article", articles)
	}
}

func TestMemoryGetByIDsScopedToOwner(t *testing.T) {
	s := NewMemory()
	seedArticles(s)

	// b1 belongs to another project and missing ids are skipped, not errors.
	articles, err := s.GetByIDs(context.Background(), "p1", "u1", []string{"a2", "b1", "missing", "a1"})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2", len(articles))
	}
	if articles[0].ID != "a1" || articles[1].ID != "a2" {
		t.Errorf("order = %s, %s, want a1, a2", articles[0].ID, articles[1].ID)
	}
}

func TestMemorySaveAnalysisUpserts(t *testing.T) {
	s := NewMemory()
	seedArticles(s)

	rec := model.AnalysisRecord{
		ID:        "r1",
		ArticleID: "a1",
		ProjectID: "p1",
		UserID:    "u1",
		Sentiment: model.SentimentResult{Label: model.SentimentPositive, Confidence: 0.8},
		Dialect: model.DialectResult{
			IsMatch:    true,
			Confidence: 42,
			Indicators: []string{"هلق"},
		},
		Emotion: "تفاؤل",
	}
	if err := s.SaveAnalysis(context.Background(), rec); err != nil {
		t.Fatalf("SaveAnalysis: %v", err)
	}

	article, ok := s.Article("a1")
	if !ok {
		t.Fatal("article a1 missing")
	}
	if !article.IsAnalyzed {
		t.Error("article should be marked analyzed")
	}
	if article.Sentiment != "positive" || article.Emotion != "تفاؤل" {
		t.Errorf("denormalized fields = %q/%q", article.Sentiment, article.Emotion)
	}
	if !article.Dialect || article.DialectConfidence != 42 {
		t.Errorf("dialect fields = %v/%v", article.Dialect, article.DialectConfidence)
	}

	// A re-run replaces the record for the same article instead of
	// accumulating duplicates.
	rec2 := rec
	rec2.ID = "r2"
	rec2.Sentiment.Label = model.SentimentNeutral
	if err := s.SaveAnalysis(context.Background(), rec2); err != nil {
		t.Fatalf("SaveAnalysis: %v", err)
	}

	stored, ok := s.Record("a1")
	if !ok {
		t.Fatal("record missing after upsert")
	}
	if stored.ID != "r2" || stored.Sentiment.Label != model.SentimentNeutral {
		t.Errorf("record = %+v, want the re-run to win", stored)
	}
}
