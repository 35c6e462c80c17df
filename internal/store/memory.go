package store

import (
	"context"
	"sort"
	"sync"

	"github.com/mashaer-ai/mashaer/internal/model"
)

// Memory is an in-process Store used for tests and local development. It
// mirrors the Postgres semantics: upsert by article id, denormalized fields
// written back to the article.
type Memory struct {
	mu       sync.RWMutex
	articles map[string]model.Article
	records  map[string]model.AnalysisRecord // keyed by article id
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		articles: make(map[string]model.Article),
		records:  make(map[string]model.AnalysisRecord),
	}
}

// Seed inserts articles, normalizing a blank language to "ar".
func (s *Memory) Seed(articles ...model.Article) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range articles {
		if a.Language == "" {
			a.Language = "ar"
		}
		s.articles[a.ID] = a
	}
}

// Article returns a stored article by id.
func (s *Memory) Article(id string) (model.Article, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.articles[id]
	return a, ok
}

// Record returns the analysis record for an article id.
func (s *Memory) Record(articleID string) (model.AnalysisRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[articleID]
	return r, ok
}

// ListUnanalyzed implements Store.
func (s *Memory) ListUnanalyzed(ctx context.Context, projectID, userID string, limit int) ([]model.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Article
	for _, a := range s.articles {
		if a.ProjectID == projectID && a.UserID == userID && !a.IsAnalyzed {
			out = append(out, a)
		}
	}
	sortArticles(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// GetByIDs implements Store.
func (s *Memory) GetByIDs(ctx context.Context, projectID, userID string, ids []string) ([]model.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Article
	for _, id := range ids {
		a, ok := s.articles[id]
		if !ok || a.ProjectID != projectID || a.UserID != userID {
			continue
		}
		out = append(out, a)
	}
	sortArticles(out)
	return out, nil
}

// SaveAnalysis implements Store.
func (s *Memory) SaveAnalysis(ctx context.Context, rec model.AnalysisRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[rec.ArticleID] = rec

	if a, ok := s.articles[rec.ArticleID]; ok {
		a.IsAnalyzed = true
		a.Sentiment = string(rec.Sentiment.Label)
		a.Emotion = rec.Emotion
		a.Dialect = rec.Dialect.IsMatch
		a.DialectConfidence = rec.Dialect.Confidence
		a.DialectIndicators = rec.Dialect.Indicators
		a.EmotionalMarkers = rec.Dialect.EmotionalMarkers
		s.articles[rec.ArticleID] = a
	}
	return nil
}

// Ping implements Store.
func (s *Memory) Ping(ctx context.Context) error {
	return nil
}

// Close implements Store.
func (s *Memory) Close() {}

func sortArticles(articles []model.Article) {
	sort.Slice(articles, func(i, j int) bool {
		if articles[i].CreatedAt.Equal(articles[j].CreatedAt) {
			return articles[i].ID < articles[j].ID
		}
		return articles[i].CreatedAt.Before(articles[j].CreatedAt)
	})
}
