// Package pipeline orchestrates the per-article analysis chain and the
// batch run around it.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"

	"github.com/mashaer-ai/mashaer/internal/content"
	"github.com/mashaer-ai/mashaer/internal/dialect"
	"github.com/mashaer-ai/mashaer/internal/inference"
	"github.com/mashaer-ai/mashaer/internal/metrics"
	"github.com/mashaer-ai/mashaer/internal/model"
	"github.com/mashaer-ai/mashaer/internal/store"
	"github.com/mashaer-ai/mashaer/internal/worker"
)

// Stage names the pipeline step an item reached. A failed item's stage is
// the step it failed at.
type Stage string

const (
	StageContentSelected Stage = "content_selected"
	StageInferred        Stage = "inferred"
	StageNormalized      Stage = "normalized"
	StageDialectScored   Stage = "dialect_scored"
	StagePersisted       Stage = "persisted"
)

// ErrNoUsableContent marks an article where no cascade tier cleared the
// quality floor.
var ErrNoUsableContent = errors.New("no usable content")

// ItemResult is the outcome of analyzing one article. Exactly one of Record
// or Error is meaningful; failures never propagate past the item boundary.
type ItemResult struct {
	ArticleID string
	Success   bool
	Stage     Stage
	Record    *model.AnalysisRecord
	Error     error
	Detail    string
}

// Err implements worker.Outcome.
func (r ItemResult) Err() error { return r.Error }

// Analyzer runs one article through select → infer → normalize → dialect →
// persist.
type Analyzer struct {
	selector     *content.Selector
	provider     inference.Provider
	detector     *dialect.Detector
	store        store.Store
	limiter      *worker.Limiter
	qualityFloor int
	log          *slog.Logger
}

// NewAnalyzer wires the per-item chain.
func NewAnalyzer(selector *content.Selector, provider inference.Provider, detector *dialect.Detector, st store.Store, limiter *worker.Limiter, qualityFloor int) *Analyzer {
	return &Analyzer{
		selector:     selector,
		provider:     provider,
		detector:     detector,
		store:        st,
		limiter:      limiter,
		qualityFloor: qualityFloor,
		log:          slog.Default().With("component", "analyzer"),
	}
}

// AnalyzeArticle processes a single article, returning a terminal
// ItemResult. Any stage failure ends only this item.
func (a *Analyzer) AnalyzeArticle(ctx context.Context, article model.Article) ItemResult {
	candidate := a.selector.Select(article)
	if candidate.Source == model.SourceNone || candidate.Quality < a.qualityFloor {
		metrics.ArticlesFailed.WithLabelValues(string(StageContentSelected)).Inc()
		a.log.Warn("no usable content", "article_id", article.ID, "quality", candidate.Quality)
		return ItemResult{
			ArticleID: article.ID,
			Stage:     StageContentSelected,
			Error:     ErrNoUsableContent,
		}
	}

	if err := a.limiter.Wait(ctx, a.provider.Name()); err != nil {
		return ItemResult{
			ArticleID: article.ID,
			Stage:     StageInferred,
			Error:     err,
			Detail:    "rate limit wait interrupted",
		}
	}

	start := time.Now()
	probs, err := a.provider.Infer(ctx, candidate.Text)
	metrics.InferenceDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ArticlesFailed.WithLabelValues(string(StageInferred)).Inc()
		a.log.Warn("inference failed", "article_id", article.ID, "error", err)
		return ItemResult{
			ArticleID: article.ID,
			Stage:     StageInferred,
			Error:     errors.New("inference failed"),
			Detail:    err.Error(),
		}
	}

	sentiment := inference.Normalize(probs.Positive, probs.Negative)
	dialectResult := a.detector.Detect(candidate.Text)
	emotion := inference.Emotion(sentiment.Label, len(dialectResult.EmotionalMarkers) > 0)

	langInfo := whatlanggo.Detect(candidate.Text)

	rec := model.AnalysisRecord{
		ID:               uuid.NewString(),
		ArticleID:        article.ID,
		ProjectID:        article.ProjectID,
		UserID:           article.UserID,
		Text:             candidate.Text,
		ContentSource:    candidate.Source,
		QualityScore:     candidate.Quality,
		Sentiment:        sentiment,
		Dialect:          dialectResult,
		Emotion:          emotion,
		DetectedLanguage: langInfo.Lang.Iso6393(),
		AnalyzedAt:       time.Now().UTC(),
	}

	// The inference call is already spent; a persistence failure only
	// loses this run's result, recomputed on re-run.
	if err := a.store.SaveAnalysis(ctx, rec); err != nil {
		metrics.ArticlesFailed.WithLabelValues(string(StagePersisted)).Inc()
		a.log.Error("persist failed", "article_id", article.ID, "error", err)
		return ItemResult{
			ArticleID: article.ID,
			Stage:     StagePersisted,
			Error:     errors.New("persist failed"),
			Detail:    err.Error(),
		}
	}

	metrics.ArticlesProcessed.Inc()
	a.log.Info("article analyzed",
		"article_id", article.ID,
		"sentiment", sentiment.Label,
		"dialect", dialectResult.IsMatch,
		"source", candidate.Source,
	)

	return ItemResult{
		ArticleID: article.ID,
		Success:   true,
		Stage:     StagePersisted,
		Record:    &rec,
	}
}
