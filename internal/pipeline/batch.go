package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/mashaer-ai/mashaer/internal/metrics"
	"github.com/mashaer-ai/mashaer/internal/model"
	"github.com/mashaer-ai/mashaer/internal/store"
	"github.com/mashaer-ai/mashaer/internal/worker"
)

// Orchestrator runs one bounded batch of articles through the analyzer,
// isolating per-item failures and returning an aggregate report.
type Orchestrator struct {
	analyzer *Analyzer
	store    store.Store
	pageSize int
	pool     *worker.Pool
	log      *slog.Logger
}

// NewOrchestrator creates a batch orchestrator. pageSize bounds how many
// articles one invocation may target; workers bounds concurrent items.
func NewOrchestrator(analyzer *Analyzer, st store.Store, pageSize, workers int) *Orchestrator {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &Orchestrator{
		analyzer: analyzer,
		store:    st,
		pageSize: pageSize,
		pool:     worker.NewPool(workers),
		log:      slog.Default().With("component", "batch"),
	}
}

// analyzeTask adapts one article to the worker pool.
type analyzeTask struct {
	analyzer *Analyzer
	article  model.Article
}

func (t analyzeTask) Run(ctx context.Context) worker.Outcome {
	return t.analyzer.AnalyzeArticle(ctx, t.article)
}

// Run fetches the target articles (explicit ids, or a page of unanalyzed
// ones) and processes them independently. One bad item never fails the
// batch; only request-shape and article-listing problems return an error.
// The report is assembled deterministically by article id regardless of
// completion order.
func (o *Orchestrator) Run(ctx context.Context, projectID, userID string, articleIDs []string) (*model.BatchReport, error) {
	if projectID == "" || userID == "" {
		return nil, fmt.Errorf("project id and user id are required")
	}

	started := time.Now()

	var articles []model.Article
	var err error
	if len(articleIDs) > 0 {
		if len(articleIDs) > o.pageSize {
			articleIDs = articleIDs[:o.pageSize]
		}
		articles, err = o.store.GetByIDs(ctx, projectID, userID, articleIDs)
	} else {
		articles, err = o.store.ListUnanalyzed(ctx, projectID, userID, o.pageSize)
	}
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	metrics.BatchSize.Set(float64(len(articles)))
	o.log.Info("batch starting", "project_id", projectID, "articles", len(articles))

	tasks := make([]worker.Task, len(articles))
	for i, article := range articles {
		tasks[i] = analyzeTask{analyzer: o.analyzer, article: article}
	}

	outcomes := o.pool.Run(ctx, tasks)

	results := make([]ItemResult, 0, len(outcomes))
	for _, outcome := range outcomes {
		results = append(results, outcome.(ItemResult))
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].ArticleID < results[j].ArticleID
	})

	report := &model.BatchReport{
		Total:   len(articles),
		Results: make([]model.ItemSummary, 0, len(results)),
	}
	for _, r := range results {
		report.Results = append(report.Results, summarize(r))
		if r.Success {
			report.Processed++
		} else {
			report.Errors++
		}
	}
	report.Message = report.Summary()

	metrics.BatchDuration.Observe(time.Since(started).Seconds())
	o.log.Info("batch finished",
		"processed", report.Processed,
		"errors", report.Errors,
		"total", report.Total,
		"elapsed", time.Since(started),
	)

	return report, nil
}

func summarize(r ItemResult) model.ItemSummary {
	if !r.Success {
		return model.ItemSummary{
			ArticleID: r.ArticleID,
			Error:     r.Error.Error(),
			Details:   r.Detail,
		}
	}

	rec := r.Record
	return model.ItemSummary{
		ArticleID:     r.ArticleID,
		Success:       true,
		Sentiment:     rec.Sentiment.Label,
		Emotion:       rec.Emotion,
		Confidence:    rec.Sentiment.Confidence,
		QualityScore:  rec.QualityScore,
		ContentSource: rec.ContentSource,
		Dialect:       &rec.Dialect,
	}
}
