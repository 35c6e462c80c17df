package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mashaer-ai/mashaer/internal/model"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var articleColumns = []string{
	"id", "project_id", "user_id", "title",
	"coalesce(description, '')", "coalesce(body, '')", "coalesce(url, '')",
	"language", "created_at", "is_analyzed",
}

// Postgres implements Store on a pgx connection pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres connects to the database.
func NewPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

// Ping checks connectivity.
func (s *Postgres) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the pool.
func (s *Postgres) Close() {
	s.pool.Close()
}

// ListUnanalyzed returns up to limit pending articles, oldest first.
func (s *Postgres) ListUnanalyzed(ctx context.Context, projectID, userID string, limit int) ([]model.Article, error) {
	query, args, err := psql.
		Select(articleColumns...).
		From("articles").
		Where(sq.Eq{"project_id": projectID, "user_id": userID, "is_analyzed": false}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	return s.queryArticles(ctx, query, args)
}

// GetByIDs returns the named articles scoped to the project and user.
func (s *Postgres) GetByIDs(ctx context.Context, projectID, userID string, ids []string) ([]model.Article, error) {
	query, args, err := psql.
		Select(articleColumns...).
		From("articles").
		Where(sq.Eq{"project_id": projectID, "user_id": userID, "id": ids}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	return s.queryArticles(ctx, query, args)
}

func (s *Postgres) queryArticles(ctx context.Context, query string, args []interface{}) ([]model.Article, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	var articles []model.Article
	for rows.Next() {
		var a model.Article
		if err := rows.Scan(
			&a.ID, &a.ProjectID, &a.UserID, &a.Title,
			&a.Description, &a.Body, &a.URL,
			&a.Language, &a.CreatedAt, &a.IsAnalyzed,
		); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		if a.Language == "" {
			a.Language = "ar"
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}

	return articles, nil
}

// SaveAnalysis upserts the analysis record and updates the article's
// denormalized fields in one transaction.
func (s *Postgres) SaveAnalysis(ctx context.Context, rec model.AnalysisRecord) (err error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = s.upsertRecord(ctx, tx, rec); err != nil {
		return err
	}
	if err = s.updateArticle(ctx, tx, rec); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *Postgres) upsertRecord(ctx context.Context, tx pgx.Tx, rec model.AnalysisRecord) error {
	query, args, err := psql.
		Insert("analysis_results").
		Columns(
			"id", "article_id", "project_id", "user_id",
			"text", "content_source", "quality_score",
			"sentiment", "sentiment_confidence", "positive_prob", "negative_prob",
			"dialect", "dialect_confidence", "dialect_indicators", "emotional_markers",
			"emotion", "detected_language", "analyzed_at",
		).
		Values(
			rec.ID, rec.ArticleID, rec.ProjectID, rec.UserID,
			rec.Text, string(rec.ContentSource), rec.QualityScore,
			string(rec.Sentiment.Label), rec.Sentiment.Confidence, rec.Sentiment.PositiveProb, rec.Sentiment.NegativeProb,
			rec.Dialect.IsMatch, rec.Dialect.Confidence, rec.Dialect.Indicators, rec.Dialect.EmotionalMarkers,
			rec.Emotion, rec.DetectedLanguage, rec.AnalyzedAt,
		).
		Suffix(`ON CONFLICT (article_id) DO UPDATE SET
			text = EXCLUDED.text,
			content_source = EXCLUDED.content_source,
			quality_score = EXCLUDED.quality_score,
			sentiment = EXCLUDED.sentiment,
			sentiment_confidence = EXCLUDED.sentiment_confidence,
			positive_prob = EXCLUDED.positive_prob,
			negative_prob = EXCLUDED.negative_prob,
			dialect = EXCLUDED.dialect,
			dialect_confidence = EXCLUDED.dialect_confidence,
			dialect_indicators = EXCLUDED.dialect_indicators,
			emotional_markers = EXCLUDED.emotional_markers,
			emotion = EXCLUDED.emotion,
			detected_language = EXCLUDED.detected_language,
			analyzed_at = EXCLUDED.analyzed_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert analysis: %w", err)
	}
	return nil
}

func (s *Postgres) updateArticle(ctx context.Context, tx pgx.Tx, rec model.AnalysisRecord) error {
	query, args, err := psql.
		Update("articles").
		Set("is_analyzed", true).
		Set("sentiment", string(rec.Sentiment.Label)).
		Set("emotion", rec.Emotion).
		Set("dialect", rec.Dialect.IsMatch).
		Set("dialect_confidence", rec.Dialect.Confidence).
		Set("dialect_indicators", rec.Dialect.Indicators).
		Set("emotional_markers", rec.Dialect.EmotionalMarkers).
		Where(sq.Eq{"id": rec.ArticleID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}
