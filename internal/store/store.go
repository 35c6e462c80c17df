// Package store persists articles and their analysis results. Each
// article's analysis is independent; writes are per-row upserts with no
// cross-row transaction requirement.
package store

import (
	"context"
	"errors"

	"github.com/mashaer-ai/mashaer/internal/model"
)

// ErrNotFound is returned when looked-up articles do not exist.
var ErrNotFound = errors.New("not found")

// Store is the persistence boundary of the analysis pipeline.
type Store interface {
	// ListUnanalyzed returns up to limit articles for the project and
	// user that have not been analyzed yet, oldest first.
	ListUnanalyzed(ctx context.Context, projectID, userID string, limit int) ([]model.Article, error)

	// GetByIDs returns the named articles scoped to the project and
	// user. Unknown ids are skipped, not errors.
	GetByIDs(ctx context.Context, projectID, userID string, ids []string) ([]model.Article, error)

	// SaveAnalysis upserts the record keyed by article id and updates
	// the article's denormalized analysis fields in the same
	// transaction. Re-running an article overwrites its record.
	SaveAnalysis(ctx context.Context, rec model.AnalysisRecord) error

	// Ping reports backend health.
	Ping(ctx context.Context) error

	// Close releases backend resources.
	Close()
}
