package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/mashaer-ai/mashaer/internal/cache"
	"github.com/mashaer-ai/mashaer/internal/content"
	"github.com/mashaer-ai/mashaer/internal/dialect"
	"github.com/mashaer-ai/mashaer/internal/inference"
	"github.com/mashaer-ai/mashaer/internal/lexicon"
	"github.com/mashaer-ai/mashaer/internal/model"
	"github.com/mashaer-ai/mashaer/internal/pipeline"
	"github.com/mashaer-ai/mashaer/internal/store"
	"github.com/mashaer-ai/mashaer/internal/worker"
)

// loadConfig layers viper (config file + MASHAER_* env) over the built-in
// defaults, then fills secrets from the conventional environment variables.
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}

	if cfg.Store.DatabaseURL == "" {
		cfg.Store.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if cfg.Inference.Token == "" {
		switch strings.ToLower(cfg.Inference.Provider) {
		case "openai":
			cfg.Inference.Token = os.Getenv("OPENAI_API_KEY")
		case "gemini":
			cfg.Inference.Token = os.Getenv("GEMINI_API_KEY")
		default:
			cfg.Inference.Token = os.Getenv("HF_API_TOKEN")
		}
	}

	return cfg, nil
}

// buildStore opens the configured persistence backend.
func buildStore(ctx context.Context, cfg *model.Config) (store.Store, error) {
	switch strings.ToLower(cfg.Store.Driver) {
	case "memory":
		return store.NewMemory(), nil
	case "postgres", "":
		if cfg.Store.DatabaseURL == "" {
			return nil, fmt.Errorf("store.database_url (or DATABASE_URL) is required for the postgres driver")
		}
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown store driver: %s (supported: postgres, memory)", cfg.Store.Driver)
	}
}

// buildOrchestrator wires the full analysis chain from configuration.
func buildOrchestrator(cfg *model.Config, st store.Store) (*pipeline.Orchestrator, error) {
	tables := lexicon.DefaultLevantine()
	if cfg.Lexicon.Path != "" {
		loaded, err := lexicon.Load(cfg.Lexicon.Path)
		if err != nil {
			return nil, err
		}
		tables = loaded
	}

	provider, err := inference.NewProvider(inference.Config{
		Provider: cfg.Inference.Provider,
		Endpoint: cfg.Inference.Endpoint,
		Token:    cfg.Inference.Token,
		Model:    cfg.Inference.Model,
		Timeout:  cfg.Inference.Timeout,
	})
	if err != nil {
		return nil, err
	}

	if cfg.Inference.CacheTTL > 0 {
		responseCache := cache.NewMemoryCache(cfg.Inference.CacheTTL, cfg.Inference.CacheTTL)
		provider = inference.NewCachedProvider(provider, responseCache, cfg.Inference.CacheTTL)
	}

	limiter := worker.NewLimiter(cfg.Inference.RequestsPerSecond, cfg.Inference.Burst)

	scorer := content.NewScorer(tables)
	selector := content.NewSelector(scorer)
	detector := dialect.New(tables)

	analyzer := pipeline.NewAnalyzer(selector, provider, detector, st, limiter, cfg.Batch.QualityFloor)
	return pipeline.NewOrchestrator(analyzer, st, cfg.Batch.PageSize, cfg.Batch.Workers), nil
}
