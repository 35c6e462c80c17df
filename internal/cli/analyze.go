package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mashaer-ai/mashaer/internal/logging"
)

var (
	analyzeProject string
	analyzeUser    string
	analyzeIDs     []string
	analyzeTimeout time.Duration
	analyzeJSON    bool
)

// analyzeCmd runs one batch from the terminal.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a batch of pending articles",
	Long: `Analyze runs one bounded batch: up to the configured page size of
unanalyzed articles for the given project and user, or the explicitly
named article ids.

Example:
  mashaer analyze --project p1 --user u1
  mashaer analyze --project p1 --user u1 --article-ids a1,a2,a3
  mashaer analyze --project p1 --user u1 --json > report.json`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeProject, "project", "", "project id (required)")
	analyzeCmd.Flags().StringVar(&analyzeUser, "user", "", "user id (required)")
	analyzeCmd.Flags().StringSliceVar(&analyzeIDs, "article-ids", nil, "explicit article ids (default: all unanalyzed)")
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 10*time.Minute, "total timeout for the batch")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the full report as JSON to stdout")

	_ = analyzeCmd.MarkFlagRequired("project")
	_ = analyzeCmd.MarkFlagRequired("user")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logging.Setup(cfg.Log.Level, cfg.Log.File)

	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	st, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	orchestrator, err := buildOrchestrator(cfg, st)
	if err != nil {
		return err
	}

	report, err := orchestrator.Run(ctx, analyzeProject, analyzeUser, analyzeIDs)
	if err != nil {
		return fmt.Errorf("run batch: %w", err)
	}

	for _, item := range report.Results {
		if item.Success {
			fmt.Fprintf(os.Stderr, "✓ %s: %s (%s, quality %d, source %s)\n",
				item.ArticleID, item.Sentiment, item.Emotion, item.QualityScore, item.ContentSource)
		} else {
			fmt.Fprintf(os.Stderr, "✗ %s: %s\n", item.ArticleID, item.Error)
		}
	}
	fmt.Fprintf(os.Stderr, "\n%s (%d errors)\n", report.Message, report.Errors)

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
	}

	return nil
}
