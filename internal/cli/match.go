package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/progmatch/progmatch/internal/catalog"
	"github.com/progmatch/progmatch/internal/config"
	"github.com/progmatch/progmatch/internal/embed"
	"github.com/progmatch/progmatch/internal/match"
	"github.com/progmatch/progmatch/internal/output"
)

var (
	matchGrade         string
	matchSubjects      []string
	matchInterests     string
	matchDislikes      string
	matchIdentity      string
	matchIdentityLabel string
	matchCSV           string
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank the programs that best fit a student",
	Long: `Run the full matching pipeline: eligibility filtering, fuzzy grade
and subject resolution, and semantic relevance ranking.

Examples:
  progmatch match --grade "10th grade" --subject math --interests "robotics and coding"
  progmatch match --grade 11 --subject science --subject art \
    --interests "marine biology" --dislikes "long lectures" --identity female`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchGrade, "grade", "g", "", "student's grade level (required)")
	matchCmd.Flags().StringArrayVarP(&matchSubjects, "subject", "s", nil, "subject of interest (repeatable, required)")
	matchCmd.Flags().StringVarP(&matchInterests, "interests", "i", "", "free-text description of what the student enjoys")
	matchCmd.Flags().StringVarP(&matchDislikes, "dislikes", "d", "", "free-text description of what the student avoids")
	matchCmd.Flags().StringVar(&matchIdentity, "identity", "", "self-reported identity for eligibility filtering")
	matchCmd.Flags().StringVar(&matchIdentityLabel, "identity-label", "", "clarifying label when identity is 'other'")
	matchCmd.Flags().StringVar(&matchCSV, "csv", "", "match against a CSV file instead of the imported catalog")
	matchCmd.MarkFlagRequired("grade")
	matchCmd.MarkFlagRequired("subject")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	entries, err := loadCatalog(cmd, cfg)
	if err != nil {
		return err
	}

	embedder := embed.NewClient(cfg.Embedder.URL(), cfg.Embedder.Timeout())
	if err := embedder.EnsureRunning(ctx); err != nil {
		return err
	}

	pipeline := match.NewPipeline(match.NewLevenshteinMatcher(), embedder, match.Config{
		Threshold:     cfg.Matching.Threshold,
		TopK:          cfg.Matching.TopK,
		DislikeWeight: cfg.Matching.DislikeWeight,
	})

	result, err := pipeline.Run(ctx, entries, match.Query{
		Identity:      matchIdentity,
		IdentityLabel: matchIdentityLabel,
		GradeLevel:    matchGrade,
		Subjects:      matchSubjects,
		InterestText:  matchInterests,
		DislikeText:   matchDislikes,
	})
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}

	return output.Output(outputFmt, &output.MatchReport{
		Result:       result,
		GradeQuery:   matchGrade,
		SubjectQuery: strings.Join(matchSubjects, ", "),
	})
}

// loadCatalog reads entries from the --csv override or the imported store.
func loadCatalog(cmd *cobra.Command, cfg *config.Config) ([]catalog.Entry, error) {
	if matchCSV != "" {
		return catalog.LoadCSV(matchCSV)
	}

	store, err := catalog.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog store: %w", err)
	}
	defer store.Close()

	entries, err := store.LoadAll(cmd.Context())
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("catalog is empty: run 'progmatch catalog import <csv>' first")
	}
	return entries, nil
}
