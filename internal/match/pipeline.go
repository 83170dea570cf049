package match

import (
	"context"

	"github.com/progmatch/progmatch/internal/catalog"
	"github.com/progmatch/progmatch/internal/embed"
)

// Query carries one user's matching request. It is never mutated after
// construction. IdentityLabel is the optional up-front clarification for
// open identity values; the pipeline never prompts mid-run.
type Query struct {
	Identity      string   `json:"identity,omitempty"`
	IdentityLabel string   `json:"identity_label,omitempty"`
	GradeLevel    string   `json:"grade_level"`
	Subjects      []string `json:"subjects"`
	InterestText  string   `json:"interest_text,omitempty"`
	DislikeText   string   `json:"dislike_text,omitempty"`
}

// Result is the outcome of one matching session: a ranked candidate list
// (possibly empty) plus a reason code when empty.
type Result struct {
	Matches         []Candidate `json:"matches"`
	MatchedGrade    string      `json:"matched_grade,omitempty"`
	MatchedSubjects []string    `json:"matched_subjects,omitempty"`
	Reason          Reason      `json:"reason,omitempty"`
}

// Config holds the tunable matching parameters.
type Config struct {
	Threshold     int     // fuzzy acceptance threshold, 0-100
	TopK          int     // maximum ranked results
	DislikeWeight float64 // dislike penalty multiplier
}

// Pipeline wires the full matching flow: eligibility filter, criteria
// filter and relevance scorer. Stages run in order and each fully
// consumes its input; an empty candidate set short-circuits the rest.
// The pipeline holds no mutable state, so one Pipeline may serve
// concurrent sessions over a shared read-only catalog.
type Pipeline struct {
	criteria *CriteriaFilter
	scorer   *Scorer
}

// NewPipeline assembles a pipeline from injected capabilities.
func NewPipeline(matcher Matcher, embedder embed.Embedder, cfg Config) *Pipeline {
	return &Pipeline{
		criteria: NewCriteriaFilter(matcher, cfg.Threshold),
		scorer: NewScorer(embedder, ScorerConfig{
			DislikeWeight: cfg.DislikeWeight,
			TopK:          cfg.TopK,
		}),
	}
}

// Run executes a matching session over the catalog for the given query.
func (p *Pipeline) Run(ctx context.Context, entries []catalog.Entry, q Query) (*Result, error) {
	eligible := FilterEligible(entries, q.Identity, q.IdentityLabel)
	if len(eligible) == 0 {
		return &Result{Reason: ReasonEmptyCatalog}, nil
	}

	criteria := p.criteria.Filter(q.GradeLevel, q.Subjects, eligible)
	if len(criteria.Candidates) == 0 {
		return &Result{
			MatchedGrade:    criteria.MatchedGrade,
			MatchedSubjects: criteria.MatchedSubjects,
			Reason:          criteria.Reason,
		}, nil
	}

	matches, err := p.scorer.Score(ctx, q.InterestText, q.DislikeText, criteria.Candidates)
	if err != nil {
		return nil, err
	}

	return &Result{
		Matches:         matches,
		MatchedGrade:    criteria.MatchedGrade,
		MatchedSubjects: criteria.MatchedSubjects,
	}, nil
}
