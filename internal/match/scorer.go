package match

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/progmatch/progmatch/internal/catalog"
	"github.com/progmatch/progmatch/internal/embed"
)

// Default scoring knobs. Both are plain configuration, overridable from
// the config file.
const (
	DefaultDislikeWeight = 0.4
	DefaultTopK          = 10
)

// Candidate pairs a catalog entry with its relevance score. Candidates
// exist only within a single ranking call.
type Candidate struct {
	Entry catalog.Entry `json:"entry"`
	Score float64       `json:"score"`
}

// ScorerConfig configures the relevance scoring algorithm.
type ScorerConfig struct {
	DislikeWeight float64 // penalty multiplier for resemblance to disliked traits
	TopK          int     // maximum ranked results returned
}

// Scorer ranks candidates by semantic similarity between their
// descriptions and the user's interest text, penalized by similarity to
// the user's dislike text.
type Scorer struct {
	embedder embed.Embedder
	config   ScorerConfig
}

// NewScorer creates a Scorer over the given embedding capability.
func NewScorer(embedder embed.Embedder, cfg ScorerConfig) *Scorer {
	if cfg.DislikeWeight == 0 {
		cfg.DislikeWeight = DefaultDislikeWeight
	}
	if cfg.TopK <= 0 {
		cfg.TopK = DefaultTopK
	}
	return &Scorer{embedder: embedder, config: cfg}
}

// Score ranks the candidates, highest first, truncated to TopK. Ties keep
// original catalog order. All texts go to the embedder in a single batch
// call, so embedding cost is one round trip per session regardless of
// candidate count. An empty candidate list returns immediately without
// touching the embedder.
func (s *Scorer) Score(ctx context.Context, interestText, dislikeText string, candidates []catalog.Entry) ([]Candidate, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	texts := make([]string, 0, len(candidates)+2)
	texts = append(texts, interestText, dislikeText)
	for i := range candidates {
		texts = append(texts, candidates[i].Description)
	}

	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed candidate descriptions: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d texts", len(vectors), len(texts))
	}

	interest, dislike := vectors[0], vectors[1]
	ranked := make([]Candidate, len(candidates))
	for i := range candidates {
		desc := vectors[i+2]
		score := CosineSimilarity(desc, interest) - s.config.DislikeWeight*CosineSimilarity(desc, dislike)
		ranked[i] = Candidate{Entry: candidates[i], Score: score}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > s.config.TopK {
		ranked = ranked[:s.config.TopK]
	}
	return ranked, nil
}

// CosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched or zero-magnitude vectors score 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
