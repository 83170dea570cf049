// Package embed abstracts the semantic-embedding capability behind an
// interface so the matching core can be exercised with deterministic
// stand-ins. Cosine similarity is computed by the core, not here.
package embed

import "context"

// Embedder maps text into a fixed-dimension vector space. Implementations
// may call out to an external model service, so both methods block and
// honor the context; callers wanting a deadline wrap the context.
type Embedder interface {
	// Embed returns the vector for a single text.
	Embed(ctx context.Context, text string) ([]float64, error)

	// EmbedBatch returns one vector per input text, in input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)
}
