// Package embedding implements the similarity fallback classifier: when no
// rule matches a transaction, its description is compared against
// precomputed category exemplar vectors and the best-scoring category wins
// if it clears a minimum similarity floor.
package embedding

import (
	"quillbooks/bookpipe/internal/logging"
	"quillbooks/bookpipe/internal/models"
)

// Result is a successful embedding match.
type Result struct {
	Category   string
	Similarity float64
}

// Matcher compares transaction descriptions against category exemplars.
// Exemplar vectors are computed once at construction; Match only reads
// them, so a single Matcher is safe for concurrent use.
type Matcher struct {
	log     logging.Logger
	floor   float64
	vectors map[string][][]float64
}

// NewMatcher builds a matcher from exemplar phrases. A nil exemplars map
// falls back to the built-in set; a floor of 0 falls back to the default.
func NewMatcher(log logging.Logger, floor float64, exemplars map[string][]string) *Matcher {
	if log == nil {
		log = logging.Default()
	}
	if floor <= 0 {
		floor = models.EmbeddingFloor
	}
	if exemplars == nil {
		exemplars = builtinExemplars
	}

	vectors := make(map[string][][]float64, len(exemplars))
	for category, phrases := range exemplars {
		vecs := make([][]float64, 0, len(phrases))
		for _, phrase := range phrases {
			vecs = append(vecs, Vectorize(phrase))
		}
		vectors[category] = vecs
	}

	return &Matcher{log: log, floor: floor, vectors: vectors}
}

// Match returns the best-scoring category for the transaction description
// when the similarity clears the floor, else nil. The similarity score is
// the raw cosine value; whether it warrants review is the pipeline's call,
// not this matcher's.
func (m *Matcher) Match(tx models.Transaction) *Result {
	vec := Vectorize(tx.Description)

	best := Result{}
	for category, exemplarVecs := range m.vectors {
		for _, ev := range exemplarVecs {
			if score := Cosine(vec, ev); score > best.Similarity {
				best = Result{Category: category, Similarity: score}
			}
		}
	}

	if best.Category == "" || best.Similarity < m.floor {
		return nil
	}

	m.log.WithFields(
		logging.Field{Key: logging.FieldCategory, Value: best.Category},
		logging.Field{Key: logging.FieldSimilarity, Value: best.Similarity},
		logging.Field{Key: logging.FieldTransaction, Value: tx.ID},
	).Debug("Embedding match found")

	return &best
}
