// Package pipeline orchestrates per-transaction categorization: rule match
// first, embedding similarity second, uncategorized-for-manual-review last.
// Each transaction is classified independently against immutable shared
// tables, so a batch can be processed concurrently with no locking.
package pipeline

import (
	"fmt"
	"runtime"
	"sync"

	"quillbooks/bookpipe/internal/embedding"
	"quillbooks/bookpipe/internal/engine"
	"quillbooks/bookpipe/internal/logging"
	"quillbooks/bookpipe/internal/models"
	"quillbooks/bookpipe/internal/parsererror"
)

// concurrencyThreshold is the batch size below which classification runs
// sequentially; goroutine fan-out is not worth it for a handful of rows.
const concurrencyThreshold = 100

// Options tune the pipeline. Zero values fall back to the model defaults.
type Options struct {
	// ReviewThreshold flags embedding matches below this confidence.
	ReviewThreshold float64
	// FallbackConfidence is assigned when no classifier matched.
	FallbackConfidence float64
	// EmbeddingFloor is the minimum similarity the embedding matcher
	// accepts.
	EmbeddingFloor float64
	// Workers caps the classification goroutines; 0 means NumCPU.
	Workers int
}

// Pipeline classifies batches of transactions. It is safe for concurrent
// use: the rule engine and embedding matcher only read process-wide
// constants.
type Pipeline struct {
	log     logging.Logger
	engine  *engine.Engine
	matcher *embedding.Matcher
	opts    Options
}

// New creates a pipeline with the built-in rule table and exemplar set.
func New(log logging.Logger, opts Options) *Pipeline {
	if log == nil {
		log = logging.Default()
	}
	if opts.ReviewThreshold <= 0 {
		opts.ReviewThreshold = models.ReviewThreshold
	}
	if opts.FallbackConfidence <= 0 {
		opts.FallbackConfidence = models.FallbackConfidence
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}

	return &Pipeline{
		log:     log,
		engine:  engine.NewEngine(log),
		matcher: embedding.NewMatcher(log, opts.EmbeddingFloor, nil),
		opts:    opts,
	}
}

// Categorize annotates every transaction in the batch and returns a slice
// of the same length and order. A classifier fault for one transaction
// degrades only that record to the uncategorized state; the batch always
// completes.
func (p *Pipeline) Categorize(transactions []models.Transaction, userRules []models.Rule) []models.Transaction {
	out := make([]models.Transaction, len(transactions))

	if len(transactions) < concurrencyThreshold {
		for i := range transactions {
			out[i] = p.classify(transactions[i], userRules)
		}
		return out
	}

	// Each worker writes only to its own output slots; the shared rule and
	// exemplar tables are read-only. No further synchronization needed.
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < p.opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = p.classify(transactions[i], userRules)
			}
		}()
	}
	for i := range transactions {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return out
}

// classify runs the three-stage decision for a single transaction:
// RuleMatch, then EmbeddingMatch, then the uncategorized default. Panics
// and matcher errors degrade this record only.
func (p *Pipeline) classify(tx models.Transaction, userRules []models.Rule) (annotated models.Transaction) {
	defer func() {
		if r := recover(); r != nil {
			p.log.WithError(&parsererror.ClassificationError{
				TransactionID: tx.ID,
				Stage:         "classify",
				Err:           fmt.Errorf("classifier panic: %v", r),
			}).Error("Classifier fault, degrading transaction to uncategorized")
			annotated = p.fallback(tx)
		}
	}()

	match, err := p.engine.Apply(tx, userRules)
	if err != nil {
		p.log.WithError(&parsererror.ClassificationError{
			TransactionID: tx.ID,
			Stage:         models.StageRule,
			Err:           err,
		}).Warn("Rule evaluation failed, degrading transaction to uncategorized")
		return p.fallback(tx)
	}
	if match != nil {
		tx.Category = match.Category
		tx.Confidence = match.Explanation.Confidence
		tx.Source = models.SourceRule
		tx.Explanation = match.Explanation
		tx.NeedsReview = false
		return tx
	}

	if result := p.matcher.Match(tx); result != nil {
		tx.Category = result.Category
		tx.Confidence = result.Similarity
		tx.Source = models.SourceEmbedding
		tx.Explanation = models.EmbeddingExplanation(result.Similarity)
		tx.NeedsReview = result.Similarity < p.opts.ReviewThreshold
		return tx
	}

	return p.fallback(tx)
}

// fallback is the terminal uncategorized state: low confidence, flagged
// for manual review.
func (p *Pipeline) fallback(tx models.Transaction) models.Transaction {
	tx.Category = models.CategoryUncategorized
	tx.Confidence = p.opts.FallbackConfidence
	tx.Source = models.SourceManual
	tx.Explanation = nil
	tx.NeedsReview = true
	return tx
}
