// Package categorize handles the transaction categorization command.
package categorize

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quillbooks/bookpipe/cmd/root"
	"quillbooks/bookpipe/internal/common"
	"quillbooks/bookpipe/internal/pipeline"
	"quillbooks/bookpipe/internal/report"
	"quillbooks/bookpipe/internal/store"
)

// Cmd represents the categorize command.
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Parse a statement and categorize its transactions",
	Long: `Parse a bank statement and categorize every transaction: user rules
first, then built-in rules, then the embedding-similarity fallback. Flags
near-duplicate lines and writes the annotated batch as a CSV file.`,
	RunE: categorizeFunc,
}

var markDuplicates bool

func init() {
	Cmd.Flags().BoolVar(&markDuplicates, "mark-duplicates", true, "Flag near-duplicate transactions in the batch")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	input := root.SharedFlags.Input
	if input == "" {
		return fmt.Errorf("input file is required")
	}

	content, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("error reading input file: %w", err)
	}

	userRules, err := store.NewRuleStore(root.Cfg.Rules.File, root.Log).Load()
	if err != nil {
		return fmt.Errorf("error loading user rules: %w", err)
	}

	p := pipeline.New(root.Log, pipeline.Options{
		ReviewThreshold:    root.Cfg.Categorization.ReviewThreshold,
		EmbeddingFloor:     root.Cfg.Categorization.EmbeddingFloor,
		FallbackConfidence: root.Cfg.Categorization.FallbackConfidence,
		Workers:            root.Cfg.Categorization.Workers,
	})
	worker := pipeline.NewWorker(root.Log, p)
	defer worker.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := worker.Parse(ctx, string(content), input)
	if err != nil {
		return fmt.Errorf("error parsing statement: %w", err)
	}
	if max := root.Cfg.CSV.MaxRows; len(result.Transactions) > max {
		return fmt.Errorf("statement has %d rows, exceeding the configured limit of %d", len(result.Transactions), max)
	}

	annotated, err := worker.Categorize(ctx, result.Transactions, userRules)
	if err != nil {
		return fmt.Errorf("error categorizing transactions: %w", err)
	}

	if markDuplicates {
		annotated = pipeline.MarkDuplicates(annotated)
	}

	summary := report.Summarize(annotated)
	fmt.Println(summary.String())

	output := root.SharedFlags.Output
	if output == "" {
		output = input + ".categorized.csv"
	}
	return common.WriteTransactionsToCSV(annotated, output, root.Log)
}
