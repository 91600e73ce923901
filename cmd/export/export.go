// Package export handles the accounting-format export command.
package export

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quillbooks/bookpipe/cmd/root"
	"quillbooks/bookpipe/internal/export"
	"quillbooks/bookpipe/internal/logging"
	"quillbooks/bookpipe/internal/models"
	"quillbooks/bookpipe/internal/pipeline"
	"quillbooks/bookpipe/internal/store"
)

// Cmd represents the export command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Parse, categorize and export a statement for an accounting tool",
	Long: `Run the full pipeline on a bank statement and export the categorized
transactions in an accounting tool's import layout. Every cell passes
through the formula-injection sanitizer before serialization.`,
	RunE: exportFunc,
}

var format string

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "simple", "Export format: simple, quickbooks or xero")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	formatter, err := formatterFor(format)
	if err != nil {
		return err
	}

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
	annotated = pipeline.MarkDuplicates(annotated)

	rendered := formatter(annotated)

	output := root.SharedFlags.Output
	if output == "" {
		fmt.Print(rendered)
		return nil
	}
	if err := os.WriteFile(output, []byte(rendered), models.PermissionReportFile); err != nil {
		return fmt.Errorf("error writing export file: %w", err)
	}

	root.Log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: output},
		logging.Field{Key: logging.FieldFormat, Value: format},
		logging.Field{Key: logging.FieldCount, Value: len(annotated)},
	).Info("Exported transactions")
	return nil
}

func formatterFor(name string) (func([]models.Transaction) string, error) {
	switch name {
	case "simple":
		return export.Simple, nil
	case "quickbooks":
		return export.QuickBooks, nil
	case "xero":
		return export.Xero, nil
	default:
		return nil, fmt.Errorf("unknown export format: %s (must be simple, quickbooks or xero)", name)
	}
}
