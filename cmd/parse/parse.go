// Package parse handles the statement parsing command.
package parse

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quillbooks/bookpipe/cmd/root"
	"quillbooks/bookpipe/internal/common"
	"quillbooks/bookpipe/internal/logging"
	"quillbooks/bookpipe/internal/parser"
)

// Cmd represents the parse command.
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a bank statement into normalized transactions",
	Long: `Parse a bank statement export (CSV, OFX or QFX) into the normalized
transaction model and write it as a CSV file. The format is detected from
the file extension, falling back to content sniffing.`,
	RunE: parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) error {
	input := root.SharedFlags.Input
	if input == "" {
		return fmt.Errorf("input file is required")
	}

	content, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("error reading input file: %w", err)
	}

	result, err := parser.Parse(string(content), input, root.Log)
	if err != nil {
		return fmt.Errorf("error parsing statement: %w", err)
	}
	if max := root.Cfg.CSV.MaxRows; len(result.Transactions) > max {
		return fmt.Errorf("statement has %d rows, exceeding the configured limit of %d", len(result.Transactions), max)
	}

	root.Log.WithFields(
		logging.Field{Key: logging.FieldFormat, Value: string(result.Format)},
		logging.Field{Key: logging.FieldCount, Value: len(result.Transactions)},
	).Info("Parsed statement")

	output := root.SharedFlags.Output
	if output == "" {
		output = input + ".normalized.csv"
	}
	return common.WriteTransactionsToCSV(result.Transactions, output, root.Log)
}
