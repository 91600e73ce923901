// Package common provides the shared CSV writer used by the CLI commands
// to dump normalized transaction batches.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"quillbooks/bookpipe/internal/logging"
	"quillbooks/bookpipe/internal/models"
	"quillbooks/bookpipe/internal/sanitize"
)

// Delimiter is the output CSV delimiter. Configurable via SetDelimiter;
// defaults to a comma.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// transactionRow is the flat CSV shape of a normalized transaction. Text
// fields are pre-sanitized strings so gocsv can marshal them directly.
type transactionRow struct {
	ID          string `csv:"ID"`
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	Category    string `csv:"Category"`
	Confidence  string `csv:"Confidence"`
	Source      string `csv:"Source"`
	NeedsReview string `csv:"NeedsReview"`
	Duplicate   string `csv:"Duplicate"`
}

func toRow(tx models.Transaction) transactionRow {
	date := ""
	if !tx.Date.IsZero() {
		date = tx.Date.Format("2006-01-02")
	}
	return transactionRow{
		ID:          sanitize.Field(tx.ID),
		Date:        date,
		Description: sanitize.Field(tx.Description),
		Amount:      tx.Amount.String(),
		Category:    sanitize.Field(tx.Category),
		Confidence:  fmt.Sprintf("%.2f", tx.Confidence),
		Source:      sanitize.Field(tx.Source),
		NeedsReview: fmt.Sprintf("%t", tx.NeedsReview),
		Duplicate:   fmt.Sprintf("%t", tx.Duplicate),
	}
}

// WriteTransactionsToCSV writes a normalized transaction batch to a CSV
// file. Every command that dumps transactions uses this function so the
// output schema stays consistent, and every text cell passes through the
// sanitizer on the way out.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string, log logging.Logger) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}
	if log == nil {
		log = logging.Default()
	}

	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Writing transactions to CSV file")

	if dir := filepath.Dir(csvFile); dir != "." {
		if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]transactionRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, toRow(tx))
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Successfully wrote transactions to CSV file")

	return nil
}
