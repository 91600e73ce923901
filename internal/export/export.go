// Package export maps annotated transaction batches to target CSV
// schemas. Every formatter routes every cell through the sanitizer before
// serialization; none of them bypasses it, not even for dates or amounts.
// Amounts are passed as numeric values so the sanitizer's number rule
// leaves their sign alone.
package export

import (
	"regexp"
	"time"

	"quillbooks/bookpipe/internal/models"
	"quillbooks/bookpipe/internal/sanitize"
)

// dateFormat is the ISO calendar date used by all three schemas.
const dateFormat = "2006-01-02"

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateFormat)
}

var payeeRegex = regexp.MustCompile(`[A-Za-z][A-Za-z '&.-]*`)

// payee extracts the leading vendor text from a raw description for the
// formats that carry a Payee column.
func payee(description string) string {
	return payeeRegex.FindString(description)
}

// render sanitizes the table and serializes it. An input with no data rows
// yields the empty string, headers included.
func render(table [][]any) string {
	if len(table) <= 1 {
		return ""
	}
	return sanitize.RowsToCSV(sanitize.Table(table))
}

// Simple produces the generic layout: one row per transaction with the
// classification columns alongside the raw fields.
func Simple(transactions []models.Transaction) string {
	table := make([][]any, 0, len(transactions)+1)
	table = append(table, []any{"Date", "Description", "Amount", "Category", "Confidence", "Source", "Needs Review"})
	for _, tx := range transactions {
		table = append(table, []any{
			formatDate(tx.Date),
			tx.Description,
			tx.Amount,
			tx.Category,
			tx.Confidence,
			tx.Source,
			tx.NeedsReview,
		})
	}
	return render(table)
}

// QuickBooks produces the QuickBooks-style bank feed layout with a Payee
// column derived from the description.
func QuickBooks(transactions []models.Transaction) string {
	table := make([][]any, 0, len(transactions)+1)
	table = append(table, []any{"Date", "Payee", "Description", "Amount", "Category"})
	for _, tx := range transactions {
		table = append(table, []any{
			formatDate(tx.Date),
			payee(tx.Description),
			tx.Description,
			tx.Amount,
			tx.Category,
		})
	}
	return render(table)
}

// Xero produces Xero's bank statement import layout. The starred headers
// are Xero's required-field markers; they still go through the sanitizer
// like every other cell, and pass untouched because '*' is not a formula
// lead-in.
func Xero(transactions []models.Transaction) string {
	table := make([][]any, 0, len(transactions)+1)
	table = append(table, []any{"*Date", "*Amount", "Payee", "Description", "Reference", "AnalysisCode"})
	for _, tx := range transactions {
		table = append(table, []any{
			formatDate(tx.Date),
			tx.Amount,
			payee(tx.Description),
			tx.Description,
			tx.ID,
			tx.Category,
		})
	}
	return render(table)
}
