// Package csvparser implements the simple CSV statement path: header-based
// column inference followed by a naive comma split per row. Quoted fields
// are not handled here; exports from the banks this path targets do not
// quote, and a misparsed row degrades to best-effort values rather than
// aborting the file.
package csvparser

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"quillbooks/bookpipe/internal/logging"
	"quillbooks/bookpipe/internal/models"
	"quillbooks/bookpipe/internal/parsererror"
)

// Header tokens used to locate the canonical columns. Matching is a
// case-insensitive substring test over each header cell.
var (
	dateTokens        = []string{"date"}
	descriptionTokens = []string{"desc", "memo", "payee"}
	amountTokens      = []string{"amount"}
)

// dateLayouts are tried in order when parsing a date cell.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"02.01.2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// Parse converts raw CSV content into transactions plus the column mapping
// inferred from the header row. A malformed row never aborts the parse:
// missing fields are best-effort filled (empty description, zero amount)
// so the user can review partial data instead of losing the upload.
func Parse(content string, log logging.Logger) ([]models.Transaction, *models.ColumnMapping, error) {
	if log == nil {
		log = logging.Default()
	}

	lines := nonBlankLines(content)
	if len(lines) == 0 {
		return []models.Transaction{}, &models.ColumnMapping{}, nil
	}

	header := splitRow(lines[0])
	mapping := inferMapping(header)

	transactions := make([]models.Transaction, 0, len(lines)-1)
	for i, line := range lines[1:] {
		fields := splitRow(line)
		tx, rowErrs := buildTransaction(fields, mapping)
		for _, rowErr := range rowErrs {
			log.WithError(rowErr).WithField(logging.FieldRow, i+2).Debug("Best-effort fill for unparseable field")
		}
		if tx.Description == "" && tx.Amount.IsZero() {
			log.WithField(logging.FieldRow, i+2).Debug("Row yielded no usable fields")
		}
		transactions = append(transactions, tx)
	}

	log.WithField(logging.FieldCount, len(transactions)).Debug("Parsed CSV statement")
	return transactions, mapping, nil
}

// inferMapping locates the date, description, and amount columns by
// substring search over the lower-cased header cells. A column that cannot
// be found gets index -1 and its field is best-effort filled per row.
func inferMapping(header []string) *models.ColumnMapping {
	mapping := &models.ColumnMapping{
		Date:        models.ColumnRef{Index: -1},
		Description: models.ColumnRef{Index: -1},
		Amount:      models.ColumnRef{Index: -1},
	}

	for i, cell := range header {
		lowered := strings.ToLower(strings.TrimSpace(cell))
		switch {
		case mapping.Date.Index < 0 && containsAny(lowered, dateTokens):
			mapping.Date = models.ColumnRef{Index: i, Header: strings.TrimSpace(cell)}
		case mapping.Description.Index < 0 && containsAny(lowered, descriptionTokens):
			mapping.Description = models.ColumnRef{Index: i, Header: strings.TrimSpace(cell)}
		case mapping.Amount.Index < 0 && containsAny(lowered, amountTokens):
			mapping.Amount = models.ColumnRef{Index: i, Header: strings.TrimSpace(cell)}
		}
	}

	return mapping
}

// containsAny reports whether the cell contains any of the tokens.
func containsAny(cell string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(cell, token) {
			return true
		}
	}
	return false
}

// buildTransaction assembles one transaction from a row. Fields that fail
// to parse are filled with their zero value and reported as typed parse
// errors so the caller can log them; they never fail the row.
func buildTransaction(fields []string, mapping *models.ColumnMapping) (models.Transaction, []error) {
	var errs []error

	date, err := parseDate(fieldAt(fields, mapping.Date.Index))
	if err != nil {
		errs = append(errs, err)
	}
	amount, err := parseAmount(fieldAt(fields, mapping.Amount.Index))
	if err != nil {
		errs = append(errs, err)
	}

	return models.Transaction{
		ID:          uuid.New().String(),
		Date:        date,
		Description: strings.TrimSpace(fieldAt(fields, mapping.Description.Index)),
		Amount:      amount,
		Category:    models.CategoryUncategorized,
		Confidence:  0,
	}, errs
}

// fieldAt returns the field at index or the empty string when the row is
// shorter than the header promised.
func fieldAt(fields []string, index int) string {
	if index < 0 || index >= len(fields) {
		return ""
	}
	return fields[index]
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &parsererror.ParseError{
		Parser: "csv",
		Field:  "date",
		Value:  value,
		Err:    errors.New("no known date layout matched"),
	}
}

// parseAmount accepts common statement notations: currency symbols,
// thousands separators, and accounting-style parentheses for negatives.
// Anything unparseable becomes zero plus a typed error for the caller to
// log; the row itself survives.
func parseAmount(value string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return decimal.Zero, nil
	}

	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		negative = true
		cleaned = cleaned[1 : len(cleaned)-1]
	}
	cleaned = strings.NewReplacer("$", "", "€", "", "£", "", ",", "", " ", "").Replace(cleaned)

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, &parsererror.ParseError{
			Parser: "csv",
			Field:  "amount",
			Value:  value,
			Err:    err,
		}
	}
	if negative {
		amount = amount.Neg()
	}
	return amount, nil
}

func nonBlankLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// splitRow is the simple path: a plain comma split with no quoted-field
// handling.
func splitRow(line string) []string {
	return strings.Split(line, ",")
}
