// Package sanitize neutralizes spreadsheet formula-injection payloads in
// tabular data and serializes sanitized tables to CSV text.
//
// Spreadsheet software interprets cells starting with '=', '+', '-', '@' or
// a tab as formulas. A bank statement description is attacker-controlled
// text, so every cell that ends up in an exported CSV is routed through
// Field before serialization. All functions in this package are pure and
// total: they never return an error and never panic.
package sanitize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// dangerousPrefixes are the characters that make a spreadsheet treat a cell
// as a formula when they appear first.
const dangerousPrefixes = "=+-@\t"

// Field returns the CSV-safe form of a single cell value.
//
// Numbers (including negative ones) are stringified as-is: a numeric type
// can never carry a formula, so the leading '-' of a negative amount is not
// escaped. Nil becomes the empty string. A non-empty string whose first
// character is a dangerous prefix is returned with a single leading
// apostrophe; everything else is returned unchanged.
//
// Field is deliberately not idempotent. The prefix test looks past leading
// apostrophes (so "'=cmd" cannot smuggle a formula through a spreadsheet
// that strips the quote), which means each call adds exactly one more
// apostrophe to an already-escaped value. Callers must sanitize exactly
// once, at serialization time.
func Field(value any) string {
	s, isString := stringify(value)
	if !isString {
		return s
	}
	if hasDangerousPrefix(s) {
		return "'" + s
	}
	return s
}

// IsDangerous reports whether the string representation of value would be
// escaped by Field. Numbers and nil are never dangerous, whatever their
// sign.
func IsDangerous(value any) bool {
	s, isString := stringify(value)
	return isString && hasDangerousPrefix(s)
}

// Row sanitizes every cell of a row, preserving order and length.
func Row(row []any) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = Field(cell)
	}
	return out
}

// Table sanitizes every row of a table, header row included. If header text
// itself starts with a dangerous prefix it is escaped like any other cell.
func Table(table [][]any) [][]string {
	out := make([][]string, len(table))
	for i, row := range table {
		out[i] = Row(row)
	}
	return out
}

// DangerousFieldCount counts the cells across the whole table (header
// included) that IsDangerous flags. Used for telemetry and tests, never for
// blocking an export.
func DangerousFieldCount(table [][]any) int {
	count := 0
	for _, row := range table {
		for _, cell := range row {
			if IsDangerous(cell) {
				count++
			}
		}
	}
	return count
}

// RowsToCSV serializes a table of already-sanitized fields to CSV text.
// Fields are comma-joined; a field containing a comma, a double quote or a
// newline is wrapped in double quotes with embedded quotes doubled. Rows
// are newline-joined with no trailing newline, so an empty table yields the
// empty string.
func RowsToCSV(rows [][]string) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, field := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escapeField(field))
		}
	}
	return b.String()
}

// escapeField quotes a field when it contains a character that would break
// the row structure.
func escapeField(field string) string {
	if !strings.ContainsAny(field, ",\"\n\r") {
		return field
	}
	return "\"" + strings.ReplaceAll(field, "\"", "\"\"") + "\""
}

func hasDangerousPrefix(s string) bool {
	trimmed := strings.TrimLeft(s, "'")
	if trimmed == "" {
		return false
	}
	return strings.IndexByte(dangerousPrefixes, trimmed[0]) >= 0
}

// stringify converts a cell value to its string form and reports whether
// the value should be subject to the dangerous-prefix test. Numeric types
// and nil are exempt.
func stringify(value any) (s string, isString bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), false
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v), false
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), false
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), false
	case decimal.Decimal:
		return v.String(), false
	case bool:
		return strconv.FormatBool(v), false
	default:
		// Anything unexpected is treated as untrusted text.
		return fmt.Sprint(v), true
	}
}
