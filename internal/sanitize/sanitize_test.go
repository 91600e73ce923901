package sanitize

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestField(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{
			name:     "plain string unchanged",
			value:    "STARBUCKS COFFEE #12345",
			expected: "STARBUCKS COFFEE #12345",
		},
		{
			name:     "equals prefix escaped",
			value:    "=MALICIOUS",
			expected: "'=MALICIOUS",
		},
		{
			name:     "plus prefix escaped",
			value:    "+1234567890",
			expected: "'+1234567890",
		},
		{
			name:     "minus prefix escaped",
			value:    "-42.50",
			expected: "'-42.50",
		},
		{
			name:     "at prefix escaped",
			value:    "@SUM(A1:A9)",
			expected: "'@SUM(A1:A9)",
		},
		{
			name:     "tab prefix escaped",
			value:    "\t=cmd",
			expected: "'\t=cmd",
		},
		{
			name:     "dangerous char mid-string unchanged",
			value:    "A=B",
			expected: "A=B",
		},
		{
			name:     "empty string unchanged",
			value:    "",
			expected: "",
		},
		{
			name:     "nil becomes empty string",
			value:    nil,
			expected: "",
		},
		{
			name:     "negative int not escaped",
			value:    -42,
			expected: "-42",
		},
		{
			name:     "negative float not escaped",
			value:    -42.5,
			expected: "-42.5",
		},
		{
			name:     "negative decimal not escaped",
			value:    decimal.RequireFromString("-42.5"),
			expected: "-42.5",
		},
		{
			name:     "positive int stringified",
			value:    7,
			expected: "7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Field(tt.value))
		})
	}
}

// Field is not idempotent: each call adds exactly one apostrophe because
// the prefix test looks past leading quotes. Callers sanitize once.
func TestField_NotIdempotent(t *testing.T) {
	once := Field("=MALICIOUS")
	assert.Equal(t, "'=MALICIOUS", once)

	twice := Field(once)
	assert.Equal(t, "''=MALICIOUS", twice)
}

func TestField_QuoteSmuggling(t *testing.T) {
	// A value that arrives pre-quoted is still dangerous: spreadsheets strip
	// the apostrophe, so it gains another one.
	assert.Equal(t, "''=2+2", Field("'=2+2"))
	assert.True(t, IsDangerous("'=2+2"))
}

func TestIsDangerous(t *testing.T) {
	assert.True(t, IsDangerous("=SUM(A1)"))
	assert.True(t, IsDangerous("+payload"))
	assert.True(t, IsDangerous("-payload"))
	assert.True(t, IsDangerous("@payload"))
	assert.True(t, IsDangerous("\tpayload"))

	assert.False(t, IsDangerous("safe"))
	assert.False(t, IsDangerous(""))
	assert.False(t, IsDangerous(nil))
	assert.False(t, IsDangerous(-99))
	assert.False(t, IsDangerous(-99.9))
	assert.False(t, IsDangerous(decimal.RequireFromString("-17.25")))
}

func TestRow(t *testing.T) {
	row := Row([]any{"=bad", "ok", nil, -3})
	assert.Equal(t, []string{"'=bad", "ok", "", "-3"}, row)
}

func TestTable_HeaderIncluded(t *testing.T) {
	table := Table([][]any{
		{"=Header", "Amount"},
		{"safe", -1.5},
	})
	assert.Equal(t, [][]string{
		{"'=Header", "Amount"},
		{"safe", "-1.5"},
	}, table)
}

func TestDangerousFieldCount(t *testing.T) {
	table := [][]any{
		{"Date", "Description", "Amount"},
		{"2024-01-02", "=HYPERLINK(evil)", -10.0},
		{"2024-01-03", "safe vendor", -20.0},
		{"2024-01-04", "@import", -30.0},
	}
	assert.Equal(t, 2, DangerousFieldCount(table))
}

func TestRowsToCSV(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		expected string
	}{
		{
			name:     "empty table",
			rows:     nil,
			expected: "",
		},
		{
			name:     "simple alphanumeric round trip",
			rows:     [][]string{{"a", "b"}, {"c", "d"}},
			expected: "a,b\nc,d",
		},
		{
			name:     "comma forces quoting",
			rows:     [][]string{{"a,b", "c"}},
			expected: "\"a,b\",c",
		},
		{
			name:     "embedded quote doubled",
			rows:     [][]string{{`say "hi"`, "x"}},
			expected: `"say ""hi""",x`,
		},
		{
			name:     "newline forces quoting",
			rows:     [][]string{{"line1\nline2"}},
			expected: "\"line1\nline2\"",
		},
		{
			name:     "no trailing newline",
			rows:     [][]string{{"only"}},
			expected: "only",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RowsToCSV(tt.rows))
		})
	}
}
