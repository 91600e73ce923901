// Package parsererror defines the typed errors shared by the statement
// parsers and the categorization pipeline.
package parsererror

import "fmt"

// ParseError reports a failure to parse a single field of an input row.
// Row-level parse failures are recovered by the parsers, never fatal.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s=%q: %v", e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError reports input content that does not conform to the
// format a parser expected.
type InvalidFormatError struct {
	FileName       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in %q: %s (expected %s)", e.FileName, e.Msg, e.ExpectedFormat)
}

// ClassificationError reports a classifier fault for a single transaction.
// The pipeline catches it per transaction and degrades that record to the
// uncategorized state; it never aborts the batch.
type ClassificationError struct {
	TransactionID string
	Stage         string
	Err           error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("classification failed for %s at stage %s: %v", e.TransactionID, e.Stage, e.Err)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}
