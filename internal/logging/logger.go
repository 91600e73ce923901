// Package logging provides a small structured-logging abstraction so the
// rest of the module never imports a logging framework directly.
package logging

// Logger is the structured logger used throughout the module.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a logger with an error field attached.
	WithError(err error) Logger
	// WithField returns a logger with a single field attached.
	WithField(key string, value interface{}) Logger
	// WithFields returns a logger with multiple fields attached.
	WithFields(fields ...Field) Logger
}

// Field is a key-value pair attached to a log message.
type Field struct {
	Key   string
	Value interface{}
}

// Standardized field names. Using the same keys everywhere keeps the log
// output filterable.
const (
	FieldFile        = "file"
	FieldFormat      = "format"
	FieldCount       = "count"
	FieldRow         = "row"
	FieldRuleID      = "rule_id"
	FieldCategory    = "category"
	FieldSource      = "source"
	FieldConfidence  = "confidence"
	FieldSimilarity  = "similarity"
	FieldTransaction = "transaction_id"
)
