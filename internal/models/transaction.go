// Package models provides the data structures shared by the statement
// parsers, the categorization pipeline, and the export formatters.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Classification sources. A transaction carries exactly one of these after
// it has been through the pipeline.
const (
	SourceRule      = "rule"
	SourceEmbedding = "embedding"
	SourceManual    = "manual"
)

// Transaction represents one bank or card line item.
//
// Amount is signed: negative is a debit (expense), positive is a credit
// (revenue). Description is free text straight from the statement and must
// be treated as untrusted for export purposes.
//
// A Transaction is created by a parser with Category defaulted to
// Uncategorized and Confidence 0, annotated exactly once by the pipeline,
// and never mutated afterwards except by an explicit user edit.
type Transaction struct {
	ID          string          `json:"id" yaml:"id"`
	Date        time.Time       `json:"date" yaml:"date"`
	Description string          `json:"description" yaml:"description"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Category    string          `json:"category" yaml:"category"`
	Confidence  float64         `json:"confidence" yaml:"confidence"`
	Source      string          `json:"source,omitempty" yaml:"source,omitempty"`
	Explanation *Explanation    `json:"explanation,omitempty" yaml:"explanation,omitempty"`
	NeedsReview bool            `json:"needsReview" yaml:"needs_review"`
	Duplicate   bool            `json:"duplicate" yaml:"duplicate"`
}

// IsDebit returns true if the transaction amount is negative.
func (t Transaction) IsDebit() bool {
	return t.Amount.IsNegative()
}

// IsCredit returns true if the transaction amount is positive.
func (t Transaction) IsCredit() bool {
	return t.Amount.IsPositive()
}
