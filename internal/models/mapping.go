package models

// ColumnRef records which source column a canonical field was read from.
type ColumnRef struct {
	Index  int    `json:"index"`
	Header string `json:"header"`
}

// ColumnMapping maps the canonical transaction fields to the CSV columns
// they were inferred from. It is built once per file during header detection
// and attached to the parse result; it is never mutated afterwards.
//
// Only CSV input produces a mapping. OFX and QFX are self-describing.
type ColumnMapping struct {
	Date        ColumnRef `json:"date"`
	Description ColumnRef `json:"description"`
	Amount      ColumnRef `json:"amount"`
}
