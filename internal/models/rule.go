package models

// MatchKind selects how a rule pattern is evaluated against a transaction
// description. The two kinds are dispatched explicitly rather than inferred
// from the pattern text.
type MatchKind string

const (
	// MatchSubstring tests the pattern case-insensitively against the
	// lower-cased description.
	MatchSubstring MatchKind = "substring"
	// MatchRegex compiles the pattern and tests it against the raw
	// description. Case sensitivity is whatever the pattern's own flags say.
	MatchRegex MatchKind = "regex"
)

// Rule priorities. Lower values are evaluated first. User-authored rules are
// always priority 1 so they win over every built-in.
const (
	PriorityUser    = 1
	PriorityBuiltin = 10
)

// Rule maps a description pattern to a target category.
//
// Built-in rules are process-wide constants and are never mutated at
// runtime. User rules are supplied per categorize call; persisting them is
// the caller's concern (see the store package).
type Rule struct {
	ID         string    `yaml:"id"`
	Category   string    `yaml:"category"`
	Priority   int       `yaml:"priority"`
	Confidence float64   `yaml:"confidence"`
	Kind       MatchKind `yaml:"kind"`
	Pattern    string    `yaml:"pattern"`
}
