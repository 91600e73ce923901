package models

// Classification stages, recorded in Explanation.Stage.
const (
	StageRule      = "rule"
	StageEmbedding = "embedding"
)

// Explanation records the provenance of a categorization decision.
//
// Exactly one of RuleID and Similarity is populated, matching Stage: a rule
// match names the rule that fired, an embedding match carries the raw
// similarity score against the winning category exemplar.
type Explanation struct {
	Stage      string   `json:"stage" yaml:"stage"`
	Confidence float64  `json:"confidence" yaml:"confidence"`
	RuleID     string   `json:"ruleId,omitempty" yaml:"rule_id,omitempty"`
	Similarity *float64 `json:"similarity,omitempty" yaml:"similarity,omitempty"`
}

// RuleExplanation builds the explanation payload for a rule match.
func RuleExplanation(ruleID string, confidence float64) *Explanation {
	return &Explanation{
		Stage:      StageRule,
		Confidence: confidence,
		RuleID:     ruleID,
	}
}

// EmbeddingExplanation builds the explanation payload for an embedding match.
func EmbeddingExplanation(similarity float64) *Explanation {
	s := similarity
	return &Explanation{
		Stage:      StageEmbedding,
		Confidence: similarity,
		Similarity: &s,
	}
}
