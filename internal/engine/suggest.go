package engine

import (
	"regexp"
	"strings"

	"quillbooks/bookpipe/internal/models"
)

var wordRunRegex = regexp.MustCompile(`[A-Za-z]+`)

// SuggestRuleFromEdit derives a candidate rule from a user's manual
// correction of a transaction's category. The matcher is the first
// alphabetic word run of the description, lower-cased, which is usually the
// vendor token ("STARBUCKS COFFEE #123" suggests "starbucks"). The rule
// gets priority 1 so it outranks every built-in.
//
// The suggestion is advisory: persisting it is the caller's concern.
// Returns false when the description contains no alphabetic run to anchor
// a rule on.
func SuggestRuleFromEdit(tx models.Transaction, userCategory string) (models.Rule, bool) {
	fragment := wordRunRegex.FindString(tx.Description)
	if fragment == "" || userCategory == "" {
		return models.Rule{}, false
	}

	fragment = strings.ToLower(fragment)
	return models.Rule{
		ID:         "u-" + fragment,
		Category:   userCategory,
		Priority:   models.PriorityUser,
		Confidence: models.UserRuleConfidence,
		Kind:       models.MatchSubstring,
		Pattern:    fragment,
	}, true
}
