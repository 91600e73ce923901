// Package engine implements deterministic, explainable first-match rule
// classification. User-supplied rules always run ahead of the built-in
// vendor table; the first rule whose matcher accepts the description wins.
package engine

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"quillbooks/bookpipe/internal/logging"
	"quillbooks/bookpipe/internal/models"
)

// Match is the outcome of a successful rule evaluation.
type Match struct {
	Category    string
	Explanation *models.Explanation
}

// Engine evaluates rules against transactions. The built-in table is
// immutable, so a single Engine is safe for concurrent use; compiled
// regexes are cached under a read-write lock.
type Engine struct {
	log     logging.Logger
	mu      sync.RWMutex
	regexes map[string]*regexp.Regexp
}

// NewEngine creates a rule engine with the built-in patterns precompiled.
func NewEngine(log logging.Logger) *Engine {
	if log == nil {
		log = logging.Default()
	}

	e := &Engine{
		log:     log,
		regexes: make(map[string]*regexp.Regexp, len(builtinRules)),
	}
	for _, rule := range builtinRules {
		if rule.Kind == models.MatchRegex {
			// Built-in patterns are constants; a compile failure here is a
			// programming error and caught by the package tests.
			e.regexes[rule.Pattern] = regexp.MustCompile(rule.Pattern)
		}
	}
	return e
}

// Apply evaluates userRules then the built-in table against the
// transaction description and returns the first match, or nil when no rule
// matches. User rules are concatenated ahead of the built-ins and the sort
// by priority is stable, so a user rule with equal priority still precedes
// a built-in.
//
// A malformed user regex is returned as an error; the caller isolates it
// to the one transaction being classified.
func (e *Engine) Apply(tx models.Transaction, userRules []models.Rule) (*Match, error) {
	rules := make([]models.Rule, 0, len(userRules)+len(builtinRules))
	rules = append(rules, userRules...)
	rules = append(rules, builtinRules...)
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority < rules[j].Priority
	})

	lowered := strings.ToLower(tx.Description)

	for _, rule := range rules {
		matched, err := e.matches(rule, tx.Description, lowered)
		if err != nil {
			return nil, err
		}
		if !matched {
			continue
		}

		e.log.WithFields(
			logging.Field{Key: logging.FieldRuleID, Value: rule.ID},
			logging.Field{Key: logging.FieldCategory, Value: rule.Category},
			logging.Field{Key: logging.FieldTransaction, Value: tx.ID},
		).Debug("Rule matched transaction")

		return &Match{
			Category:    rule.Category,
			Explanation: models.RuleExplanation(rule.ID, rule.Confidence),
		}, nil
	}

	return nil, nil
}

// matches dispatches on the rule's matcher kind: substring rules test
// case-insensitively against the lower-cased description, regex rules run
// against the raw description with whatever flags the pattern carries.
func (e *Engine) matches(rule models.Rule, raw, lowered string) (bool, error) {
	switch rule.Kind {
	case models.MatchSubstring:
		return strings.Contains(lowered, strings.ToLower(rule.Pattern)), nil
	case models.MatchRegex:
		re, err := e.compile(rule.Pattern)
		if err != nil {
			return false, fmt.Errorf("rule %s: invalid pattern: %w", rule.ID, err)
		}
		return re.MatchString(raw), nil
	default:
		return false, fmt.Errorf("rule %s: unknown matcher kind %q", rule.ID, rule.Kind)
	}
}

func (e *Engine) compile(pattern string) (*regexp.Regexp, error) {
	e.mu.RLock()
	re, ok := e.regexes[pattern]
	e.mu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.regexes[pattern] = re
	e.mu.Unlock()
	return re, nil
}
