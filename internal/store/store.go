// Package store persists user-authored rules as YAML. The categorization
// core never writes rules itself; suggestions derived from manual edits
// land here only when the caller decides to keep them.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"quillbooks/bookpipe/internal/logging"
	"quillbooks/bookpipe/internal/models"
)

// rulesFile is the YAML document shape: a top-level "rules" key over a
// list of rule entries.
type rulesFile struct {
	Rules []models.Rule `yaml:"rules"`
}

// RuleStore loads and saves user rules from a YAML file.
type RuleStore struct {
	Path string
	log  logging.Logger
}

// NewRuleStore creates a store for the given rules file. A relative path
// is searched for in the standard config locations on load.
func NewRuleStore(path string, log logging.Logger) *RuleStore {
	if log == nil {
		log = logging.Default()
	}
	if path == "" {
		path = "rules.yaml"
	}
	return &RuleStore{Path: path, log: log}
}

// findFile looks for the rules file in standard locations: the path as
// given, ./config, and ~/.config/bookpipe.
func (s *RuleStore) findFile() (string, error) {
	if filepath.IsAbs(s.Path) {
		if _, err := os.Stat(s.Path); err == nil {
			return s.Path, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		s.Path,
		filepath.Join("config", s.Path),
	}
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(home, ".config", "bookpipe", s.Path))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// Load reads the user rules. A missing file is not an error: it returns an
// empty slice, since a fresh install has no rules yet. Loaded rules are
// normalized to user priority so they always outrank built-ins.
func (s *RuleStore) Load() ([]models.Rule, error) {
	path, err := s.findFile()
	if err != nil {
		if os.IsNotExist(err) {
			s.log.WithField(logging.FieldFile, s.Path).Debug("No user rules file found")
			return []models.Rule{}, nil
		}
		return nil, fmt.Errorf("error resolving rules file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	var doc rulesFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing rules file: %w", err)
	}

	for i := range doc.Rules {
		if doc.Rules[i].Priority <= 0 {
			doc.Rules[i].Priority = models.PriorityUser
		}
		if doc.Rules[i].Confidence <= 0 {
			doc.Rules[i].Confidence = models.UserRuleConfidence
		}
		if doc.Rules[i].Kind == "" {
			doc.Rules[i].Kind = models.MatchSubstring
		}
	}

	s.log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(doc.Rules)},
	).Debug("Loaded user rules")

	return doc.Rules, nil
}

// Save writes the user rules back to the file, creating the parent
// directory if needed.
func (s *RuleStore) Save(rules []models.Rule) error {
	path, err := s.findFile()
	if err != nil {
		// New file: write to the path as given.
		path = s.Path
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
			return fmt.Errorf("error creating rules directory: %w", err)
		}
	}

	data, err := yaml.Marshal(rulesFile{Rules: rules})
	if err != nil {
		return fmt.Errorf("error marshaling rules: %w", err)
	}

	if err := os.WriteFile(path, data, models.PermissionConfigFile); err != nil {
		return fmt.Errorf("error writing rules file: %w", err)
	}

	s.log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(rules)},
	).Debug("Saved user rules")

	return nil
}

// Append loads the existing rules, appends the given rule (replacing any
// rule with the same ID), and saves the result.
func (s *RuleStore) Append(rule models.Rule) error {
	rules, err := s.Load()
	if err != nil {
		return err
	}

	replaced := false
	for i := range rules {
		if rules[i].ID == rule.ID {
			rules[i] = rule
			replaced = true
			break
		}
	}
	if !replaced {
		rules = append(rules, rule)
	}

	return s.Save(rules)
}
