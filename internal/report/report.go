// Package report summarizes a categorized batch for logging and CLI
// output.
package report

import (
	"fmt"
	"sort"
	"strings"

	"quillbooks/bookpipe/internal/models"
)

// Summary aggregates the outcome of one categorize run.
type Summary struct {
	Total       int
	BySource    map[string]int
	ByCategory  map[string]int
	NeedsReview int
	Duplicates  int
}

// Summarize counts classification outcomes across a batch.
func Summarize(transactions []models.Transaction) Summary {
	s := Summary{
		Total:      len(transactions),
		BySource:   make(map[string]int),
		ByCategory: make(map[string]int),
	}

	for _, tx := range transactions {
		s.BySource[tx.Source]++
		s.ByCategory[tx.Category]++
		if tx.NeedsReview {
			s.NeedsReview++
		}
		if tx.Duplicate {
			s.Duplicates++
		}
	}

	return s
}

// String renders the summary as a short multi-line report.
func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d transactions categorized\n", s.Total)
	fmt.Fprintf(&b, "  by rule: %d, by embedding: %d, uncategorized: %d\n",
		s.BySource[models.SourceRule], s.BySource[models.SourceEmbedding], s.BySource[models.SourceManual])
	fmt.Fprintf(&b, "  needs review: %d, duplicates: %d\n", s.NeedsReview, s.Duplicates)

	categories := make([]string, 0, len(s.ByCategory))
	for category := range s.ByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		fmt.Fprintf(&b, "  %-28s %d\n", category, s.ByCategory[category])
	}

	return strings.TrimRight(b.String(), "\n")
}
