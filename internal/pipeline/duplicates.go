package pipeline

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"quillbooks/bookpipe/internal/models"
)

// duplicateMaxDistance is the largest Levenshtein distance between
// normalized descriptions still considered the same transaction. Bank
// exports repeat a line with a shifted reference number more often than
// with a reworded description.
const duplicateMaxDistance = 3

// MarkDuplicates flags transactions that repeat an earlier line in the
// same batch: same calendar date, same amount, and a near-identical
// description. The first occurrence stays unflagged; later ones get
// Duplicate set. The input slice is modified in place and returned.
func MarkDuplicates(transactions []models.Transaction) []models.Transaction {
	type key struct {
		date   string
		amount string
	}

	seen := make(map[key][]string)
	for i := range transactions {
		k := key{
			date:   transactions[i].Date.Format("2006-01-02"),
			amount: transactions[i].Amount.String(),
		}
		desc := normalizeDescription(transactions[i].Description)

		for _, earlier := range seen[k] {
			if levenshtein.ComputeDistance(desc, earlier) <= duplicateMaxDistance {
				transactions[i].Duplicate = true
				break
			}
		}
		if !transactions[i].Duplicate {
			seen[k] = append(seen[k], desc)
		}
	}

	return transactions
}

func normalizeDescription(desc string) string {
	return strings.Join(strings.Fields(strings.ToLower(desc)), " ")
}
