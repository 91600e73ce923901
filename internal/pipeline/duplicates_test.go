package pipeline

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quillbooks/bookpipe/internal/models"
)

func dupTx(day int, description, amount string) models.Transaction {
	return models.Transaction{
		Date:        time.Date(2026, 4, day, 0, 0, 0, 0, time.UTC),
		Description: description,
		Amount:      decimal.RequireFromString(amount),
	}
}

func TestMarkDuplicates(t *testing.T) {
	batch := []models.Transaction{
		dupTx(1, "STARBUCKS STORE #9921", "-12.5"),
		dupTx(1, "STARBUCKS STORE #9925", "-12.5"), // near-identical, same day and amount
		dupTx(2, "STARBUCKS STORE #9921", "-12.5"), // different day
		dupTx(1, "STARBUCKS STORE #9921", "-13.5"), // different amount
		dupTx(1, "COMPLETELY DIFFERENT VENDOR", "-12.5"),
	}

	out := MarkDuplicates(batch)
	require.Len(t, out, 5)

	assert.False(t, out[0].Duplicate, "first occurrence stays unflagged")
	assert.True(t, out[1].Duplicate, "near-identical repeat is flagged")
	assert.False(t, out[2].Duplicate, "different date is not a duplicate")
	assert.False(t, out[3].Duplicate, "different amount is not a duplicate")
	assert.False(t, out[4].Duplicate, "distant description is not a duplicate")
}

func TestMarkDuplicates_CaseAndWhitespaceInsensitive(t *testing.T) {
	batch := []models.Transaction{
		dupTx(1, "Starbucks  Store", "-12.5"),
		dupTx(1, "STARBUCKS STORE", "-12.5"),
	}

	out := MarkDuplicates(batch)
	assert.False(t, out[0].Duplicate)
	assert.True(t, out[1].Duplicate)
}

func TestMarkDuplicates_Empty(t *testing.T) {
	assert.Empty(t, MarkDuplicates(nil))
}
