package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quillbooks/bookpipe/internal/logging"
	"quillbooks/bookpipe/internal/models"
)

func TestWriteTransactionsToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "transactions.csv")

	batch := []models.Transaction{
		{
			ID:          "tx-1",
			Date:        time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			Description: "STARBUCKS STORE",
			Amount:      decimal.RequireFromString("-12.5"),
			Category:    models.CategoryMeals,
			Confidence:  0.95,
			Source:      models.SourceRule,
		},
		{
			ID:          "tx-2",
			Description: "=MALICIOUS()",
			Amount:      decimal.RequireFromString("3"),
			Category:    models.CategoryUncategorized,
			Source:      models.SourceManual,
			NeedsReview: true,
		},
	}

	require.NoError(t, WriteTransactionsToCSV(batch, path, logging.NewMockLogger()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	lines := strings.Split(strings.TrimSpace(content), "\n")
	require.Len(t, lines, 3, "header plus one line per transaction")

	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, content, "STARBUCKS STORE")
	assert.Contains(t, content, "-12.5")
	assert.Contains(t, content, "'=MALICIOUS()", "dangerous descriptions are escaped in the dump")
	assert.Contains(t, content, "true")
}

func TestWriteTransactionsToCSV_NilBatch(t *testing.T) {
	err := WriteTransactionsToCSV(nil, filepath.Join(t.TempDir(), "out.csv"), logging.NewMockLogger())
	assert.Error(t, err)
}

func TestWriteTransactionsToCSV_EmptyBatchWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteTransactionsToCSV([]models.Transaction{}, path, logging.NewMockLogger()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Date")
}
