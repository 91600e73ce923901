package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quillbooks/bookpipe/internal/logging"
	"quillbooks/bookpipe/internal/models"
)

func TestVectorize_IdenticalTextScoresOne(t *testing.T) {
	a := Vectorize("STARBUCKS STORE #9921")
	b := Vectorize("starbucks store 9921")

	// Normalization strips punctuation and case, so these are the same bag
	// of features.
	assert.InDelta(t, 1.0, Cosine(a, b), 1e-9)
}

func TestVectorize_NearMatchScoresHigh(t *testing.T) {
	a := Vectorize("coffee shop espresso latte")
	b := Vectorize("coffee shop espresso")

	score := Cosine(a, b)
	assert.Greater(t, score, 0.5)
	assert.Less(t, score, 1.0)
}

func TestVectorize_UnrelatedTextScoresLow(t *testing.T) {
	a := Vectorize("airline flight ticket baggage")
	b := Vectorize("office supplies paper toner ink")

	assert.Less(t, Cosine(a, b), 0.3)
}

func TestVectorize_EmptyText(t *testing.T) {
	vec := Vectorize("  #$%  ")
	assert.Equal(t, 0.0, Cosine(vec, Vectorize("anything")))
}

func TestCosine_MismatchedLengths(t *testing.T) {
	assert.Equal(t, 0.0, Cosine([]float64{1}, []float64{1, 0}))
	assert.Equal(t, 0.0, Cosine(nil, nil))
}

func TestMatch_BestCategoryWins(t *testing.T) {
	m := NewMatcher(logging.NewMockLogger(), 0.2, nil)

	result := m.Match(models.Transaction{Description: "hotel lodging two night stay"})
	require.NotNil(t, result)
	assert.Equal(t, models.CategoryTravel, result.Category)
	assert.Greater(t, result.Similarity, 0.2)
}

func TestMatch_BelowFloorReturnsNil(t *testing.T) {
	m := NewMatcher(logging.NewMockLogger(), 0.99, nil)

	result := m.Match(models.Transaction{Description: "zzqq vvxx wwyy"})
	assert.Nil(t, result)
}

func TestMatch_CustomExemplars(t *testing.T) {
	exemplars := map[string][]string{
		"Widgets": {"widget assembly line parts"},
	}
	m := NewMatcher(logging.NewMockLogger(), 0.3, exemplars)

	result := m.Match(models.Transaction{Description: "widget parts order"})
	require.NotNil(t, result)
	assert.Equal(t, "Widgets", result.Category)
}

func TestNewMatcher_DefaultFloor(t *testing.T) {
	m := NewMatcher(logging.NewMockLogger(), 0, nil)
	assert.Equal(t, models.EmbeddingFloor, m.floor)
}
