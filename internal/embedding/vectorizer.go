package embedding

import (
	"hash/fnv"
	"math"
	"strings"
)

// vectorDim is the dimensionality of the hashed lexical vectors. Large
// enough that unrelated descriptions rarely collide, small enough that a
// batch of vectors stays cheap.
const vectorDim = 256

// Vectorize builds an L2-normalized lexical vector for a piece of
// description text: a hashed bag of lower-cased word tokens plus character
// trigrams. Trigrams let near-matches ("STARBUCKS #123" vs "starbucks")
// score high without any external embedding service; whole-word hashes
// keep distinct vendors apart.
func Vectorize(text string) []float64 {
	vec := make([]float64, vectorDim)

	normalized := normalize(text)
	if normalized == "" {
		return vec
	}

	for _, token := range strings.Fields(normalized) {
		addFeature(vec, "w:"+token, 2.0)
		for _, trigram := range trigrams(token) {
			addFeature(vec, "t:"+trigram, 1.0)
		}
	}

	return l2Normalize(vec)
}

// normalize lower-cases and strips everything but letters, digits, and
// spaces. Statement noise like "#12345" or "POS 887" collapses to tokens
// that either match an exemplar or hash away harmlessly.
func normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.TrimSpace(b.String())
}

func trigrams(token string) []string {
	if len(token) < 3 {
		return []string{token}
	}
	grams := make([]string, 0, len(token)-2)
	for i := 0; i+3 <= len(token); i++ {
		grams = append(grams, token[i:i+3])
	}
	return grams
}

func addFeature(vec []float64, feature string, weight float64) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(feature))
	vec[h.Sum32()%vectorDim] += weight
}

func l2Normalize(vec []float64) []float64 {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return vec
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// Cosine returns the cosine similarity of two vectors, clamped to [0, 1].
// All feature weights are non-negative, so the similarity of normalized
// vectors already lands in that range; the clamp guards against floating
// point drift.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	if dot < 0 {
		return 0
	}
	if dot > 1 {
		return 1
	}
	return dot
}
