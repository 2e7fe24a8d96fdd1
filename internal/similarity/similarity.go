// Package similarity provides cosine similarity scoring and deterministic
// top-k ranking over cached embedding vectors.
package similarity

import (
	"log/slog"
	"math"
	"sort"
)

// Score computes the cosine similarity of two vectors, in [-1, 1].
//
// A zero-magnitude vector (including an empty one) scores 0 against
// anything rather than producing NaN. Vectors of different lengths are
// compared over their shared prefix; a mismatch is logged because it
// usually signals embedding model drift rather than an intended state.
func Score(a, b []float64) float64 {
	if len(a) != len(b) && len(a) > 0 && len(b) > 0 {
		slog.Warn("embedding length mismatch, comparing shared prefix", "len_a", len(a), "len_b", len(b))
	}

	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Candidate is a publication eligible for ranking.
type Candidate struct {
	ID        string
	Title     string
	Link      string
	Embedding []float64
}

// Match is a ranked search hit.
type Match struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Link  string  `json:"link"`
	Score float64 `json:"score"`
}

// TopK ranks candidates against the query vector and returns at most k
// matches in descending score order.
//
// Candidates without an embedding are excluded before scoring, and
// candidates whose score is not strictly positive are dropped: zero or
// negative cosine similarity means "not relevant". Ties keep the original
// input order, so results are deterministic for a deterministic input.
func TopK(query []float64, candidates []Candidate, k int) []Match {
	scored := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		if len(c.Embedding) == 0 {
			continue
		}
		score := Score(query, c.Embedding)
		if score <= 0 {
			continue
		}
		scored = append(scored, Match{ID: c.ID, Title: c.Title, Link: c.Link, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if k >= 0 && len(scored) > k {
		scored = scored[:k]
	}
	return scored
}
