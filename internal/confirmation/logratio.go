// Package confirmation scores a segment's word co-occurrence strength from
// probability estimates. Two measures are implemented: log conditional
// probability (the u_mass confirmation) and NPMI context-vector cosine
// similarity (the c_v confirmation).
package confirmation

import (
	"math"

	"github.com/gcbaptista/go-topic-coherence/internal/probability"
	"github.com/gcbaptista/go-topic-coherence/model"
)

// LogConditionalProbability scores a pairwise segment ({w_i}, {w_j}) as
//
//	log((cooc(w_i, w_j) + epsilon) / occ(w_j))
//
// using natural log. Zero co-occurrence lands on the epsilon floor instead of
// failing; a conditioning word never seen in the corpus degrades to log of
// epsilon, the most pessimistic defined score.
func LogConditionalProbability(seg model.Segment, stats *probability.Stats, epsilon float64) float64 {
	target := seg.Target[0]
	conditioning := seg.Conditioning[0]

	occ := stats.Occurrence(conditioning)
	if occ == 0 {
		return math.Log(epsilon)
	}
	cooc := stats.CoOccurrence(target, conditioning)
	return math.Log((float64(cooc) + epsilon) / float64(occ))
}
