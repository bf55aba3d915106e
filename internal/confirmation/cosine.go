package confirmation

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/gcbaptista/go-topic-coherence/internal/probability"
	"github.com/gcbaptista/go-topic-coherence/model"
)

// CosineNPMI scores a segment by indirect confirmation: each side of the
// segment is turned into a context vector of NPMI values against every word
// of the topic, and the two vectors are compared by cosine similarity. The
// conditioning side's vector is the sum of its members' vectors. Results lie
// in [-1, 1].
func CosineNPMI(seg model.Segment, topic []uint32, stats *probability.Stats, epsilon float64) float64 {
	targetVec := contextVector(seg.Target, topic, stats, epsilon)
	conditioningVec := contextVector(seg.Conditioning, topic, stats, epsilon)
	return cosine(targetVec, conditioningVec)
}

// contextVector builds the summed NPMI context vector of a word set over the
// topic's word dimensions.
func contextVector(set []uint32, topic []uint32, stats *probability.Stats, epsilon float64) []float64 {
	vec := make([]float64, len(topic))
	for _, w := range set {
		for k, dim := range topic {
			vec[k] += npmi(w, dim, stats, epsilon)
		}
	}
	return vec
}

// npmi computes normalized pointwise mutual information between two words
// from boolean sliding-window probabilities:
//
//	pmi  = log((p(x,y) + epsilon) / (p(x) * p(y)))
//	npmi = pmi / -log(p(x,y) + epsilon)
//
// A word pair where either side never occurs contributes 0. The result is
// clamped to [-1, 1] to absorb the epsilon perturbation at the boundaries.
func npmi(x, y uint32, stats *probability.Stats, epsilon float64) float64 {
	px := stats.Probability(x)
	py := stats.Probability(y)
	if px == 0 || py == 0 {
		return 0
	}

	// p(x,x) is p(x) by construction; CoOccurrence handles the identity case.
	pxy := stats.JointProbability(x, y)

	numerator := math.Log((pxy + epsilon) / (px * py))
	denominator := -math.Log(pxy + epsilon)
	if denominator == 0 {
		return 0
	}

	value := numerator / denominator
	if value > 1 {
		return 1
	}
	if value < -1 {
		return -1
	}
	return value
}

// cosine computes cosine similarity between two equal-length vectors,
// returning 0 when either vector is zero.
func cosine(a, b []float64) float64 {
	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0
	}
	return floats.Dot(a, b) / (normA * normB)
}
