// Package aggregation reduces per-segment confirmation scores to per-topic
// values and per-topic values to the final coherence scalar.
package aggregation

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// MeanSegments reduces one topic's segment scores via arithmetic mean. A
// topic with no segments (fewer than two distinct words) yields NaN, the
// documented sentinel for "no confirmation computable".
func MeanSegments(scores []float64) float64 {
	if len(scores) == 0 {
		return math.NaN()
	}
	return stat.Mean(scores, nil)
}

// MeanTopics reduces per-topic scores to the overall coherence value. NaN
// entries (topics without segments) are excluded from the mean rather than
// propagated; if no topic is scorable the result is NaN.
func MeanTopics(topicScores []float64) float64 {
	scorable := make([]float64, 0, len(topicScores))
	for _, score := range topicScores {
		if math.IsNaN(score) {
			continue
		}
		scorable = append(scorable, score)
	}
	if len(scorable) == 0 {
		return math.NaN()
	}
	return stat.Mean(scorable, nil)
}
