// Package segmentation splits a topic's top-N word list into the
// (target, conditioning) segments scored by a confirmation measure.
package segmentation

import (
	"github.com/gcbaptista/go-topic-coherence/model"
)

// Scheme names a segmentation strategy. The set is closed; the pipeline maps
// each coherence measure to exactly one scheme.
type Scheme string

const (
	// SchemeOneVsPreceding pairs every topic word with each word before it.
	SchemeOneVsPreceding Scheme = "one_pre"
	// SchemeOneVsSet pairs every topic word with the full topic word set.
	SchemeOneVsSet Scheme = "one_set"
)

// Func is the signature shared by all segmentation strategies. Input is an
// ordered list of distinct word ids; topics with fewer than two words yield
// an empty segment list.
type Func func(topic []uint32) []model.Segment

// OneVsPreceding emits ({w_i}, {w_j}) for every j < i, preserving topic
// order. A topic of size N produces N(N-1)/2 segments.
func OneVsPreceding(topic []uint32) []model.Segment {
	if len(topic) < 2 {
		return []model.Segment{}
	}

	segments := make([]model.Segment, 0, len(topic)*(len(topic)-1)/2)
	for i := 1; i < len(topic); i++ {
		for j := 0; j < i; j++ {
			segments = append(segments, model.Segment{
				Target:       []uint32{topic[i]},
				Conditioning: []uint32{topic[j]},
			})
		}
	}
	return segments
}

// OneVsSet emits ({w_i}, W) for every topic word, where W is the whole topic
// set including w_i itself. A topic of size N produces N segments.
func OneVsSet(topic []uint32) []model.Segment {
	if len(topic) < 2 {
		return []model.Segment{}
	}

	segments := make([]model.Segment, 0, len(topic))
	for i := 0; i < len(topic); i++ {
		conditioning := make([]uint32, len(topic))
		copy(conditioning, topic)
		segments = append(segments, model.Segment{
			Target:       []uint32{topic[i]},
			Conditioning: conditioning,
		})
	}
	return segments
}

// Distinct removes duplicate word ids while preserving first-seen order.
// Segmentation assumes distinct ids; topic extractions occasionally repeat a
// word and must not inflate the segment count.
func Distinct(topic []uint32) []uint32 {
	seen := make(map[uint32]struct{}, len(topic))
	distinct := make([]uint32, 0, len(topic))
	for _, id := range topic {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}
	return distinct
}
