package model

// Topic is the ordered list of top-N words for one latent theme produced by a
// topic model, highest-weight word first. Topics are read-only inputs to the
// coherence pipeline; the pipeline never mutates them.
type Topic []string

// TopicProvider supplies topics for evaluation. A trained topic model adapter
// implements this so the pipeline can consume models and pre-extracted word
// lists uniformly.
type TopicProvider interface {
	Topics() []Topic
}

// TopicList is the pre-extracted form of topics. It satisfies TopicProvider so
// both input forms flow through the same evaluation path.
type TopicList []Topic

// Topics implements TopicProvider.
func (tl TopicList) Topics() []Topic { return tl }

// Segment is one (target, conditioning) word-id pair of subsets derived from a
// topic by a segmentation scheme. Confirmation measures score how well the
// target words co-occur with the conditioning words.
type Segment struct {
	Target       []uint32
	Conditioning []uint32
}

// TopicScore holds the per-topic aggregate of segment confirmation scores.
// Skipped is true for topics with fewer than two distinct words; such topics
// produce no segments and are excluded from the overall mean.
type TopicScore struct {
	Topic        Topic   `json:"topic"`
	Score        float64 `json:"score"`
	SegmentCount int     `json:"segment_count"`
	Skipped      bool    `json:"skipped,omitempty"`
}

// CoherenceResult is the outcome of one coherence evaluation: the overall
// score (mean of scorable per-topic scores) plus the per-topic breakdown.
type CoherenceResult struct {
	Measure      string       `json:"measure"`
	Score        float64      `json:"score"`
	TopicScores  []TopicScore `json:"topic_scores"`
	EvaluationID string       `json:"evaluation_id"`
	Took         int64        `json:"took"` // milliseconds
}
