// Package pipeline wires segmentation, probability estimation, confirmation
// and aggregation into one coherence evaluation per named measure. The
// measure-to-stages binding is a closed dispatch table: the set of supported
// measures is fixed and small.
package pipeline

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/gcbaptista/go-topic-coherence/config"
	"github.com/gcbaptista/go-topic-coherence/corpus"
	"github.com/gcbaptista/go-topic-coherence/internal/aggregation"
	"github.com/gcbaptista/go-topic-coherence/internal/confirmation"
	"github.com/gcbaptista/go-topic-coherence/internal/errors"
	"github.com/gcbaptista/go-topic-coherence/internal/probability"
	"github.com/gcbaptista/go-topic-coherence/internal/segmentation"
	"github.com/gcbaptista/go-topic-coherence/model"
)

// Measure names a supported coherence measure.
type Measure string

const (
	// MeasureUMass uses document co-occurrence and log conditional probability.
	MeasureUMass Measure = "u_mass"
	// MeasureCV uses sliding-window co-occurrence and NPMI cosine similarity.
	MeasureCV Measure = "c_v"
)

// Stages identifies the stage implementations bound to a measure, exposed
// read-only for introspection and debugging.
type Stages struct {
	Segmentation string `json:"segmentation"`
	Estimation   string `json:"estimation"`
	Confirmation string `json:"confirmation"`
}

// binding holds the (segmentation, estimation, confirmation) triple for one
// measure together with which reference-statistics source it consumes.
type binding struct {
	stages     Stages
	segment    segmentation.Func
	needsTexts bool // texts for window estimation, otherwise bag-of-words docs
	estimate   func(p *Pipeline, req *probability.Request) *probability.Stats
	confirm    func(seg model.Segment, topic []uint32, stats *probability.Stats, epsilon float64) float64
}

var bindings = map[Measure]binding{
	MeasureUMass: {
		stages: Stages{
			Segmentation: string(segmentation.SchemeOneVsPreceding),
			Estimation:   "boolean_document",
			Confirmation: "log_cond_prob",
		},
		segment: segmentation.OneVsPreceding,
		estimate: func(p *Pipeline, req *probability.Request) *probability.Stats {
			return probability.BooleanDocument(p.bow, req, p.settings.Workers)
		},
		confirm: func(seg model.Segment, _ []uint32, stats *probability.Stats, epsilon float64) float64 {
			return confirmation.LogConditionalProbability(seg, stats, epsilon)
		},
	},
	MeasureCV: {
		stages: Stages{
			Segmentation: string(segmentation.SchemeOneVsSet),
			Estimation:   "boolean_sliding_window",
			Confirmation: "cosine_npmi",
		},
		segment:    segmentation.OneVsSet,
		needsTexts: true,
		estimate: func(p *Pipeline, req *probability.Request) *probability.Stats {
			return probability.BooleanSlidingWindow(p.texts, p.settings.WindowSize, req, p.settings.Workers)
		},
		confirm: confirmation.CosineNPMI,
	},
}

// StagesFor returns the stage identifiers bound to measure without building
// a full pipeline, for introspection surfaces.
func StagesFor(m Measure) (Stages, error) {
	b, ok := bindings[m]
	if !ok {
		return Stages{}, errors.NewUnknownMeasureError(string(m), SupportedMeasures())
	}
	return b.stages, nil
}

// SupportedMeasures returns the recognized measure names, sorted.
func SupportedMeasures() []string {
	names := make([]string, 0, len(bindings))
	for m := range bindings {
		names = append(names, string(m))
	}
	sort.Strings(names)
	return names
}

// Pipeline is one configured coherence evaluation: a measure binding plus the
// dictionary and reference data it will scan. Segments, statistics and scores
// are transient and recomputed on every Evaluate call.
type Pipeline struct {
	settings config.CoherenceSettings
	binding  binding
	dict     *corpus.Dictionary
	bow      []corpus.BowDocument
	texts    [][]uint32
}

// New validates the configuration and builds a pipeline. Configuration
// problems (unknown measure, missing reference data) surface here, before
// any corpus scan.
func New(settings config.CoherenceSettings, dict *corpus.Dictionary, bow []corpus.BowDocument, texts [][]uint32) (*Pipeline, error) {
	settings.ApplyDefaults()

	b, ok := bindings[Measure(settings.Measure)]
	if !ok {
		return nil, errors.NewUnknownMeasureError(settings.Measure, SupportedMeasures())
	}
	if dict == nil {
		return nil, errors.NewValidationError("dictionary", "a dictionary is required")
	}
	if b.needsTexts && len(texts) == 0 {
		return nil, errors.NewMissingReferenceError(settings.Measure, "tokenized texts")
	}
	if !b.needsTexts && len(bow) == 0 {
		return nil, errors.NewMissingReferenceError(settings.Measure, "a bag-of-words corpus")
	}

	return &Pipeline{
		settings: settings,
		binding:  b,
		dict:     dict,
		bow:      bow,
		texts:    texts,
	}, nil
}

// Stages returns the stage identifiers selected for this pipeline's measure.
func (p *Pipeline) Stages() Stages {
	return p.binding.stages
}

// Settings returns the effective settings after defaulting.
func (p *Pipeline) Settings() config.CoherenceSettings {
	return p.settings
}

// EvaluateProvider evaluates topics supplied by a topic-model collaborator.
func (p *Pipeline) EvaluateProvider(provider model.TopicProvider) (model.CoherenceResult, error) {
	if provider == nil {
		return model.CoherenceResult{}, errors.NewValidationError("topics", "a topic provider or topic list is required")
	}
	return p.Evaluate(provider.Topics())
}

// Evaluate runs the four stages in order: segmentation per topic, one batched
// probability-estimation pass over all topics' segments, confirmation per
// segment, then aggregation. Vocabulary problems surface before the corpus
// scan.
func (p *Pipeline) Evaluate(topics []model.Topic) (model.CoherenceResult, error) {
	start := time.Now()

	if len(topics) == 0 {
		return model.CoherenceResult{}, errors.NewValidationError("topics", "at least one topic is required")
	}

	topicIDs, err := p.resolveTopics(topics)
	if err != nil {
		return model.CoherenceResult{}, err
	}

	// Segmentation, then one count request across all topics so estimation
	// scans the corpus exactly once.
	topicSegments := make([][]model.Segment, len(topicIDs))
	req := probability.NewRequest()
	for i, ids := range topicIDs {
		topicSegments[i] = p.binding.segment(ids)
		req.AddSegments(topicSegments[i])
	}

	stats := p.binding.estimate(p, req)

	topicScores := make([]model.TopicScore, len(topics))
	perTopic := make([]float64, len(topics))
	for i, segments := range topicSegments {
		scores := make([]float64, len(segments))
		for j, seg := range segments {
			scores[j] = p.binding.confirm(seg, topicIDs[i], stats, p.settings.Epsilon)
		}
		perTopic[i] = aggregation.MeanSegments(scores)
		topicScores[i] = model.TopicScore{
			Topic:        topics[i],
			Score:        perTopic[i],
			SegmentCount: len(segments),
			Skipped:      len(segments) == 0,
		}
	}

	return model.CoherenceResult{
		Measure:      p.settings.Measure,
		Score:        aggregation.MeanTopics(perTopic),
		TopicScores:  topicScores,
		EvaluationID: uuid.New().String(),
		Took:         time.Since(start).Milliseconds(),
	}, nil
}

// resolveTopics maps topic words to dictionary ids, truncating to the
// configured top-N and dropping duplicate words. A word without a dictionary
// id is a hard VocabularyError: no confirmation can be computed for it.
func (p *Pipeline) resolveTopics(topics []model.Topic) ([][]uint32, error) {
	resolved := make([][]uint32, len(topics))
	for i, topic := range topics {
		words := topic
		if p.settings.TopN > 0 && len(words) > p.settings.TopN {
			words = words[:p.settings.TopN]
		}

		ids := make([]uint32, 0, len(words))
		for _, word := range words {
			id, ok := p.dict.ID(word)
			if !ok {
				return nil, errors.NewVocabularyError(word, i)
			}
			ids = append(ids, id)
		}
		resolved[i] = segmentation.Distinct(ids)
	}
	return resolved, nil
}
