package pipeline

import (
	"errors"
	"math"
	"testing"

	"github.com/gcbaptista/go-topic-coherence/config"
	internalerrors "github.com/gcbaptista/go-topic-coherence/internal/errors"
	testutil "github.com/gcbaptista/go-topic-coherence/internal/testing"
	"github.com/gcbaptista/go-topic-coherence/model"
)

func toyPipeline(t *testing.T, measure string) *Pipeline {
	t.Helper()
	dict, bowDocs, sequences := testutil.BuildCorpus(testutil.ToyCorpus())
	p, err := New(config.CoherenceSettings{Measure: measure}, dict, bowDocs, sequences)
	if err != nil {
		t.Fatalf("Failed to build %s pipeline: %v", measure, err)
	}
	return p
}

// goodTopics cleanly separate the two latent clusters of the toy corpus;
// badTopics mix words across clusters.
var (
	goodTopics = []model.Topic{
		{"human", "interface", "system", "user"},
		{"graph", "trees", "minors"},
	}
	badTopics = []model.Topic{
		{"human", "graph", "interface", "trees"},
		{"user", "minors", "system", "time"},
	}
)

func TestNewValidation(t *testing.T) {
	dict, bowDocs, sequences := testutil.BuildCorpus(testutil.ToyCorpus())

	t.Run("unknown measure fails with configuration error", func(t *testing.T) {
		_, err := New(config.CoherenceSettings{Measure: "c_w2v"}, dict, bowDocs, sequences)
		if err == nil {
			t.Fatal("Expected error for unknown measure, got nil")
		}
		if !errors.Is(err, internalerrors.ErrUnknownMeasure) {
			t.Errorf("Expected ErrUnknownMeasure, got %v", err)
		}
	})

	t.Run("u_mass requires a bag-of-words corpus", func(t *testing.T) {
		_, err := New(config.CoherenceSettings{Measure: "u_mass"}, dict, nil, sequences)
		if !errors.Is(err, internalerrors.ErrMissingReference) {
			t.Errorf("Expected ErrMissingReference, got %v", err)
		}
	})

	t.Run("c_v requires tokenized texts", func(t *testing.T) {
		_, err := New(config.CoherenceSettings{Measure: "c_v"}, dict, bowDocs, nil)
		if !errors.Is(err, internalerrors.ErrMissingReference) {
			t.Errorf("Expected ErrMissingReference, got %v", err)
		}
	})

	t.Run("dictionary is required", func(t *testing.T) {
		_, err := New(config.CoherenceSettings{Measure: "u_mass"}, nil, bowDocs, sequences)
		if !errors.Is(err, internalerrors.ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestStagesIntrospection(t *testing.T) {
	uMass := toyPipeline(t, "u_mass")
	stages := uMass.Stages()
	if stages.Segmentation != "one_pre" || stages.Estimation != "boolean_document" || stages.Confirmation != "log_cond_prob" {
		t.Errorf("Unexpected u_mass stages: %+v", stages)
	}

	cv := toyPipeline(t, "c_v")
	stages = cv.Stages()
	if stages.Segmentation != "one_set" || stages.Estimation != "boolean_sliding_window" || stages.Confirmation != "cosine_npmi" {
		t.Errorf("Unexpected c_v stages: %+v", stages)
	}

	if _, err := StagesFor(Measure("nonsense")); !errors.Is(err, internalerrors.ErrUnknownMeasure) {
		t.Errorf("Expected ErrUnknownMeasure from StagesFor, got %v", err)
	}
}

func TestEvaluateUMass(t *testing.T) {
	p := toyPipeline(t, "u_mass")

	t.Run("clean cluster topics outscore mixed topics", func(t *testing.T) {
		good, err := p.Evaluate(goodTopics)
		if err != nil {
			t.Fatalf("Evaluation failed: %v", err)
		}
		bad, err := p.Evaluate(badTopics)
		if err != nil {
			t.Fatalf("Evaluation failed: %v", err)
		}
		if good.Score <= bad.Score {
			t.Errorf("Expected clean topics to score higher: good=%f bad=%f", good.Score, bad.Score)
		}
	})

	t.Run("per-topic breakdown carries segment counts", func(t *testing.T) {
		result, err := p.Evaluate(goodTopics)
		if err != nil {
			t.Fatalf("Evaluation failed: %v", err)
		}
		// one_pre: 4 words -> 6 segments, 3 words -> 3 segments.
		if result.TopicScores[0].SegmentCount != 6 {
			t.Errorf("Expected 6 segments for first topic, got %d", result.TopicScores[0].SegmentCount)
		}
		if result.TopicScores[1].SegmentCount != 3 {
			t.Errorf("Expected 3 segments for second topic, got %d", result.TopicScores[1].SegmentCount)
		}
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		first, err := p.Evaluate(goodTopics)
		if err != nil {
			t.Fatalf("Evaluation failed: %v", err)
		}
		second, err := p.Evaluate(goodTopics)
		if err != nil {
			t.Fatalf("Evaluation failed: %v", err)
		}
		if first.Score != second.Score {
			t.Errorf("Scores differ across identical runs: %v vs %v", first.Score, second.Score)
		}
		for i := range first.TopicScores {
			if first.TopicScores[i].Score != second.TopicScores[i].Score {
				t.Errorf("Topic %d scores differ across identical runs", i)
			}
		}
	})

	t.Run("vocabulary error before scan for unknown word", func(t *testing.T) {
		_, err := p.Evaluate([]model.Topic{{"human", "quasar"}})
		if !errors.Is(err, internalerrors.ErrVocabulary) {
			t.Errorf("Expected ErrVocabulary, got %v", err)
		}
	})

	t.Run("single-word topic is skipped, not fatal", func(t *testing.T) {
		result, err := p.Evaluate([]model.Topic{{"human"}, {"graph", "trees", "minors"}})
		if err != nil {
			t.Fatalf("Evaluation failed: %v", err)
		}
		if !result.TopicScores[0].Skipped {
			t.Error("Expected single-word topic to be marked skipped")
		}
		if !math.IsNaN(result.TopicScores[0].Score) {
			t.Errorf("Expected NaN for skipped topic, got %f", result.TopicScores[0].Score)
		}
		if math.IsNaN(result.Score) {
			t.Error("Expected overall score to exclude the skipped topic, got NaN")
		}
	})

	t.Run("all topics skipped yields NaN overall", func(t *testing.T) {
		result, err := p.Evaluate([]model.Topic{{"human"}, {"graph"}})
		if err != nil {
			t.Fatalf("Evaluation failed: %v", err)
		}
		if !math.IsNaN(result.Score) {
			t.Errorf("Expected NaN overall score, got %f", result.Score)
		}
	})

	t.Run("duplicate topic words do not inflate segments", func(t *testing.T) {
		result, err := p.Evaluate([]model.Topic{{"graph", "graph", "trees"}})
		if err != nil {
			t.Fatalf("Evaluation failed: %v", err)
		}
		if result.TopicScores[0].SegmentCount != 1 {
			t.Errorf("Expected 1 segment after dedupe, got %d", result.TopicScores[0].SegmentCount)
		}
	})

	t.Run("no topics is a validation error", func(t *testing.T) {
		if _, err := p.Evaluate(nil); !errors.Is(err, internalerrors.ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestEvaluateCV(t *testing.T) {
	p := toyPipeline(t, "c_v")

	t.Run("scores bounded in [-1, 1]", func(t *testing.T) {
		for _, topics := range [][]model.Topic{goodTopics, badTopics} {
			result, err := p.Evaluate(topics)
			if err != nil {
				t.Fatalf("Evaluation failed: %v", err)
			}
			if result.Score < -1 || result.Score > 1 {
				t.Errorf("Overall score %f outside [-1, 1]", result.Score)
			}
			for i, ts := range result.TopicScores {
				if ts.Score < -1 || ts.Score > 1 {
					t.Errorf("Topic %d score %f outside [-1, 1]", i, ts.Score)
				}
			}
		}
	})

	t.Run("clean cluster topics outscore mixed topics", func(t *testing.T) {
		good, err := p.Evaluate(goodTopics)
		if err != nil {
			t.Fatalf("Evaluation failed: %v", err)
		}
		bad, err := p.Evaluate(badTopics)
		if err != nil {
			t.Fatalf("Evaluation failed: %v", err)
		}
		if good.Score <= bad.Score {
			t.Errorf("Expected clean topics to score higher: good=%f bad=%f", good.Score, bad.Score)
		}
	})

	t.Run("one segment per topic word", func(t *testing.T) {
		result, err := p.Evaluate(goodTopics)
		if err != nil {
			t.Fatalf("Evaluation failed: %v", err)
		}
		if result.TopicScores[0].SegmentCount != 4 {
			t.Errorf("Expected 4 segments, got %d", result.TopicScores[0].SegmentCount)
		}
		if result.TopicScores[1].SegmentCount != 3 {
			t.Errorf("Expected 3 segments, got %d", result.TopicScores[1].SegmentCount)
		}
	})
}

func TestEvaluateProvider(t *testing.T) {
	p := toyPipeline(t, "u_mass")

	fromProvider, err := p.EvaluateProvider(model.TopicList(goodTopics))
	if err != nil {
		t.Fatalf("Provider evaluation failed: %v", err)
	}
	direct, err := p.Evaluate(goodTopics)
	if err != nil {
		t.Fatalf("Direct evaluation failed: %v", err)
	}
	if fromProvider.Score != direct.Score {
		t.Errorf("Provider and direct forms disagree: %f vs %f", fromProvider.Score, direct.Score)
	}

	if _, err := p.EvaluateProvider(nil); !errors.Is(err, internalerrors.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for nil provider, got %v", err)
	}
}

func TestTopNTruncation(t *testing.T) {
	dict, bowDocs, sequences := testutil.BuildCorpus(testutil.ToyCorpus())
	p, err := New(config.CoherenceSettings{Measure: "u_mass", TopN: 2}, dict, bowDocs, sequences)
	if err != nil {
		t.Fatalf("Failed to build pipeline: %v", err)
	}

	result, err := p.Evaluate([]model.Topic{{"graph", "trees", "minors", "survey"}})
	if err != nil {
		t.Fatalf("Evaluation failed: %v", err)
	}
	// Truncated to 2 words -> one one_pre segment.
	if result.TopicScores[0].SegmentCount != 1 {
		t.Errorf("Expected 1 segment after top-N truncation, got %d", result.TopicScores[0].SegmentCount)
	}
}

func TestSupportedMeasures(t *testing.T) {
	measures := SupportedMeasures()
	if len(measures) != 2 || measures[0] != "c_v" || measures[1] != "u_mass" {
		t.Errorf("Unexpected supported measures: %v", measures)
	}
}
