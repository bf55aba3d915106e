package engine

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gcbaptista/go-topic-coherence/config"
	internalerrors "github.com/gcbaptista/go-topic-coherence/internal/errors"
	testutil "github.com/gcbaptista/go-topic-coherence/internal/testing"
	"github.com/gcbaptista/go-topic-coherence/model"
	"github.com/gcbaptista/go-topic-coherence/services"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	eng := NewEngine(t.TempDir())
	t.Cleanup(eng.Stop)
	return eng
}

// seedToyCorpus creates a corpus named name and ingests the two-cluster
// reference documents into it.
func seedToyCorpus(t *testing.T, eng *Engine, name string) {
	t.Helper()
	if err := eng.CreateCorpus(config.CorpusSettings{Name: name}); err != nil {
		t.Fatalf("Failed to create corpus: %v", err)
	}
	accessor, err := eng.GetCorpus(name)
	if err != nil {
		t.Fatalf("Failed to get corpus: %v", err)
	}
	docs := make([]model.Document, 0, len(testutil.ToyCorpus()))
	for _, tokens := range testutil.ToyCorpus() {
		docs = append(docs, model.Document{Tokens: tokens})
	}
	if err := accessor.AddDocuments(docs); err != nil {
		t.Fatalf("Failed to add documents: %v", err)
	}
}

func TestEngine_CreateCorpus(t *testing.T) {
	eng := newTestEngine(t)

	if err := eng.CreateCorpus(config.CorpusSettings{Name: "toy"}); err != nil {
		t.Fatalf("Failed to create corpus: %v", err)
	}

	err := eng.CreateCorpus(config.CorpusSettings{Name: "toy"})
	if !errors.Is(err, internalerrors.ErrCorpusAlreadyExists) {
		t.Errorf("Expected ErrCorpusAlreadyExists for duplicate, got %v", err)
	}

	err = eng.CreateCorpus(config.CorpusSettings{Name: ""})
	if !errors.Is(err, internalerrors.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for empty name, got %v", err)
	}

	names := eng.ListCorpora()
	if len(names) != 1 || names[0] != "toy" {
		t.Errorf("Expected exactly corpus 'toy', got %v", names)
	}
}

func TestEngine_GetAndDeleteCorpus(t *testing.T) {
	eng := newTestEngine(t)

	_, err := eng.GetCorpus("missing")
	if !errors.Is(err, internalerrors.ErrCorpusNotFound) {
		t.Errorf("Expected ErrCorpusNotFound, got %v", err)
	}

	settings := config.CorpusSettings{Name: "toy", CaseSensitive: true}
	if err := eng.CreateCorpus(settings); err != nil {
		t.Fatalf("Failed to create corpus: %v", err)
	}

	got, err := eng.GetCorpusSettings("toy")
	if err != nil {
		t.Fatalf("Failed to get corpus settings: %v", err)
	}
	if !got.CaseSensitive {
		t.Error("Expected settings to carry CaseSensitive")
	}

	if err := eng.DeleteCorpus("toy"); err != nil {
		t.Fatalf("Failed to delete corpus: %v", err)
	}
	if err := eng.DeleteCorpus("toy"); !errors.Is(err, internalerrors.ErrCorpusNotFound) {
		t.Errorf("Expected ErrCorpusNotFound after delete, got %v", err)
	}
}

func TestEngine_EvaluateCoherence(t *testing.T) {
	eng := newTestEngine(t)
	seedToyCorpus(t, eng, "toy")

	goodTopics := []model.Topic{
		{"human", "interface", "system", "user"},
		{"graph", "trees", "minors"},
	}
	badTopics := []model.Topic{
		{"human", "graph", "interface", "trees"},
		{"user", "minors", "system", "time"},
	}

	for _, measure := range []string{"u_mass", "c_v"} {
		t.Run(measure, func(t *testing.T) {
			good, err := eng.EvaluateCoherence("toy", services.CoherenceRequest{
				Topics:   goodTopics,
				Settings: config.CoherenceSettings{Measure: measure},
			})
			if err != nil {
				t.Fatalf("Evaluation failed: %v", err)
			}
			bad, err := eng.EvaluateCoherence("toy", services.CoherenceRequest{
				Topics:   badTopics,
				Settings: config.CoherenceSettings{Measure: measure},
			})
			if err != nil {
				t.Fatalf("Evaluation failed: %v", err)
			}

			if math.IsNaN(good.Score) || math.IsNaN(bad.Score) {
				t.Fatalf("Expected scorable topics, got good=%v bad=%v", good.Score, bad.Score)
			}
			if good.Score <= bad.Score {
				t.Errorf("Expected coherent topics to outscore shuffled ones: good=%v bad=%v", good.Score, bad.Score)
			}
			if len(good.TopicScores) != 2 {
				t.Errorf("Expected 2 per-topic scores, got %d", len(good.TopicScores))
			}
			if good.EvaluationID == "" {
				t.Error("Expected a non-empty evaluation id")
			}
		})
	}
}

func TestEngine_EvaluateCoherenceNormalizesTopicCasing(t *testing.T) {
	eng := newTestEngine(t)
	seedToyCorpus(t, eng, "toy")

	// Ingestion lowercased the corpus, so cased topic words must still
	// resolve.
	result, err := eng.EvaluateCoherence("toy", services.CoherenceRequest{
		Topics:   []model.Topic{{"Human", "INTERFACE", "system"}},
		Settings: config.CoherenceSettings{Measure: "u_mass"},
	})
	if err != nil {
		t.Fatalf("Evaluation failed: %v", err)
	}
	if math.IsNaN(result.Score) {
		t.Error("Expected cased topic words to resolve against the lowercased dictionary")
	}
}

func TestEngine_EvaluateCoherenceErrors(t *testing.T) {
	eng := newTestEngine(t)
	seedToyCorpus(t, eng, "toy")

	t.Run("unknown corpus", func(t *testing.T) {
		_, err := eng.EvaluateCoherence("missing", services.CoherenceRequest{
			Topics: []model.Topic{{"graph", "trees"}},
		})
		if !errors.Is(err, internalerrors.ErrCorpusNotFound) {
			t.Errorf("Expected ErrCorpusNotFound, got %v", err)
		}
	})

	t.Run("unknown measure", func(t *testing.T) {
		_, err := eng.EvaluateCoherence("toy", services.CoherenceRequest{
			Topics:   []model.Topic{{"graph", "trees"}},
			Settings: config.CoherenceSettings{Measure: "c_npmi"},
		})
		if !errors.Is(err, internalerrors.ErrUnknownMeasure) {
			t.Errorf("Expected ErrUnknownMeasure, got %v", err)
		}
	})

	t.Run("word outside vocabulary", func(t *testing.T) {
		_, err := eng.EvaluateCoherence("toy", services.CoherenceRequest{
			Topics:   []model.Topic{{"graph", "zeppelin"}},
			Settings: config.CoherenceSettings{Measure: "u_mass"},
		})
		if !errors.Is(err, internalerrors.ErrVocabulary) {
			t.Errorf("Expected ErrVocabulary, got %v", err)
		}
	})
}

func TestEngine_PipelineStages(t *testing.T) {
	eng := newTestEngine(t)

	stages, err := eng.PipelineStages("c_v")
	if err != nil {
		t.Fatalf("Failed to get stages: %v", err)
	}
	if stages["segmentation"] != "one_set" {
		t.Errorf("Expected one_set segmentation for c_v, got %q", stages["segmentation"])
	}

	// An empty measure falls back to the default binding.
	stages, err = eng.PipelineStages("")
	if err != nil {
		t.Fatalf("Failed to get default stages: %v", err)
	}
	if stages["segmentation"] != "one_pre" {
		t.Errorf("Expected one_pre segmentation for the default measure, got %q", stages["segmentation"])
	}

	if _, err := eng.PipelineStages("c_uci"); !errors.Is(err, internalerrors.ErrUnknownMeasure) {
		t.Errorf("Expected ErrUnknownMeasure, got %v", err)
	}
}

func TestEngine_PersistenceRoundTrip(t *testing.T) {
	dataDir := t.TempDir()

	eng := NewEngine(dataDir)
	seedToyCorpus(t, eng, "toy")

	req := services.CoherenceRequest{
		Topics:   []model.Topic{{"graph", "trees", "minors"}},
		Settings: config.CoherenceSettings{Measure: "u_mass"},
	}
	before, err := eng.EvaluateCoherence("toy", req)
	if err != nil {
		t.Fatalf("Evaluation failed: %v", err)
	}

	if err := eng.PersistCorpus("toy"); err != nil {
		t.Fatalf("Failed to persist corpus: %v", err)
	}
	eng.Stop()

	// A fresh engine over the same data dir must restore the corpus and
	// reproduce the score.
	restored := NewEngine(dataDir)
	defer restored.Stop()

	names := restored.ListCorpora()
	if len(names) != 1 || names[0] != "toy" {
		t.Fatalf("Expected restored corpus 'toy', got %v", names)
	}

	accessor, err := restored.GetCorpus("toy")
	if err != nil {
		t.Fatalf("Failed to get restored corpus: %v", err)
	}
	stats := accessor.Stats()
	if stats.DocumentCount != 9 {
		t.Errorf("Expected 9 documents after restore, got %d", stats.DocumentCount)
	}
	if stats.VocabularySize != 12 {
		t.Errorf("Expected vocabulary of 12 after restore, got %d", stats.VocabularySize)
	}

	after, err := restored.EvaluateCoherence("toy", req)
	if err != nil {
		t.Fatalf("Evaluation failed after restore: %v", err)
	}
	if after.Score != before.Score {
		t.Errorf("Expected identical score after restore: before=%v after=%v", before.Score, after.Score)
	}
}

func TestEngine_PersistCorpusNotFound(t *testing.T) {
	eng := newTestEngine(t)
	if err := eng.PersistCorpus("missing"); !errors.Is(err, internalerrors.ErrCorpusNotFound) {
		t.Errorf("Expected ErrCorpusNotFound, got %v", err)
	}
}

func TestEngine_EvaluateCoherenceAsync(t *testing.T) {
	eng := newTestEngine(t)
	seedToyCorpus(t, eng, "toy")

	jobID, err := eng.EvaluateCoherenceAsync("toy", services.CoherenceRequest{
		Topics:   []model.Topic{{"graph", "trees", "minors"}},
		Settings: config.CoherenceSettings{Measure: "u_mass"},
	})
	if err != nil {
		t.Fatalf("Failed to start async evaluation: %v", err)
	}

	job := waitForJob(t, eng, jobID)
	if job.Status != model.JobStatusCompleted {
		t.Fatalf("Expected completed job, got %s (error: %s)", job.Status, job.Error)
	}
	if job.Result == nil {
		t.Fatal("Expected result on completed job")
	}
	if math.IsNaN(job.Result.Score) || job.Result.Score >= 0 {
		t.Errorf("Expected a finite negative u_mass score, got %v", job.Result.Score)
	}
	if job.Metadata["measure"] != "u_mass" {
		t.Errorf("Expected measure metadata 'u_mass', got %q", job.Metadata["measure"])
	}
}

func TestEngine_EvaluateCoherenceAsyncFailure(t *testing.T) {
	eng := newTestEngine(t)
	seedToyCorpus(t, eng, "toy")

	jobID, err := eng.EvaluateCoherenceAsync("toy", services.CoherenceRequest{
		Topics:   []model.Topic{{"graph", "trees"}},
		Settings: config.CoherenceSettings{Measure: "nonsense"},
	})
	if err != nil {
		t.Fatalf("Failed to start async evaluation: %v", err)
	}

	job := waitForJob(t, eng, jobID)
	if job.Status != model.JobStatusFailed {
		t.Fatalf("Expected failed job, got %s", job.Status)
	}
	if job.Error == "" {
		t.Error("Expected failure message on job")
	}
}

// waitForJob polls until the job leaves the pending/running states.
func waitForJob(t *testing.T, eng *Engine, jobID string) *model.Job {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		job, err := eng.GetJob(jobID)
		if err != nil {
			t.Fatalf("Failed to get job: %v", err)
		}
		if job.Status == model.JobStatusCompleted || job.Status == model.JobStatusFailed {
			return job
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Job %s did not finish in time", jobID)
	return nil
}
