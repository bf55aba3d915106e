package engine

import (
	"log"
	"os"
	"sync"

	"github.com/gcbaptista/go-topic-coherence/config"
	"github.com/gcbaptista/go-topic-coherence/internal/errors"
	"github.com/gcbaptista/go-topic-coherence/internal/jobs"
	"github.com/gcbaptista/go-topic-coherence/internal/pipeline"
	"github.com/gcbaptista/go-topic-coherence/internal/tokenizer"
	"github.com/gcbaptista/go-topic-coherence/model"
	"github.com/gcbaptista/go-topic-coherence/services"
)

const (
	dataDirPerm       = 0755
	settingsFile      = "settings.gob"
	dictionaryFile    = "dictionary.gob"
	bowCorpusFile     = "bow_corpus.gob"
	textStoreFile     = "text_store.gob"
	maxEvaluationJobs = 4
)

// Engine manages multiple named reference corpora and runs coherence
// evaluations against them. It implements the services.CorpusManager
// interface.
type Engine struct {
	mu      sync.RWMutex
	corpora map[string]*CorpusInstance
	dataDir string
	jobs    *jobs.Manager
}

// NewEngine creates a new coherence engine rooted at dataDir, loading any
// previously persisted corpora.
func NewEngine(dataDir string) *Engine {
	eng := &Engine{
		corpora: make(map[string]*CorpusInstance),
		dataDir: dataDir,
		jobs:    jobs.NewManager(maxEvaluationJobs),
	}
	if err := os.MkdirAll(dataDir, dataDirPerm); err != nil {
		log.Printf("Warning: Could not create data directory %s: %v. Proceeding without persistence for new corpora if loading fails.", dataDir, err)
	}
	eng.loadCorporaFromDisk()
	return eng
}

// CreateCorpus registers a new empty corpus under settings.Name.
func (e *Engine) CreateCorpus(settings config.CorpusSettings) error {
	if conflicts := settings.Validate(); len(conflicts) > 0 {
		return errors.NewValidationError("settings", conflicts[0])
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.corpora[settings.Name]; exists {
		return errors.NewCorpusAlreadyExistsError(settings.Name)
	}

	instance, err := emptyCorpusInstance(settings)
	if err != nil {
		return err
	}
	e.corpora[settings.Name] = instance
	log.Printf("Created corpus '%s'", settings.Name)
	return nil
}

// GetCorpus returns an accessor for the named corpus.
func (e *Engine) GetCorpus(name string) (services.CorpusAccessor, error) {
	instance, err := e.instance(name)
	if err != nil {
		return nil, err
	}
	return instance, nil
}

// GetCorpusSettings returns the settings of the named corpus.
func (e *Engine) GetCorpusSettings(name string) (config.CorpusSettings, error) {
	instance, err := e.instance(name)
	if err != nil {
		return config.CorpusSettings{}, err
	}
	return instance.Settings(), nil
}

// DeleteCorpus removes the named corpus from memory and disk.
func (e *Engine) DeleteCorpus(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.corpora[name]; !exists {
		return errors.NewCorpusNotFoundError(name)
	}
	delete(e.corpora, name)

	if err := e.removeCorpusDir(name); err != nil {
		log.Printf("Warning: Failed to remove data for corpus '%s': %v", name, err)
	}
	log.Printf("Deleted corpus '%s'", name)
	return nil
}

// ListCorpora returns the names of all registered corpora.
func (e *Engine) ListCorpora() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.corpora))
	for name := range e.corpora {
		names = append(names, name)
	}
	return names
}

// EvaluateCoherence runs a synchronous coherence evaluation against the named
// corpus.
func (e *Engine) EvaluateCoherence(corpusName string, req services.CoherenceRequest) (model.CoherenceResult, error) {
	instance, err := e.instance(corpusName)
	if err != nil {
		return model.CoherenceResult{}, err
	}
	return e.evaluate(instance, req)
}

// PipelineStages returns the stage identifiers bound to a measure, for
// introspection.
func (e *Engine) PipelineStages(measure string) (map[string]string, error) {
	settings := config.CoherenceSettings{Measure: measure}
	settings.ApplyDefaults()

	stages, err := pipeline.StagesFor(pipeline.Measure(settings.Measure))
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"segmentation": stages.Segmentation,
		"estimation":   stages.Estimation,
		"confirmation": stages.Confirmation,
	}, nil
}

// GetJob retrieves a background job by ID.
func (e *Engine) GetJob(jobID string) (*model.Job, error) {
	return e.jobs.GetJob(jobID)
}

// ListJobs lists background jobs, optionally filtered by corpus and status.
func (e *Engine) ListJobs(corpusName string, status *model.JobStatus) []*model.Job {
	return e.jobs.ListJobs(corpusName, status)
}

// JobMetrics returns job execution metrics.
func (e *Engine) JobMetrics() jobs.JobMetricsData {
	return e.jobs.GetMetrics()
}

// Stop waits for background jobs to finish.
func (e *Engine) Stop() {
	e.jobs.Stop()
}

// evaluate builds a pipeline for the request and runs it. The reference data
// snapshots are taken under the corpus locks, so ingestion running
// concurrently with evaluation cannot tear a scan.
func (e *Engine) evaluate(instance *CorpusInstance, req services.CoherenceRequest) (model.CoherenceResult, error) {
	settings := req.Settings
	settings.ApplyDefaults()
	if conflicts := settings.Validate(); len(conflicts) > 0 {
		return model.CoherenceResult{}, errors.NewValidationError("settings", conflicts[0])
	}

	p, err := pipeline.New(settings, instance.dictionary, instance.bow.Snapshot(), instance.texts.Sequences())
	if err != nil {
		return model.CoherenceResult{}, err
	}
	return p.Evaluate(normalizeTopics(req.Topics, instance.Settings()))
}

// normalizeTopics applies the corpus casing rule to topic words so lookups
// hit the same dictionary entries ingestion created.
func normalizeTopics(topics []model.Topic, settings config.CorpusSettings) []model.Topic {
	normalized := make([]model.Topic, len(topics))
	for i, topic := range topics {
		normalized[i] = make(model.Topic, len(topic))
		for j, word := range topic {
			normalized[i][j] = tokenizer.Normalize(word, !settings.CaseSensitive)
		}
	}
	return normalized
}

func (e *Engine) instance(name string) (*CorpusInstance, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	instance, exists := e.corpora[name]
	if !exists {
		return nil, errors.NewCorpusNotFoundError(name)
	}
	return instance, nil
}
