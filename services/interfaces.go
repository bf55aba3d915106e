package services

import (
	"github.com/gcbaptista/go-topic-coherence/config"
	"github.com/gcbaptista/go-topic-coherence/model"
)

// CoherenceRequest is one evaluation request against a named corpus: the
// topics to score and the measure settings to score them with.
type CoherenceRequest struct {
	Topics   []model.Topic            `json:"topics"`
	Settings config.CoherenceSettings `json:"settings"`
}

// CorpusStats summarizes one corpus for introspection endpoints.
type CorpusStats struct {
	DocumentCount  int `json:"document_count"`
	VocabularySize int `json:"vocabulary_size"`
	StoredTexts    int `json:"stored_texts"`
}

// Ingester defines operations for adding reference documents to a corpus
type Ingester interface {
	AddDocuments(docs []model.Document) error
}

// CorpusAccessor combines ingestion with read access to one corpus
type CorpusAccessor interface {
	Ingester
	Stats() CorpusStats
	Settings() config.CorpusSettings
}

// CoherenceEvaluator defines the coherence evaluation entry points
type CoherenceEvaluator interface {
	EvaluateCoherence(corpusName string, req CoherenceRequest) (model.CoherenceResult, error)
	EvaluateCoherenceAsync(corpusName string, req CoherenceRequest) (string, error) // Returns job ID
	PipelineStages(measure string) (map[string]string, error)
}

// JobManager defines operations for inspecting background jobs
type JobManager interface {
	GetJob(jobID string) (*model.Job, error)
	ListJobs(corpusName string, status *model.JobStatus) []*model.Job
}

// CorpusManager manages the lifecycle of reference corpora
type CorpusManager interface {
	CreateCorpus(settings config.CorpusSettings) error
	GetCorpus(name string) (CorpusAccessor, error)
	GetCorpusSettings(name string) (config.CorpusSettings, error)
	DeleteCorpus(name string) error
	ListCorpora() []string
	PersistCorpus(corpusName string) error
	PersistCorpusAsync(corpusName string) (string, error) // Returns job ID

	CoherenceEvaluator
	JobManager
}
