package engine

import (
	"fmt"

	"github.com/gcbaptista/go-topic-coherence/config"
	"github.com/gcbaptista/go-topic-coherence/corpus"
	"github.com/gcbaptista/go-topic-coherence/internal/ingestion"
	"github.com/gcbaptista/go-topic-coherence/model"
	"github.com/gcbaptista/go-topic-coherence/services"
	"github.com/gcbaptista/go-topic-coherence/store"
)

// CorpusInstance bundles one named corpus's stores with its ingestion
// service. It implements services.CorpusAccessor.
type CorpusInstance struct {
	settings   config.CorpusSettings
	dictionary *corpus.Dictionary
	bow        *corpus.BowCorpus
	texts      *store.TextStore
	ingestion  *ingestion.Service
}

// newCorpusInstance builds an instance around existing stores, wiring the
// ingestion service to them.
func newCorpusInstance(settings config.CorpusSettings, dictionary *corpus.Dictionary, bow *corpus.BowCorpus, texts *store.TextStore) (*CorpusInstance, error) {
	instance := &CorpusInstance{
		settings:   settings,
		dictionary: dictionary,
		bow:        bow,
		texts:      texts,
	}
	svc, err := ingestion.NewService(&instance.settings, dictionary, bow, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to create ingestion service for corpus '%s': %w", settings.Name, err)
	}
	instance.ingestion = svc
	return instance, nil
}

// emptyCorpusInstance builds an instance with fresh, empty stores.
func emptyCorpusInstance(settings config.CorpusSettings) (*CorpusInstance, error) {
	return newCorpusInstance(settings, corpus.NewDictionary(), corpus.NewBowCorpus(), store.NewTextStore())
}

// AddDocuments ingests reference documents into this corpus.
func (ci *CorpusInstance) AddDocuments(docs []model.Document) error {
	return ci.ingestion.AddDocuments(docs)
}

// Settings returns this corpus's settings.
func (ci *CorpusInstance) Settings() config.CorpusSettings {
	return ci.settings
}

// Stats returns document, vocabulary and stored-text counts.
func (ci *CorpusInstance) Stats() services.CorpusStats {
	return services.CorpusStats{
		DocumentCount:  ci.bow.Len(),
		VocabularySize: ci.dictionary.Len(),
		StoredTexts:    ci.texts.Len(),
	}
}
