package engine

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gcbaptista/go-topic-coherence/config"
	"github.com/gcbaptista/go-topic-coherence/corpus"
	"github.com/gcbaptista/go-topic-coherence/internal/errors"
	"github.com/gcbaptista/go-topic-coherence/internal/persistence"
	"github.com/gcbaptista/go-topic-coherence/store"
)

// PersistCorpus writes the named corpus's settings, dictionary, bag-of-words
// vectors and text store to its directory under the engine data dir.
func (e *Engine) PersistCorpus(corpusName string) error {
	instance, err := e.instance(corpusName)
	if err != nil {
		return err
	}

	dir := e.corpusDir(corpusName)
	settings := instance.Settings()
	if err := persistence.SaveGob(filepath.Join(dir, settingsFile), &settings); err != nil {
		return fmt.Errorf("failed to persist settings for corpus '%s': %w", corpusName, err)
	}
	if err := persistence.SaveGob(filepath.Join(dir, dictionaryFile), instance.dictionary); err != nil {
		return fmt.Errorf("failed to persist dictionary for corpus '%s': %w", corpusName, err)
	}
	if err := persistence.SaveGob(filepath.Join(dir, bowCorpusFile), instance.bow); err != nil {
		return fmt.Errorf("failed to persist bag-of-words corpus for corpus '%s': %w", corpusName, err)
	}
	if err := persistence.SaveGob(filepath.Join(dir, textStoreFile), instance.texts); err != nil {
		return fmt.Errorf("failed to persist text store for corpus '%s': %w", corpusName, err)
	}
	log.Printf("Persisted corpus '%s' to %s", corpusName, dir)
	return nil
}

// loadCorporaFromDisk restores every corpus directory found under the data
// dir. Individual load failures are logged and skipped so one corrupt corpus
// does not block startup.
func (e *Engine) loadCorporaFromDisk() {
	log.Printf("Loading corpora from disk: %s", e.dataDir)
	items, err := os.ReadDir(e.dataDir)
	if err != nil {
		log.Printf("Warning: Failed to read data directory %s: %v. No corpora loaded.", e.dataDir, err)
		return
	}

	for _, item := range items {
		if !item.IsDir() {
			continue
		}
		name := item.Name()
		instance, err := e.loadCorpus(name)
		if err != nil {
			log.Printf("Warning: Failed to load corpus '%s': %v. Skipping.", name, err)
			continue
		}
		e.corpora[name] = instance
		log.Printf("Loaded corpus '%s' (%d documents, %d vocabulary entries)", name, instance.bow.Len(), instance.dictionary.Len())
	}
}

// loadCorpus restores one corpus from its directory.
func (e *Engine) loadCorpus(name string) (*CorpusInstance, error) {
	dir := e.corpusDir(name)

	var settings config.CorpusSettings
	if err := persistence.LoadGob(filepath.Join(dir, settingsFile), &settings); err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.Name != name {
		return nil, errors.NewValidationError("settings", fmt.Sprintf("settings name '%s' does not match directory '%s'", settings.Name, name))
	}

	dictionary := corpus.NewDictionary()
	if err := persistence.LoadGob(filepath.Join(dir, dictionaryFile), dictionary); err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}

	bow := corpus.NewBowCorpus()
	if err := persistence.LoadGob(filepath.Join(dir, bowCorpusFile), bow); err != nil {
		return nil, fmt.Errorf("failed to load bag-of-words corpus: %w", err)
	}

	texts := store.NewTextStore()
	if err := persistence.LoadGob(filepath.Join(dir, textStoreFile), texts); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load text store: %w", err)
	}

	return newCorpusInstance(settings, dictionary, bow, texts)
}

func (e *Engine) corpusDir(name string) string {
	return filepath.Join(e.dataDir, name)
}

func (e *Engine) removeCorpusDir(name string) error {
	return os.RemoveAll(e.corpusDir(name))
}
