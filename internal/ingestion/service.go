// Package ingestion turns raw reference documents into the structures the
// coherence pipeline scans: dictionary entries, bag-of-words vectors, and
// (optionally) stored token sequences for window-based estimation.
package ingestion

import (
	"fmt"

	"github.com/gcbaptista/go-topic-coherence/config"
	"github.com/gcbaptista/go-topic-coherence/corpus"
	"github.com/gcbaptista/go-topic-coherence/internal/errors"
	"github.com/gcbaptista/go-topic-coherence/internal/tokenizer"
	"github.com/gcbaptista/go-topic-coherence/model"
	"github.com/gcbaptista/go-topic-coherence/store"
)

// Service ingests documents into one corpus's dictionary, bag-of-words
// vectors and text store.
type Service struct {
	settings   *config.CorpusSettings
	dictionary *corpus.Dictionary
	bow        *corpus.BowCorpus
	texts      *store.TextStore
}

// NewService creates an ingestion service bound to one corpus's stores.
func NewService(settings *config.CorpusSettings, dictionary *corpus.Dictionary, bow *corpus.BowCorpus, texts *store.TextStore) (*Service, error) {
	if settings == nil || dictionary == nil || bow == nil || texts == nil {
		return nil, fmt.Errorf("ingestion service missing required dependencies (settings, dictionary, bow, or texts is nil)")
	}
	return &Service{
		settings:   settings,
		dictionary: dictionary,
		bow:        bow,
		texts:      texts,
	}, nil
}

// AddDocuments tokenizes and ingests a batch of documents. Each document must
// carry either raw text or a pre-tokenized token list; documents yielding no
// tokens are rejected rather than silently skewing the document count.
func (s *Service) AddDocuments(docs []model.Document) error {
	// Tokenize the whole batch before touching the stores, so a bad document
	// cannot leave a half-ingested batch behind.
	tokenized := make([][]string, len(docs))
	for i, doc := range docs {
		tokens, err := s.tokensOf(doc, i)
		if err != nil {
			return err
		}
		tokenized[i] = tokens
	}

	for i, doc := range docs {
		tokens := tokenized[i]
		ids := make([]uint32, len(tokens))
		bowDoc := make(corpus.BowDocument, len(tokens))
		for j, token := range tokens {
			id := s.dictionary.AddToken(token)
			ids[j] = id
			bowDoc[id]++
		}

		s.bow.Append(bowDoc)
		if !s.settings.DisableRawTexts {
			externalID := doc.ID
			if externalID == "" {
				externalID = fmt.Sprintf("doc-%d-%d", s.texts.Len(), i)
			}
			s.texts.Add(externalID, ids)
		}
	}
	return nil
}

// tokensOf extracts the token list of one document, applying the corpus
// casing rule so later topic-word lookups resolve consistently.
func (s *Service) tokensOf(doc model.Document, position int) ([]string, error) {
	var tokens []string
	switch {
	case len(doc.Tokens) > 0:
		tokens = make([]string, 0, len(doc.Tokens))
		for _, token := range doc.Tokens {
			normalized := tokenizer.Normalize(token, !s.settings.CaseSensitive)
			if normalized != "" {
				tokens = append(tokens, normalized)
			}
		}
	case doc.Text != "":
		tokens = tokenizer.Tokenize(doc.Text, !s.settings.CaseSensitive)
	default:
		return nil, errors.NewValidationError("documents", fmt.Sprintf("document at position %d has neither text nor tokens", position))
	}

	if len(tokens) == 0 {
		return nil, errors.NewValidationError("documents", fmt.Sprintf("document at position %d produced no tokens", position))
	}
	return tokens, nil
}
