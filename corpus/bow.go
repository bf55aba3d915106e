package corpus

import (
	"bytes"
	"encoding/gob"
	"sync"
)

// BowDocument is one document as a bag of words: word id to occurrence count.
// Probability estimation only tests boolean membership, but counts are kept so
// the same structure can serve term-frequency consumers.
type BowDocument map[uint32]int

// BowCorpus is the bag-of-words reference corpus used by document-level
// co-occurrence estimation (u_mass). Documents keep their insertion order.
type BowCorpus struct {
	Mu   sync.RWMutex
	Docs []BowDocument
}

// NewBowCorpus creates an empty bag-of-words corpus.
func NewBowCorpus() *BowCorpus {
	return &BowCorpus{Docs: make([]BowDocument, 0)}
}

// Append adds one document to the corpus.
func (c *BowCorpus) Append(doc BowDocument) {
	c.Mu.Lock()
	defer c.Mu.Unlock()

	c.Docs = append(c.Docs, doc)
}

// Len returns the number of documents.
func (c *BowCorpus) Len() int {
	c.Mu.RLock()
	defer c.Mu.RUnlock()

	return len(c.Docs)
}

// Snapshot returns the document slice for a read-only scan. Documents are
// never mutated after Append, so sharing the backing maps is safe as long as
// callers treat them as read-only.
func (c *BowCorpus) Snapshot() []BowDocument {
	c.Mu.RLock()
	defer c.Mu.RUnlock()

	docs := make([]BowDocument, len(c.Docs))
	copy(docs, c.Docs)
	return docs
}

// gobBowCorpusData is a helper struct for Gob encoding/decoding BowCorpus
// data. It excludes the mutex.
type gobBowCorpusData struct {
	Docs []BowDocument
}

// GobEncode implements the gob.GobEncoder interface for BowCorpus.
func (c *BowCorpus) GobEncode() ([]byte, error) {
	c.Mu.RLock()
	defer c.Mu.RUnlock()

	dataToEncode := gobBowCorpusData{Docs: c.Docs}

	var buf bytes.Buffer
	encoder := gob.NewEncoder(&buf)
	if err := encoder.Encode(dataToEncode); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements the gob.GobDecoder interface for BowCorpus.
func (c *BowCorpus) GobDecode(data []byte) error {
	decodedData := gobBowCorpusData{}

	buf := bytes.NewBuffer(data)
	decoder := gob.NewDecoder(buf)
	if err := decoder.Decode(&decodedData); err != nil {
		return err
	}

	c.Mu.Lock()
	defer c.Mu.Unlock()

	c.Docs = decodedData.Docs
	if c.Docs == nil {
		c.Docs = make([]BowDocument, 0)
	}
	return nil
}
