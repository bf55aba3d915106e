package store

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"sort"
	"sync"
)

// TextStore holds the raw tokenized texts of a corpus as word-id sequences.
// It is the reference-statistics source for sliding-window probability
// estimation, where token order and adjacency matter and a bag of words is
// not enough.
type TextStore struct {
	Mu                     sync.RWMutex
	Texts                  map[uint32][]uint32 // Internal numeric ID to token-id sequence
	ExternalIDtoInternalID map[string]uint32   // User-provided ID to internal uint32 ID
	NextID                 uint32
}

// NewTextStore creates an empty text store.
func NewTextStore() *TextStore {
	return &TextStore{
		Texts:                  make(map[uint32][]uint32),
		ExternalIDtoInternalID: make(map[string]uint32),
	}
}

// Add stores one token sequence under externalID and returns its internal id.
// Re-adding an existing externalID replaces the stored sequence.
func (ts *TextStore) Add(externalID string, tokenIDs []uint32) uint32 {
	ts.Mu.Lock()
	defer ts.Mu.Unlock()

	internalID, exists := ts.ExternalIDtoInternalID[externalID]
	if !exists {
		internalID = ts.NextID
		ts.ExternalIDtoInternalID[externalID] = internalID
		ts.NextID++
	}
	ts.Texts[internalID] = tokenIDs
	return internalID
}

// Len returns the number of stored texts.
func (ts *TextStore) Len() int {
	ts.Mu.RLock()
	defer ts.Mu.RUnlock()

	return len(ts.Texts)
}

// Sequences returns all token sequences ordered by internal id. The stable
// order keeps window counting, and therefore evaluation output, deterministic
// across runs.
func (ts *TextStore) Sequences() [][]uint32 {
	ts.Mu.RLock()
	defer ts.Mu.RUnlock()

	ids := make([]uint32, 0, len(ts.Texts))
	for id := range ts.Texts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	sequences := make([][]uint32, 0, len(ids))
	for _, id := range ids {
		sequences = append(sequences, ts.Texts[id])
	}
	return sequences
}

// gobTextStoreData is a helper struct for Gob encoding/decoding TextStore
// data. It excludes the mutex.
type gobTextStoreData struct {
	Texts                  map[uint32][]uint32
	ExternalIDtoInternalID map[string]uint32
	NextID                 uint32
}

// GobEncode implements the gob.GobEncoder interface for TextStore.
func (ts *TextStore) GobEncode() ([]byte, error) {
	ts.Mu.RLock()
	defer ts.Mu.RUnlock()

	dataToEncode := gobTextStoreData{
		Texts:                  ts.Texts,
		ExternalIDtoInternalID: ts.ExternalIDtoInternalID,
		NextID:                 ts.NextID,
	}

	var buf bytes.Buffer
	encoder := gob.NewEncoder(&buf)
	if err := encoder.Encode(dataToEncode); err != nil {
		return nil, fmt.Errorf("failed to gob encode text store data: %w", err)
	}
	return buf.Bytes(), nil
}

// GobDecode implements the gob.GobDecoder interface for TextStore.
func (ts *TextStore) GobDecode(data []byte) error {
	decodedData := gobTextStoreData{}

	buf := bytes.NewBuffer(data)
	decoder := gob.NewDecoder(buf)
	if err := decoder.Decode(&decodedData); err != nil {
		return fmt.Errorf("failed to gob decode text store data: %w", err)
	}

	ts.Mu.Lock()
	defer ts.Mu.Unlock()

	ts.Texts = decodedData.Texts
	ts.ExternalIDtoInternalID = decodedData.ExternalIDtoInternalID
	ts.NextID = decodedData.NextID

	// Ensure maps are initialized if they were nil after decoding
	if ts.Texts == nil {
		ts.Texts = make(map[uint32][]uint32)
	}
	if ts.ExternalIDtoInternalID == nil {
		ts.ExternalIDtoInternalID = make(map[string]uint32)
	}
	return nil
}
