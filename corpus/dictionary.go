package corpus

import (
	"bytes"
	"encoding/gob"
	"sync"
)

// Dictionary maps tokens to stable uint32 word ids and back. Every word id
// referenced by a topic or a bag-of-words document must resolve through the
// dictionary that produced it.
type Dictionary struct {
	Mu        sync.RWMutex
	TokenToID map[string]uint32
	IDToToken map[uint32]string
	NextID    uint32
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		TokenToID: make(map[string]uint32),
		IDToToken: make(map[uint32]string),
	}
}

// AddToken returns the id for token, assigning the next free id on first sight.
func (d *Dictionary) AddToken(token string) uint32 {
	d.Mu.Lock()
	defer d.Mu.Unlock()

	if id, exists := d.TokenToID[token]; exists {
		return id
	}
	id := d.NextID
	d.TokenToID[token] = id
	d.IDToToken[id] = token
	d.NextID++
	return id
}

// ID looks up the id for token without assigning one.
func (d *Dictionary) ID(token string) (uint32, bool) {
	d.Mu.RLock()
	defer d.Mu.RUnlock()

	id, exists := d.TokenToID[token]
	return id, exists
}

// Token looks up the token for id.
func (d *Dictionary) Token(id uint32) (string, bool) {
	d.Mu.RLock()
	defer d.Mu.RUnlock()

	token, exists := d.IDToToken[id]
	return token, exists
}

// Len returns the vocabulary size.
func (d *Dictionary) Len() int {
	d.Mu.RLock()
	defer d.Mu.RUnlock()

	return len(d.TokenToID)
}

// gobDictionaryData is a helper struct for Gob encoding/decoding Dictionary
// data. It excludes the mutex.
type gobDictionaryData struct {
	TokenToID map[string]uint32
	NextID    uint32
}

// GobEncode implements the gob.GobEncoder interface for Dictionary.
func (d *Dictionary) GobEncode() ([]byte, error) {
	d.Mu.RLock() // Ensure consistent data during encoding
	defer d.Mu.RUnlock()

	dataToEncode := gobDictionaryData{
		TokenToID: d.TokenToID,
		NextID:    d.NextID,
	}

	var buf bytes.Buffer
	encoder := gob.NewEncoder(&buf)
	if err := encoder.Encode(dataToEncode); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements the gob.GobDecoder interface for Dictionary. The
// reverse id-to-token map is rebuilt rather than stored.
func (d *Dictionary) GobDecode(data []byte) error {
	decodedData := gobDictionaryData{}

	buf := bytes.NewBuffer(data)
	decoder := gob.NewDecoder(buf)
	if err := decoder.Decode(&decodedData); err != nil {
		return err
	}

	d.Mu.Lock()
	defer d.Mu.Unlock()

	d.TokenToID = decodedData.TokenToID
	d.NextID = decodedData.NextID

	if d.TokenToID == nil {
		d.TokenToID = make(map[string]uint32)
	}
	d.IDToToken = make(map[uint32]string, len(d.TokenToID))
	for token, id := range d.TokenToID {
		d.IDToToken[id] = token
	}
	return nil
}
