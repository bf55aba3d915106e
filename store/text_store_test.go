package store

import (
	"bytes"
	"encoding/gob"
	"reflect"
	"testing"
)

func TestTextStoreAddAndSequences(t *testing.T) {
	ts := NewTextStore()

	ts.Add("doc-b", []uint32{3, 4})
	ts.Add("doc-a", []uint32{1, 2})

	if ts.Len() != 2 {
		t.Errorf("Expected 2 texts, got %d", ts.Len())
	}

	// Sequences come back in internal-id (insertion) order regardless of
	// external id, keeping window scans deterministic.
	sequences := ts.Sequences()
	expected := [][]uint32{{3, 4}, {1, 2}}
	if !reflect.DeepEqual(sequences, expected) {
		t.Errorf("Expected sequences %v, got %v", expected, sequences)
	}

	// Re-adding an external id replaces the sequence without growing the store.
	ts.Add("doc-b", []uint32{9})
	if ts.Len() != 2 {
		t.Errorf("Expected 2 texts after replacement, got %d", ts.Len())
	}
	if got := ts.Sequences()[0]; !reflect.DeepEqual(got, []uint32{9}) {
		t.Errorf("Expected replaced sequence [9], got %v", got)
	}
}

func TestTextStoreGobRoundTrip(t *testing.T) {
	ts := NewTextStore()
	ts.Add("one", []uint32{1, 2, 3})
	ts.Add("two", []uint32{4})

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(ts); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded := NewTextStore()
	if err := gob.NewDecoder(&buf).Decode(decoded); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if decoded.Len() != 2 {
		t.Fatalf("Expected 2 texts after round trip, got %d", decoded.Len())
	}
	if !reflect.DeepEqual(decoded.Sequences(), ts.Sequences()) {
		t.Error("Sequences differ after round trip")
	}
	if decoded.NextID != ts.NextID {
		t.Errorf("Expected NextID %d, got %d", ts.NextID, decoded.NextID)
	}
}
