package corpus

import (
	"bytes"
	"encoding/gob"
	"testing"
)

func TestDictionaryAddAndLookup(t *testing.T) {
	dict := NewDictionary()

	id1 := dict.AddToken("graph")
	id2 := dict.AddToken("trees")
	if id1 == id2 {
		t.Error("Distinct tokens received the same id")
	}

	// Re-adding returns the existing id.
	if again := dict.AddToken("graph"); again != id1 {
		t.Errorf("Expected stable id %d for re-added token, got %d", id1, again)
	}

	if id, ok := dict.ID("trees"); !ok || id != id2 {
		t.Errorf("Lookup of 'trees' returned (%d, %v)", id, ok)
	}
	if _, ok := dict.ID("minors"); ok {
		t.Error("Lookup of unknown token should fail")
	}
	if token, ok := dict.Token(id1); !ok || token != "graph" {
		t.Errorf("Reverse lookup of id %d returned (%q, %v)", id1, token, ok)
	}
	if dict.Len() != 2 {
		t.Errorf("Expected vocabulary size 2, got %d", dict.Len())
	}
}

func TestDictionaryGobRoundTrip(t *testing.T) {
	dict := NewDictionary()
	dict.AddToken("graph")
	dict.AddToken("trees")
	dict.AddToken("minors")

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(dict); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded := NewDictionary()
	if err := gob.NewDecoder(&buf).Decode(decoded); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if decoded.Len() != 3 {
		t.Errorf("Expected vocabulary size 3 after round trip, got %d", decoded.Len())
	}
	for _, token := range []string{"graph", "trees", "minors"} {
		original, _ := dict.ID(token)
		restored, ok := decoded.ID(token)
		if !ok || restored != original {
			t.Errorf("Token %q: expected id %d, got (%d, %v)", token, original, restored, ok)
		}
		// Reverse map must be rebuilt on decode.
		if roundTripped, ok := decoded.Token(restored); !ok || roundTripped != token {
			t.Errorf("Reverse lookup of %q failed after round trip", token)
		}
	}

	// Ids keep advancing from where the original left off.
	if next := decoded.AddToken("survey"); next != 3 {
		t.Errorf("Expected next id 3 after round trip, got %d", next)
	}
}

func TestBowCorpus(t *testing.T) {
	bow := NewBowCorpus()
	bow.Append(BowDocument{0: 2, 1: 1})
	bow.Append(BowDocument{1: 3})

	if bow.Len() != 2 {
		t.Errorf("Expected 2 documents, got %d", bow.Len())
	}

	snapshot := bow.Snapshot()
	if len(snapshot) != 2 {
		t.Fatalf("Expected snapshot of 2 documents, got %d", len(snapshot))
	}
	if snapshot[0][0] != 2 || snapshot[1][1] != 3 {
		t.Error("Snapshot does not reflect appended documents")
	}

	// Appending after a snapshot must not change the snapshot's length.
	bow.Append(BowDocument{2: 1})
	if len(snapshot) != 2 {
		t.Error("Snapshot length changed after append")
	}
}

func TestBowCorpusGobRoundTrip(t *testing.T) {
	bow := NewBowCorpus()
	bow.Append(BowDocument{0: 1, 5: 2})

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(bow); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded := NewBowCorpus()
	if err := gob.NewDecoder(&buf).Decode(decoded); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if decoded.Len() != 1 {
		t.Fatalf("Expected 1 document after round trip, got %d", decoded.Len())
	}
	if decoded.Docs[0][5] != 2 {
		t.Error("Document counts lost in round trip")
	}
}
