// Package testing provides shared fixtures for coherence tests: the small
// two-cluster reference corpus used across packages, and helpers to build
// corpus structures from tokenized documents.
package testing

import (
	"github.com/gcbaptista/go-topic-coherence/corpus"
)

// ToyCorpus returns the classic nine-document corpus over two latent
// clusters: a human/computer-systems cluster and a graph-theory cluster.
func ToyCorpus() [][]string {
	return [][]string{
		{"human", "interface", "computer"},
		{"survey", "user", "computer", "system", "response", "time"},
		{"eps", "user", "interface", "system"},
		{"system", "human", "system", "eps"},
		{"user", "response", "time"},
		{"trees"},
		{"graph", "trees"},
		{"graph", "minors", "trees"},
		{"graph", "minors", "survey"},
	}
}

// BuildCorpus ingests tokenized documents into fresh corpus structures and
// returns the dictionary, bag-of-words vectors and id sequences.
func BuildCorpus(texts [][]string) (*corpus.Dictionary, []corpus.BowDocument, [][]uint32) {
	dict := corpus.NewDictionary()
	bowDocs := make([]corpus.BowDocument, 0, len(texts))
	sequences := make([][]uint32, 0, len(texts))

	for _, tokens := range texts {
		ids := make([]uint32, len(tokens))
		bowDoc := make(corpus.BowDocument, len(tokens))
		for i, token := range tokens {
			id := dict.AddToken(token)
			ids[i] = id
			bowDoc[id]++
		}
		bowDocs = append(bowDocs, bowDoc)
		sequences = append(sequences, ids)
	}
	return dict, bowDocs, sequences
}

// IDs resolves tokens to word ids through dict, panicking on unknown tokens.
// Test fixtures control their vocabulary, so a miss is a fixture bug.
func IDs(dict *corpus.Dictionary, tokens ...string) []uint32 {
	ids := make([]uint32, len(tokens))
	for i, token := range tokens {
		id, ok := dict.ID(token)
		if !ok {
			panic("unknown token in test fixture: " + token)
		}
		ids[i] = id
	}
	return ids
}
