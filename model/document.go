package model

// Document is one reference-corpus document submitted for ingestion. Either
// Text or Tokens must be set: Text is run through the tokenizer, Tokens is
// accepted as-is for callers that tokenize upstream.
type Document struct {
	ID     string   `json:"id"`
	Text   string   `json:"text,omitempty"`
	Tokens []string `json:"tokens,omitempty"`
}
