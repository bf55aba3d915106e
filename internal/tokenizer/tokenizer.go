package tokenizer

import (
	"regexp"
	"strings"
)

// nonAlphanumericRegex matches sequences of non-alphanumeric characters.
var nonAlphanumericRegex = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Tokenize converts a string into a slice of tokens by splitting on
// non-alphanumeric characters. Lowercasing is optional so corpora that
// distinguish case (e.g. proper nouns as topic words) can keep it.
func Tokenize(text string, lowercase bool) []string {
	if lowercase {
		text = strings.ToLower(text)
	}

	split := nonAlphanumericRegex.Split(text, -1)

	tokens := make([]string, 0) // Initialize as empty slice, not nil
	for _, s := range split {
		if s != "" { // Filter out empty strings
			tokens = append(tokens, s)
		}
	}
	return tokens
}

// Normalize applies the same casing rule to a single token, so topic words
// submitted for evaluation resolve against dictionary entries produced by
// Tokenize.
func Normalize(token string, lowercase bool) string {
	token = strings.TrimSpace(token)
	if lowercase {
		token = strings.ToLower(token)
	}
	return token
}
