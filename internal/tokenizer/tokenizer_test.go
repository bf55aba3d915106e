package tokenizer

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		lowercase bool
		expected  []string
	}{
		{
			name:      "splits on punctuation and whitespace",
			input:     "human-computer interaction, for real",
			lowercase: true,
			expected:  []string{"human", "computer", "interaction", "for", "real"},
		},
		{
			name:      "lowercases when asked",
			input:     "Graph Minors Trees",
			lowercase: true,
			expected:  []string{"graph", "minors", "trees"},
		},
		{
			name:      "preserves case when asked",
			input:     "Graph Minors",
			lowercase: false,
			expected:  []string{"Graph", "Minors"},
		},
		{
			name:      "empty input yields empty slice",
			input:     "",
			lowercase: true,
			expected:  []string{},
		},
		{
			name:      "pure punctuation yields empty slice",
			input:     "--- ... !!!",
			lowercase: true,
			expected:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input, tt.lowercase)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  Trees ", true); got != "trees" {
		t.Errorf("Expected 'trees', got %q", got)
	}
	if got := Normalize("Trees", false); got != "Trees" {
		t.Errorf("Expected 'Trees', got %q", got)
	}
}
