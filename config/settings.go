// Package config provides configuration structures for the coherence engine.
// It defines corpus settings and per-evaluation coherence settings with
// the customary defaults of each measure.
package config

import (
	"strings"
)

// Default values applied by CoherenceSettings.ApplyDefaults.
const (
	DefaultMeasure    = "u_mass"
	DefaultTopN       = 10
	DefaultWindowSize = 110
	DefaultEpsilon    = 1e-12
	DefaultWorkers    = 1
)

// CorpusSettings contains the configuration for one named reference corpus.
// Both booleans default off so the JSON zero value gives the common setup:
// lowercased tokens and raw texts retained for window-based measures.
type CorpusSettings struct {
	Name string `json:"name"` // Unique name for the corpus

	// DisableRawTexts stops ingested token sequences from being retained.
	// Raw texts are the reference-statistics source for sliding-window
	// measures (c_v); disabling them saves memory when only u_mass is needed.
	DisableRawTexts bool `json:"disable_raw_texts"`

	// CaseSensitive keeps token casing as-is instead of lowercasing.
	CaseSensitive bool `json:"case_sensitive"`
}

// Validate checks corpus settings for basic requirements and returns
// human-readable conflict descriptions.
func (settings *CorpusSettings) Validate() []string {
	var conflicts []string
	if strings.TrimSpace(settings.Name) == "" {
		conflicts = append(conflicts, "Corpus name cannot be empty or whitespace-only")
	}
	return conflicts
}

// CoherenceSettings contains the tunable parameters for one coherence
// evaluation: which measure to run and the numeric knobs of its stages.
type CoherenceSettings struct {
	Measure string `json:"measure"` // Coherence measure name, e.g. "u_mass" or "c_v"

	// TopN truncates each topic to its first N words before segmentation.
	// Zero means "use the topic as given".
	TopN int `json:"top_n"`

	// WindowSize is the sliding-window length, in tokens, used by
	// window-based probability estimation (c_v). Ignored by u_mass.
	WindowSize int `json:"window_size"`

	// Epsilon is the smoothing constant keeping log() away from zero counts.
	Epsilon float64 `json:"epsilon"`

	// Workers is the number of goroutines used for the corpus-scan phase of
	// probability estimation. Counting partitions cleanly, so this is a pure
	// throughput knob.
	Workers int `json:"workers"`
}

// ApplyDefaults applies default values to the coherence settings
func (settings *CoherenceSettings) ApplyDefaults() {
	if settings.Measure == "" {
		settings.Measure = DefaultMeasure
	}
	if settings.TopN < 0 {
		settings.TopN = DefaultTopN
	}
	if settings.WindowSize <= 0 {
		settings.WindowSize = DefaultWindowSize
	}
	if settings.Epsilon <= 0 {
		settings.Epsilon = DefaultEpsilon
	}
	if settings.Workers <= 0 {
		settings.Workers = DefaultWorkers
	}
}

// Validate checks coherence settings for basic requirements and returns
// human-readable conflict descriptions. Measure-name validation is left to
// the pipeline, which owns the closed set of supported measures.
func (settings *CoherenceSettings) Validate() []string {
	var conflicts []string
	if strings.TrimSpace(settings.Measure) == "" {
		conflicts = append(conflicts, "Measure cannot be empty or whitespace-only")
	}
	if settings.WindowSize < 0 {
		conflicts = append(conflicts, "Window size cannot be negative")
	}
	if settings.Epsilon < 0 {
		conflicts = append(conflicts, "Epsilon cannot be negative")
	}
	if settings.Workers < 0 {
		conflicts = append(conflicts, "Workers cannot be negative")
	}
	return conflicts
}
