package model

import "time"

// EvaluationEvent records one completed coherence evaluation for analytics.
type EvaluationEvent struct {
	CorpusName string    `json:"corpus_name"`
	Measure    string    `json:"measure"`
	Score      float64   `json:"score"`
	TopicCount int       `json:"topic_count"`
	Took       int64     `json:"took"` // milliseconds
	Timestamp  time.Time `json:"timestamp"`
}

// MeasureStats summarizes evaluation outcomes for one coherence measure.
type MeasureStats struct {
	Measure     string  `json:"measure"`
	Evaluations int     `json:"evaluations"`
	MeanScore   float64 `json:"mean_score"`
	MinScore    float64 `json:"min_score"`
	MaxScore    float64 `json:"max_score"`
	AvgTookMs   float64 `json:"avg_took_ms"`
}

// AnalyticsReport is the read-only analytics view exposed by the API.
type AnalyticsReport struct {
	TotalEvaluations int            `json:"total_evaluations"`
	ActiveCorpora    int            `json:"active_corpora"`
	TotalDocuments   int            `json:"total_documents"`
	Measures         []MeasureStats `json:"measures"`
	GeneratedAt      time.Time      `json:"generated_at"`
}
