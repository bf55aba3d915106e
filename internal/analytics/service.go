// Package analytics tracks completed coherence evaluations and reports
// per-measure summaries.
package analytics

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/gcbaptista/go-topic-coherence/model"
	"github.com/gcbaptista/go-topic-coherence/services"
)

const maxEventsToKeep = 10000 // Keep last 10k events for performance

// Service implements evaluation analytics tracking and reporting
type Service struct {
	mutex         sync.RWMutex
	events        []model.EvaluationEvent
	corpusManager services.CorpusManager
}

// NewService creates a new analytics service
func NewService(corpusManager services.CorpusManager) *Service {
	return &Service{
		events:        make([]model.EvaluationEvent, 0),
		corpusManager: corpusManager,
	}
}

// TrackEvaluation records a completed coherence evaluation. NaN overall
// scores (no scorable topics) are recorded but excluded from score summaries.
func (s *Service) TrackEvaluation(event model.EvaluationEvent) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	event.Timestamp = time.Now()
	s.events = append(s.events, event)

	// Keep only the latest events to prevent unbounded growth
	if len(s.events) > maxEventsToKeep {
		s.events = s.events[len(s.events)-maxEventsToKeep:]
	}
}

// GetReport returns the current analytics report.
func (s *Service) GetReport() model.AnalyticsReport {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	report := model.AnalyticsReport{
		TotalEvaluations: len(s.events),
		ActiveCorpora:    len(s.corpusManager.ListCorpora()),
		TotalDocuments:   s.totalDocuments(),
		Measures:         s.measureStats(),
		GeneratedAt:      time.Now(),
	}
	return report
}

// totalDocuments sums document counts across all corpora.
func (s *Service) totalDocuments() int {
	total := 0
	for _, name := range s.corpusManager.ListCorpora() {
		accessor, err := s.corpusManager.GetCorpus(name)
		if err != nil {
			continue
		}
		total += accessor.Stats().DocumentCount
	}
	return total
}

// measureStats aggregates events per measure, sorted by measure name for a
// stable report layout.
func (s *Service) measureStats() []model.MeasureStats {
	byMeasure := make(map[string]*model.MeasureStats)
	tookByMeasure := make(map[string]int64)

	for _, event := range s.events {
		stats, exists := byMeasure[event.Measure]
		if !exists {
			stats = &model.MeasureStats{
				Measure:  event.Measure,
				MinScore: math.Inf(1),
				MaxScore: math.Inf(-1),
			}
			byMeasure[event.Measure] = stats
		}
		stats.Evaluations++
		tookByMeasure[event.Measure] += event.Took

		if math.IsNaN(event.Score) {
			continue
		}
		stats.MeanScore += event.Score
		if event.Score < stats.MinScore {
			stats.MinScore = event.Score
		}
		if event.Score > stats.MaxScore {
			stats.MaxScore = event.Score
		}
	}

	result := make([]model.MeasureStats, 0, len(byMeasure))
	for measure, stats := range byMeasure {
		scored := 0
		for _, event := range s.events {
			if event.Measure == measure && !math.IsNaN(event.Score) {
				scored++
			}
		}
		if scored > 0 {
			stats.MeanScore /= float64(scored)
		} else {
			// Zero rather than NaN: the report is served as JSON and NaN
			// is not representable there.
			stats.MeanScore = 0
			stats.MinScore = 0
			stats.MaxScore = 0
		}
		stats.AvgTookMs = float64(tookByMeasure[measure]) / float64(stats.Evaluations)
		result = append(result, *stats)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Measure < result[j].Measure })
	return result
}
