package jobs

import (
	"sync"
	"time"

	"github.com/gcbaptista/go-topic-coherence/model"
)

// JobMetricsData represents job metrics data without mutex (safe for copying)
type JobMetricsData struct {
	JobsCreated          int64                     `json:"jobs_created"`
	JobsCompleted        int64                     `json:"jobs_completed"`
	JobsFailed           int64                     `json:"jobs_failed"`
	TotalExecutionTime   time.Duration             `json:"total_execution_time_ns"`
	AverageExecutionTime time.Duration             `json:"average_execution_time_ns"`
	JobsByType           map[model.JobType]int64   `json:"jobs_by_type"`
	JobsByStatus         map[model.JobStatus]int64 `json:"jobs_by_status"`
	LastUpdated          time.Time                 `json:"last_updated"`
}

// JobMetrics tracks performance metrics for job operations
type JobMetrics struct {
	mu                   sync.RWMutex
	jobsCreated          int64
	jobsCompleted        int64
	jobsFailed           int64
	totalExecutionTime   time.Duration
	jobsByType           map[model.JobType]int64
	jobsByStatus         map[model.JobStatus]int64
	lastUpdated          time.Time
}

// NewJobMetrics creates a new metrics collector
func NewJobMetrics() *JobMetrics {
	return &JobMetrics{
		jobsByType:   make(map[model.JobType]int64),
		jobsByStatus: make(map[model.JobStatus]int64),
		lastUpdated:  time.Now(),
	}
}

// RecordJobCreated increments job creation counters
func (m *JobMetrics) RecordJobCreated(jobType model.JobType) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.jobsCreated++
	m.jobsByType[jobType]++
	m.jobsByStatus[model.JobStatusPending]++
	m.lastUpdated = time.Now()
}

// RecordJobStatusChange updates status counters
func (m *JobMetrics) RecordJobStatusChange(oldStatus, newStatus model.JobStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if oldStatus != "" {
		m.jobsByStatus[oldStatus]--
		if m.jobsByStatus[oldStatus] < 0 {
			m.jobsByStatus[oldStatus] = 0
		}
	}
	m.jobsByStatus[newStatus]++
	m.lastUpdated = time.Now()
}

// RecordJobCompleted records a successful job completion and its duration
func (m *JobMetrics) RecordJobCompleted(jobType model.JobType, executionTime time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.jobsCompleted++
	m.totalExecutionTime += executionTime
	m.lastUpdated = time.Now()
}

// RecordJobFailed records a job failure
func (m *JobMetrics) RecordJobFailed(jobType model.JobType) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.jobsFailed++
	m.lastUpdated = time.Now()
}

// GetMetrics returns a copy of the current metrics
func (m *JobMetrics) GetMetrics() JobMetricsData {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var average time.Duration
	if m.jobsCompleted > 0 {
		average = m.totalExecutionTime / time.Duration(m.jobsCompleted)
	}

	byType := make(map[model.JobType]int64, len(m.jobsByType))
	for k, v := range m.jobsByType {
		byType[k] = v
	}
	byStatus := make(map[model.JobStatus]int64, len(m.jobsByStatus))
	for k, v := range m.jobsByStatus {
		byStatus[k] = v
	}

	return JobMetricsData{
		JobsCreated:          m.jobsCreated,
		JobsCompleted:        m.jobsCompleted,
		JobsFailed:           m.jobsFailed,
		TotalExecutionTime:   m.totalExecutionTime,
		AverageExecutionTime: average,
		JobsByType:           byType,
		JobsByStatus:         byStatus,
		LastUpdated:          m.lastUpdated,
	}
}

// GetSuccessRate returns the fraction of finished jobs that completed
// successfully, in [0, 1].
func (m *JobMetrics) GetSuccessRate() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	finished := m.jobsCompleted + m.jobsFailed
	if finished == 0 {
		return 0
	}
	return float64(m.jobsCompleted) / float64(finished)
}
