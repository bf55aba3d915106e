package jobs

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gcbaptista/go-topic-coherence/internal/errors"
	"github.com/gcbaptista/go-topic-coherence/model"
)

// Manager handles background job execution and tracking. Long evaluations
// over large corpora run as jobs so API callers get an id immediately and
// poll for the result.
type Manager struct {
	mu      sync.RWMutex
	jobs    map[string]*model.Job
	workers chan struct{} // Limits concurrent jobs
	wg      sync.WaitGroup
	metrics *JobMetrics
}

// NewManager creates a new job manager with specified worker count
func NewManager(maxWorkers int) *Manager {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &Manager{
		jobs:    make(map[string]*model.Job),
		workers: make(chan struct{}, maxWorkers),
		metrics: NewJobMetrics(),
	}
}

// Stop waits for all running jobs to finish.
func (m *Manager) Stop() {
	m.wg.Wait()
	log.Printf("Job manager stopped")
}

// CreateJob creates a new job and returns its ID
func (m *Manager) CreateJob(jobType model.JobType, corpusName string, metadata map[string]string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	job := &model.Job{
		ID:         uuid.New().String(),
		Type:       jobType,
		Status:     model.JobStatusPending,
		CorpusName: corpusName,
		CreatedAt:  time.Now(),
		Metadata:   metadata,
	}

	m.jobs[job.ID] = job
	m.metrics.RecordJobCreated(jobType)
	log.Printf("Created job %s (type: %s) for corpus '%s'", job.ID, job.Type, job.CorpusName)
	return job.ID
}

// GetJob retrieves a job by ID
func (m *Manager) GetJob(jobID string) (*model.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	job, exists := m.jobs[jobID]
	if !exists {
		return nil, errors.NewJobNotFoundError(jobID)
	}

	// Return a copy to avoid race conditions
	jobCopy := *job
	if job.Progress != nil {
		progressCopy := *job.Progress
		jobCopy.Progress = &progressCopy
	}
	if job.Result != nil {
		resultCopy := *job.Result
		jobCopy.Result = &resultCopy
	}
	return &jobCopy, nil
}

// ListJobs returns all jobs for a specific corpus, optionally filtered by
// status. An empty corpusName matches every corpus.
func (m *Manager) ListJobs(corpusName string, status *model.JobStatus) []*model.Job {
	m.mu.RLock()
	defer m.mu.RUnlock()

	jobs := make([]*model.Job, 0)
	for _, job := range m.jobs {
		if corpusName != "" && job.CorpusName != corpusName {
			continue
		}
		if status != nil && job.Status != *status {
			continue
		}
		jobCopy := *job
		jobs = append(jobs, &jobCopy)
	}
	return jobs
}

// Run executes fn in the background under a worker slot, transitioning the
// job through running and completed/failed. fn's result, if any, is attached
// to the job for later retrieval.
func (m *Manager) Run(jobID string, fn func(progress func(current, total int, message string)) (*model.CoherenceResult, error)) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		m.workers <- struct{}{} // Acquire worker slot
		defer func() { <-m.workers }()

		m.setRunning(jobID)
		started := time.Now()

		result, err := fn(func(current, total int, message string) {
			m.updateProgress(jobID, current, total, message)
		})
		if err != nil {
			m.setFailed(jobID, err)
			return
		}
		m.setCompleted(jobID, result, time.Since(started))
	}()
}

func (m *Manager) setRunning(jobID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, exists := m.jobs[jobID]
	if !exists {
		return
	}
	now := time.Now()
	m.metrics.RecordJobStatusChange(job.Status, model.JobStatusRunning)
	job.Status = model.JobStatusRunning
	job.StartedAt = &now
}

func (m *Manager) setCompleted(jobID string, result *model.CoherenceResult, took time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, exists := m.jobs[jobID]
	if !exists {
		return
	}
	now := time.Now()
	m.metrics.RecordJobStatusChange(job.Status, model.JobStatusCompleted)
	m.metrics.RecordJobCompleted(job.Type, took)
	job.Status = model.JobStatusCompleted
	job.Result = result
	job.CompletedAt = &now
	log.Printf("Job %s completed in %v", jobID, took)
}

func (m *Manager) setFailed(jobID string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, exists := m.jobs[jobID]
	if !exists {
		return
	}
	now := time.Now()
	m.metrics.RecordJobStatusChange(job.Status, model.JobStatusFailed)
	m.metrics.RecordJobFailed(job.Type)
	job.Status = model.JobStatusFailed
	job.Error = err.Error()
	job.CompletedAt = &now
	log.Printf("Job %s failed: %v", jobID, err)
}

func (m *Manager) updateProgress(jobID string, current, total int, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, exists := m.jobs[jobID]
	if !exists {
		return
	}
	job.Progress = &model.JobProgress{Current: current, Total: total, Message: message}
}

// GetMetrics returns current job performance metrics
func (m *Manager) GetMetrics() JobMetricsData {
	return m.metrics.GetMetrics()
}
