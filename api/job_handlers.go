package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-topic-coherence/internal/jobs"
	"github.com/gcbaptista/go-topic-coherence/model"
)

// jobMetricsProvider is implemented by engines that expose job metrics.
type jobMetricsProvider interface {
	JobMetrics() jobs.JobMetricsData
}

// GetJobHandler returns the status (and, when finished, the result) of one
// background job.
func (api *API) GetJobHandler(c *gin.Context) {
	jobID := c.Param("jobId")

	job, err := api.engine.GetJob(jobID)
	if err != nil {
		SendJobNotFoundError(c, jobID)
		return
	}
	c.JSON(http.StatusOK, toJobResponse(job))
}

// ListJobsHandler lists background jobs for one corpus, optionally filtered
// by ?status=.
func (api *API) ListJobsHandler(c *gin.Context) {
	corpusName := c.Param("corpusName")

	var status *model.JobStatus
	if statusParam := c.Query("status"); statusParam != "" {
		s := model.JobStatus(statusParam)
		status = &s
	}

	jobList := api.engine.ListJobs(corpusName, status)
	responses := make([]gin.H, len(jobList))
	for i, job := range jobList {
		responses[i] = toJobResponse(job)
	}
	c.JSON(http.StatusOK, gin.H{"jobs": responses, "total": len(jobList)})
}

// GetJobMetricsHandler returns job execution metrics.
func (api *API) GetJobMetricsHandler(c *gin.Context) {
	provider, ok := api.engine.(jobMetricsProvider)
	if !ok {
		SendError(c, http.StatusNotImplemented, ErrorCodeInternalError, "Job metrics not supported by this engine")
		return
	}
	c.JSON(http.StatusOK, provider.JobMetrics())
}

// toJobResponse renders a job with a NaN-safe result payload.
func toJobResponse(job *model.Job) gin.H {
	response := gin.H{
		"id":          job.ID,
		"type":        job.Type,
		"status":      job.Status,
		"corpus_name": job.CorpusName,
		"created_at":  job.CreatedAt,
	}
	if job.Progress != nil {
		response["progress"] = job.Progress
	}
	if job.Error != "" {
		response["error"] = job.Error
	}
	if job.StartedAt != nil {
		response["started_at"] = job.StartedAt
	}
	if job.CompletedAt != nil {
		response["completed_at"] = job.CompletedAt
	}
	if job.Metadata != nil {
		response["metadata"] = job.Metadata
	}
	if job.Result != nil {
		response["result"] = toCoherenceResponse(*job.Result)
	}
	return response
}
