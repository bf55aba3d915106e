package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-topic-coherence/config"
	"github.com/gcbaptista/go-topic-coherence/internal/analytics"
	"github.com/gcbaptista/go-topic-coherence/services"
)

const maxRequestBodySize = 32 << 20 // 32 MB, bulk document ingestion included

// API holds dependencies for API handlers, primarily the corpus manager.
type API struct {
	engine    services.CorpusManager
	analytics *analytics.Service
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.CorpusManager) *API {
	return &API{
		engine:    engine,
		analytics: analytics.NewService(engine),
	}
}

// SetupRoutes defines all the API routes for the coherence engine.
func SetupRoutes(router *gin.Engine, engine services.CorpusManager) {
	apiHandler := NewAPI(engine)

	router.Use(RequestSizeLimitMiddleware(maxRequestBodySize))
	router.Use(CORSMiddleware())

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Analytics route
	router.GET("/analytics", apiHandler.GetAnalyticsHandler)

	// Pipeline introspection route
	router.GET("/measures/:measure/stages", apiHandler.GetPipelineStagesHandler)

	// Job management routes
	jobRoutes := router.Group("/jobs")
	{
		jobRoutes.GET("/:jobId", apiHandler.GetJobHandler)         // Get job status by ID
		jobRoutes.GET("/metrics", apiHandler.GetJobMetricsHandler) // Get job performance metrics
	}

	// Corpus management routes
	corpusRoutes := router.Group("/corpora")
	{
		corpusRoutes.POST("", apiHandler.CreateCorpusHandler)                           // Create a new corpus
		corpusRoutes.GET("", apiHandler.ListCorporaHandler)                             // List all corpora
		corpusRoutes.GET("/:corpusName", apiHandler.GetCorpusHandler)                   // Get corpus settings and stats
		corpusRoutes.DELETE("/:corpusName", apiHandler.DeleteCorpusHandler)             // Delete a corpus
		corpusRoutes.POST("/:corpusName/persist", apiHandler.PersistHandler)            // Persist corpus data to disk
		corpusRoutes.POST("/:corpusName/persist_async", apiHandler.PersistAsyncHandler) // Persist in the background
		corpusRoutes.GET("/:corpusName/jobs", apiHandler.ListJobsHandler)               // List jobs for a corpus
		corpusRoutes.PUT("/:corpusName/documents", apiHandler.AddDocumentsHandler)      // Add reference documents

		// Coherence evaluation routes per corpus
		corpusRoutes.POST("/:corpusName/_coherence", apiHandler.EvaluateHandler)
		corpusRoutes.POST("/:corpusName/_coherence_async", apiHandler.EvaluateAsyncHandler)
	}
}

// HealthCheckHandler reports service liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"corpora": len(api.engine.ListCorpora()),
	})
}

// CreateCorpusHandler handles the request to create a new corpus.
// Request Body: config.CorpusSettings
func (api *API) CreateCorpusHandler(c *gin.Context) {
	var settings config.CorpusSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if result := ValidateCorpusName(settings.Name); !result.Valid {
		SendValidationError(c, "name", result.Errors[0].Message)
		return
	}

	if err := api.engine.CreateCorpus(settings); err != nil {
		if IsCorpusExists(err) {
			SendCorpusExistsError(c, settings.Name)
			return
		}
		SendInternalError(c, "corpus creation", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Corpus '" + settings.Name + "' created"})
}

// ListCorporaHandler returns all registered corpus names.
func (api *API) ListCorporaHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"corpora": api.engine.ListCorpora()})
}

// GetCorpusHandler returns settings and stats for one corpus.
func (api *API) GetCorpusHandler(c *gin.Context) {
	corpusName := c.Param("corpusName")

	accessor, err := api.engine.GetCorpus(corpusName)
	if err != nil {
		SendCorpusNotFoundError(c, corpusName)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"settings": accessor.Settings(),
		"stats":    accessor.Stats(),
	})
}

// DeleteCorpusHandler deletes one corpus.
func (api *API) DeleteCorpusHandler(c *gin.Context) {
	corpusName := c.Param("corpusName")

	if err := api.engine.DeleteCorpus(corpusName); err != nil {
		SendCorpusNotFoundError(c, corpusName)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Corpus '" + corpusName + "' deleted"})
}

// PersistHandler persists one corpus to disk.
func (api *API) PersistHandler(c *gin.Context) {
	corpusName := c.Param("corpusName")

	if err := api.engine.PersistCorpus(corpusName); err != nil {
		if IsCorpusNotFound(err) {
			SendCorpusNotFoundError(c, corpusName)
			return
		}
		SendError(c, http.StatusInternalServerError, ErrorCodePersistenceFailed,
			"Failed to persist corpus '"+corpusName+"': "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Corpus '" + corpusName + "' persisted"})
}

// PersistAsyncHandler persists one corpus in the background and returns the
// job id for polling.
func (api *API) PersistAsyncHandler(c *gin.Context) {
	corpusName := c.Param("corpusName")

	jobID, err := api.engine.PersistCorpusAsync(corpusName)
	if err != nil {
		if IsCorpusNotFound(err) {
			SendCorpusNotFoundError(c, corpusName)
			return
		}
		SendJobStartError(c, "corpus persistence", err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"job_id": jobID})
}

// GetPipelineStagesHandler exposes the stage identifiers bound to a measure.
func (api *API) GetPipelineStagesHandler(c *gin.Context) {
	measure := c.Param("measure")

	stages, err := api.engine.PipelineStages(measure)
	if err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeUnknownMeasure, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"measure": measure, "stages": stages})
}
