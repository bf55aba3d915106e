package api

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	internalerrors "github.com/gcbaptista/go-topic-coherence/internal/errors"
	"github.com/gcbaptista/go-topic-coherence/model"
	"github.com/gcbaptista/go-topic-coherence/services"
)

// TopicScoreResponse mirrors model.TopicScore with a nullable score: NaN
// (topic with no segments) is not representable in JSON and becomes null.
type TopicScoreResponse struct {
	Topic        model.Topic `json:"topic"`
	Score        *float64    `json:"score"`
	SegmentCount int         `json:"segment_count"`
	Skipped      bool        `json:"skipped,omitempty"`
}

// CoherenceResponse is the JSON form of one evaluation result.
type CoherenceResponse struct {
	Measure      string               `json:"measure"`
	Score        *float64             `json:"score"`
	TopicScores  []TopicScoreResponse `json:"topic_scores"`
	EvaluationID string               `json:"evaluation_id"`
	Took         int64                `json:"took"`
}

func toCoherenceResponse(result model.CoherenceResult) CoherenceResponse {
	response := CoherenceResponse{
		Measure:      result.Measure,
		Score:        jsonFloat(result.Score),
		TopicScores:  make([]TopicScoreResponse, len(result.TopicScores)),
		EvaluationID: result.EvaluationID,
		Took:         result.Took,
	}
	for i, ts := range result.TopicScores {
		response.TopicScores[i] = TopicScoreResponse{
			Topic:        ts.Topic,
			Score:        jsonFloat(ts.Score),
			SegmentCount: ts.SegmentCount,
			Skipped:      ts.Skipped,
		}
	}
	return response
}

// jsonFloat maps NaN to nil so encoding/json can serialize the response.
func jsonFloat(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

// EvaluateHandler runs a synchronous coherence evaluation.
// Request Body: services.CoherenceRequest
func (api *API) EvaluateHandler(c *gin.Context) {
	corpusName := c.Param("corpusName")

	var req services.CoherenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if result := ValidateTopics(topicsAsSlices(req.Topics)); !result.Valid {
		SendValidationError(c, result.Errors[0].Field, result.Errors[0].Message)
		return
	}

	result, err := api.engine.EvaluateCoherence(corpusName, req)
	if err != nil {
		api.sendEvaluationError(c, corpusName, err)
		return
	}

	api.analytics.TrackEvaluation(model.EvaluationEvent{
		CorpusName: corpusName,
		Measure:    result.Measure,
		Score:      result.Score,
		TopicCount: len(result.TopicScores),
		Took:       result.Took,
		Timestamp:  time.Now(),
	})

	c.JSON(http.StatusOK, toCoherenceResponse(result))
}

// EvaluateAsyncHandler starts a background coherence evaluation and returns
// the job id for polling.
// Request Body: services.CoherenceRequest
func (api *API) EvaluateAsyncHandler(c *gin.Context) {
	corpusName := c.Param("corpusName")

	var req services.CoherenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if result := ValidateTopics(topicsAsSlices(req.Topics)); !result.Valid {
		SendValidationError(c, result.Errors[0].Field, result.Errors[0].Message)
		return
	}

	jobID, err := api.engine.EvaluateCoherenceAsync(corpusName, req)
	if err != nil {
		if IsCorpusNotFound(err) {
			SendCorpusNotFoundError(c, corpusName)
			return
		}
		SendJobStartError(c, "coherence evaluation", err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"job_id": jobID})
}

// sendEvaluationError maps evaluation failures onto the error taxonomy.
func (api *API) sendEvaluationError(c *gin.Context, corpusName string, err error) {
	switch {
	case IsCorpusNotFound(err):
		SendCorpusNotFoundError(c, corpusName)
	case errors.Is(err, internalerrors.ErrMissingReference):
		SendError(c, http.StatusBadRequest, ErrorCodeMissingReference, err.Error())
	case errors.Is(err, internalerrors.ErrUnknownMeasure):
		SendError(c, http.StatusBadRequest, ErrorCodeUnknownMeasure, err.Error())
	case IsVocabularyError(err):
		SendError(c, http.StatusBadRequest, ErrorCodeVocabulary, err.Error())
	case IsValidationError(err):
		SendValidationError(c, "", err.Error())
	default:
		SendError(c, http.StatusInternalServerError, ErrorCodeEvaluationFailed,
			"Coherence evaluation failed on corpus '"+corpusName+"': "+err.Error())
	}
}

func topicsAsSlices(topics []model.Topic) [][]string {
	out := make([][]string, len(topics))
	for i, t := range topics {
		out[i] = t
	}
	return out
}
