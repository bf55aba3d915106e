package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrorCodeCorpusNotFound   ErrorCode = "CORPUS_NOT_FOUND"
	ErrorCodeJobNotFound      ErrorCode = "JOB_NOT_FOUND"
	ErrorCodeCorpusExists     ErrorCode = "CORPUS_ALREADY_EXISTS"
	ErrorCodeUnknownMeasure   ErrorCode = "UNKNOWN_MEASURE"
	ErrorCodeMissingReference ErrorCode = "MISSING_REFERENCE_DATA"
	ErrorCodeVocabulary       ErrorCode = "WORD_NOT_IN_VOCABULARY"
	ErrorCodeInvalidJSON      ErrorCode = "INVALID_JSON"

	// Server Error Codes (5xx)
	ErrorCodeInternalError     ErrorCode = "INTERNAL_ERROR"
	ErrorCodeIngestionFailed   ErrorCode = "INGESTION_FAILED"
	ErrorCodeEvaluationFailed  ErrorCode = "EVALUATION_FAILED"
	ErrorCodePersistenceFailed ErrorCode = "PERSISTENCE_FAILED"
	ErrorCodeJobStartFailed    ErrorCode = "JOB_START_FAILED"
)

// ErrorDetail provides additional context for an error
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// APIError represents a standardized API error response
type APIError struct {
	Error     string        `json:"error"`
	Code      ErrorCode     `json:"code"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// APIErrorResponse creates a standardized error response
func APIErrorResponse(code ErrorCode, message string, details ...ErrorDetail) *APIError {
	return &APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
	}
}

// SendError sends a standardized error response
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...ErrorDetail) {
	c.JSON(statusCode, APIErrorResponse(code, message, details...))
}

// SendCorpusNotFoundError sends a standardized corpus not found error
func SendCorpusNotFoundError(c *gin.Context, corpusName string) {
	SendError(c, http.StatusNotFound, ErrorCodeCorpusNotFound,
		"Corpus '"+corpusName+"' not found")
}

// SendJobNotFoundError sends a standardized job not found error
func SendJobNotFoundError(c *gin.Context, jobID string) {
	SendError(c, http.StatusNotFound, ErrorCodeJobNotFound,
		"Job '"+jobID+"' not found")
}

// SendCorpusExistsError sends a standardized corpus already exists error
func SendCorpusExistsError(c *gin.Context, corpusName string) {
	SendError(c, http.StatusConflict, ErrorCodeCorpusExists,
		"Corpus '"+corpusName+"' already exists")
}

// SendInvalidJSONError sends a standardized invalid JSON error
func SendInvalidJSONError(c *gin.Context, err error) {
	SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON,
		"Invalid JSON in request body: "+err.Error())
}

// SendValidationError sends a validation error with field context
func SendValidationError(c *gin.Context, field, message string) {
	SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed,
		"Request validation failed", ErrorDetail{Field: field, Message: message, Code: "VALIDATION_ERROR"})
}

// SendInternalError sends a standardized internal server error
func SendInternalError(c *gin.Context, operation string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeInternalError,
		"Internal error during "+operation+": "+err.Error())
}

// SendIngestionError sends a standardized ingestion error
func SendIngestionError(c *gin.Context, corpusName string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeIngestionFailed,
		"Document ingestion failed for corpus '"+corpusName+"': "+err.Error())
}

// SendJobStartError sends a standardized job start error
func SendJobStartError(c *gin.Context, operation string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeJobStartFailed,
		"Failed to start "+operation+" job: "+err.Error())
}
