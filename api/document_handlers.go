package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-topic-coherence/model"
)

// AddDocumentsRequest is the body of the document ingestion endpoint.
type AddDocumentsRequest struct {
	Documents []model.Document `json:"documents"`
}

// AddDocumentsHandler ingests reference documents into a corpus.
// Request Body: AddDocumentsRequest
func (api *API) AddDocumentsHandler(c *gin.Context) {
	corpusName := c.Param("corpusName")

	accessor, err := api.engine.GetCorpus(corpusName)
	if err != nil {
		SendCorpusNotFoundError(c, corpusName)
		return
	}

	var req AddDocumentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if len(req.Documents) == 0 {
		SendValidationError(c, "documents", "At least one document is required")
		return
	}

	if err := accessor.AddDocuments(req.Documents); err != nil {
		if IsValidationError(err) {
			SendValidationError(c, "documents", err.Error())
			return
		}
		SendIngestionError(c, corpusName, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Documents ingested",
		"stats":   accessor.Stats(),
	})
}
