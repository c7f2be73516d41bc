package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/essay-orders-api/services"
)

// ListReference handles GET /api/v1/reference/:kind - one of the seeded lookup tables
func ListReference(c *gin.Context) {
	kind := c.Param("kind")

	rows, ok, err := services.GetReferenceService().List(c.Request.Context(), kind)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve "+kind)
		return
	}
	if !ok {
		respondError(c, http.StatusNotFound, "UNKNOWN_REFERENCE", "Unknown reference list: "+kind)
		return
	}
	respondOK(c, http.StatusOK, rows)
}

// GrammarQuiz handles GET /api/v1/reference/grammar-quiz?limit=
func GrammarQuiz(c *gin.Context) {
	limit := services.DefaultQuizSize
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 50 {
			respondError(c, http.StatusBadRequest, "INVALID_LIMIT", "limit must be between 1 and 50")
			return
		}
		limit = n
	}

	questions, err := services.GetReferenceService().GrammarQuiz(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err, "Failed to draw grammar quiz")
		return
	}
	respondOK(c, http.StatusOK, questions)
}
