package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/essay-orders-api/services"
	"github.com/kendall-kelly/essay-orders-api/utils"
)

func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func respondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": "Invalid request data",
			"details": err.Error(),
		},
	})
}

// respondServiceError maps a workflow error onto the response envelope
func respondServiceError(c *gin.Context, err error, fallback string) {
	_ = c.Error(err)

	var validation *services.ValidationError
	var upload *utils.FileUploadError
	switch {
	case errors.Is(err, services.ErrLookupFailed):
		respondError(c, http.StatusUnprocessableEntity, "LOOKUP_FAILED", err.Error())
	case errors.As(err, &validation):
		respondValidationError(c, validation)
	case errors.As(err, &upload):
		respondError(c, http.StatusBadRequest, upload.Code, upload.Message)
	default:
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", fallback)
	}
}

// idParam parses a positive numeric path parameter, responding 400 when it is not one
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+name+" format")
		return 0, false
	}
	return uint(id), true
}
