package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/essay-orders-api/models"
	"github.com/kendall-kelly/essay-orders-api/services"
)

// InviteWriterRequest is the body of POST /writers/invitations
type InviteWriterRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// PreferredWriters handles GET /api/v1/writers/preferred
func PreferredWriters(c *gin.Context) {
	user, ok := currentUserWithRole(c, models.RoleClient)
	if !ok {
		return
	}

	writers, err := services.GetOrderService().PreferredWriters(c.Request.Context(), user.Email)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve preferred writers")
		return
	}
	respondOK(c, http.StatusOK, writers)
}

// InviteWriter handles POST /api/v1/writers/invitations
func InviteWriter(c *gin.Context) {
	user, ok := currentUserWithRole(c, models.RoleClient)
	if !ok {
		return
	}

	var req InviteWriterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	result, err := services.GetOrderService().InviteWriter(c.Request.Context(), user.Email, req.Email)
	if err != nil {
		respondServiceError(c, err, "Failed to invite writer")
		return
	}

	status := http.StatusOK
	if result.Invited {
		status = http.StatusCreated
	}
	respondOK(c, status, result)
}
