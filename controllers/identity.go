package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/essay-orders-api/config"
	"github.com/kendall-kelly/essay-orders-api/middleware"
	"github.com/kendall-kelly/essay-orders-api/models"
)

// currentUser loads the user behind the token, writing the error response when it cannot
func currentUser(c *gin.Context) (*models.User, bool) {
	auth0ID, err := middleware.GetUserID(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return nil, false
	}

	var user models.User
	if err := config.GetDB().WithContext(c.Request.Context()).Where("auth0_id = ?", auth0ID).First(&user).Error; err != nil {
		respondError(c, http.StatusNotFound, "USER_NOT_FOUND", "User profile not found. Please create a profile first.")
		return nil, false
	}
	return &user, true
}

// currentUserWithRole is currentUser restricted to one role
func currentUserWithRole(c *gin.Context, role string) (*models.User, bool) {
	user, ok := currentUser(c)
	if !ok {
		return nil, false
	}
	if user.Role != role {
		respondError(c, http.StatusForbidden, "FORBIDDEN", "Only "+role+"s can perform this action")
		return nil, false
	}
	return user, true
}
