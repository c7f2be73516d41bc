package testutil

import (
	"strings"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/essay-orders-api/middleware"
)

// MockValidatedClaims creates a mock ValidatedClaims for testing
func MockValidatedClaims(subject, role string, scopes []string) *validator.ValidatedClaims {
	return &validator.ValidatedClaims{
		RegisteredClaims: validator.RegisteredClaims{
			Issuer:  "https://test.auth0.com/",
			Subject: subject,
		},
		CustomClaims: &middleware.CustomClaims{
			Scope: strings.Join(scopes, " "),
			Role:  role,
		},
	}
}

// MockAuth is a stand-in for middleware.EnsureValidToken that trusts the given identity
func MockAuth(auth0ID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", auth0ID)
		c.Set("validated_claims", MockValidatedClaims(auth0ID, role, nil))
		c.Next()
	}
}

// HeaderAuth trusts the X-Test-User header, so one router can serve several users
func HeaderAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth0ID := c.GetHeader("X-Test-User")
		role := c.GetHeader("X-Test-Role")
		c.Set("user_id", auth0ID)
		c.Set("validated_claims", MockValidatedClaims(auth0ID, role, nil))
		c.Next()
	}
}
