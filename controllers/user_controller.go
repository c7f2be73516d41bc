package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/essay-orders-api/config"
	"github.com/kendall-kelly/essay-orders-api/middleware"
	"github.com/kendall-kelly/essay-orders-api/models"
	"github.com/kendall-kelly/essay-orders-api/services"
	"gorm.io/gorm"
)

// UpdateUserRequest represents the request body for updating a user profile
type UpdateUserRequest struct {
	Name      string `json:"name" binding:"omitempty"`
	Email     string `json:"email" binding:"omitempty,email"`
	CountryID *uint  `json:"countryId"`
	GenderID  *uint  `json:"genderId"`
}

// CreateUser handles POST /api/v1/users - creates the user and its client or
// writer profile from Auth0 userinfo
func CreateUser(c *gin.Context) {
	auth0ID, err := middleware.GetUserID(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user ID from token")
		return
	}

	accessToken, err := middleware.GetAccessToken(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "MISSING_TOKEN", "Access token not found")
		return
	}

	userInfo, err := services.GetUserInfoProvider().GetUserInfo(c.Request.Context(), accessToken)
	if err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "AUTH0_ERROR", "Failed to fetch user information from Auth0")
		return
	}
	if userInfo.Email == "" {
		respondError(c, http.StatusBadRequest, "MISSING_EMAIL", "Email not provided by Auth0")
		return
	}
	if userInfo.Name == "" {
		respondError(c, http.StatusBadRequest, "MISSING_NAME", "Name not provided by Auth0")
		return
	}

	role := middleware.GetRole(c)
	if role == "" {
		role = models.RoleClient
	}
	if role != models.RoleClient && role != models.RoleWriter {
		respondError(c, http.StatusBadRequest, "INVALID_ROLE", "Role must be client or writer")
		return
	}

	user := models.User{
		Auth0ID: auth0ID,
		Name:    userInfo.Name,
		Email:   models.NormalizeEmail(userInfo.Email),
		Role:    role,
	}

	err = config.GetDB().WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if role == models.RoleWriter {
			return tx.Create(&models.Writer{UserID: user.ID}).Error
		}
		return tx.Create(&models.Client{UserID: user.ID}).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		respondError(c, http.StatusConflict, "USER_EXISTS", "A user with this Auth0 ID or email already exists")
		return
	}
	if err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create user")
		return
	}

	respondOK(c, http.StatusCreated, user)
}

// GetMyProfile handles GET /api/v1/users/me - gets current user's profile
func GetMyProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	respondOK(c, http.StatusOK, user)
}

// UpdateMyProfile handles PUT /api/v1/users/me - updates current user's profile
func UpdateMyProfile(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Email != "" {
		updates["email"] = models.NormalizeEmail(req.Email)
	}

	profile := make(map[string]interface{})
	if req.CountryID != nil {
		profile["country_id"] = *req.CountryID
	}
	if req.GenderID != nil {
		profile["gender_id"] = *req.GenderID
	}

	if len(updates) == 0 && len(profile) == 0 {
		respondOK(c, http.StatusOK, user)
		return
	}

	db := config.GetDB().WithContext(c.Request.Context())
	err := db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(user).Updates(updates).Error; err != nil {
				return err
			}
		}
		if len(profile) == 0 {
			return nil
		}
		if user.Role == models.RoleWriter {
			return tx.Model(&models.Writer{}).Where("user_id = ?", user.ID).Updates(profile).Error
		}
		return tx.Model(&models.Client{}).Where("user_id = ?", user.ID).Updates(profile).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		respondError(c, http.StatusConflict, "EMAIL_EXISTS", "A user with this email already exists")
		return
	}
	if err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update user profile")
		return
	}

	if err := db.First(user, user.ID).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch updated profile")
		return
	}
	respondOK(c, http.StatusOK, user)
}
