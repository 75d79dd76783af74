package v1

import (
	"net/http"
	"strconv"

	"github.com/bugify-api/dto"
	"github.com/bugify-api/services"
	"github.com/gin-gonic/gin"
)

// ProfileController handles the self-service profile endpoints.
type ProfileController struct {
	profile *services.ProfileService
}

// NewProfileController creates a new profile controller instance
func NewProfileController(profile *services.ProfileService) *ProfileController {
	return &ProfileController{profile: profile}
}

// Get handles GET /profile/me
func (ctrl *ProfileController) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := ctrl.profile.Get(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Update handles PUT /profile/me
func (ctrl *ProfileController) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	profile, err := ctrl.profile.Update(user.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ChangePassword handles PUT /profile/me/password
func (ctrl *ProfileController) ChangePassword(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.PasswordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := ctrl.profile.ChangePassword(user.ID, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Password changed successfully",
	})
}

// Stats handles GET /profile/me/stats
func (ctrl *ProfileController) Stats(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	stats, err := ctrl.profile.Stats(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Activity handles GET /profile/me/activity
func (ctrl *ProfileController) Activity(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 {
		limit = 5
	}

	activities, err := ctrl.profile.Activity(user.ID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}
