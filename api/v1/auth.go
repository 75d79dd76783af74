package v1

import (
	"net/http"
	"time"

	"github.com/bugify-api/dto"
	"github.com/bugify-api/services"
	"github.com/gin-gonic/gin"
)

// AuthController handles registration, login and session endpoints.
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController creates a new auth controller instance
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register handles user registration
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := ctrl.auth.Register(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login handles user authentication
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	authResponse, err := ctrl.auth.Login(req)
	if err != nil {
		respondError(c, err)
		return
	}

	// Also set the token as an HttpOnly cookie for browser clients.
	c.SetCookie(
		"access_token",
		authResponse.Token,
		int(time.Until(authResponse.ExpiresAt).Seconds()),
		"/",
		"",
		true,
		true,
	)

	c.JSON(http.StatusOK, authResponse)
}

// Logout clears the login cookie. Bearer tokens have no revocation and stay
// valid until expiry.
func (ctrl *AuthController) Logout(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Logged out successfully",
	})
}

// Me returns the currently authenticated user's record.
func (ctrl *AuthController) Me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user)
}
