package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bugify-api/middleware"
	"github.com/bugify-api/models"
	"github.com/bugify-api/utils"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto the wire. Known API errors carry
// their own status; anything else is a store failure and surfaces as 500.
func respondError(c *gin.Context, err error) {
	var apiErr *utils.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{
			"status":  "error",
			"message": apiErr.Message,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "Internal server error",
	})
}

// respondBindError reports malformed or structurally invalid request bodies.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"status":  "error",
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

// intParam parses a numeric path parameter.
func intParam(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":  "error",
			"message": "Invalid " + name,
		})
		return 0, false
	}
	return value, true
}

// currentUser is middleware.CurrentUser with the 401 response baked in. The
// auth middleware guarantees the user is present on every protected route.
func currentUser(c *gin.Context) (models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "User not authenticated",
		})
	}
	return user, ok
}
