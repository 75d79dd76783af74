package middleware

import (
	"net/http"
	"strings"

	"github.com/bugify-api/models"
	"github.com/bugify-api/services"
	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// AuthMiddleware resolves the caller's identity: it validates the bearer
// token (Authorization header first, login cookie as fallback), looks the
// subject up in the user store, and stashes the record on the context.
// Every failure mode short-circuits the request.
func AuthMiddleware(tokens *services.TokenService, auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Not authenticated",
			})
			c.Abort()
			return
		}

		claims, err := tokens.Validate(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		user, err := auth.GetByEmail(claims.Subject)
		if err != nil {
			// A valid token whose subject no longer exists reads as 404,
			// matching the login-then-lookup contract.
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "User not found",
			})
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie
	}
	return ""
}

// CurrentUser returns the authenticated user placed on the context by
// AuthMiddleware.
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}
