package middleware

import (
	"net/http"
	"strings"

	"auth/utils"

	"github.com/gin-gonic/gin"
)

// SessionCookie carries the session JWT between requests.
const SessionCookie = "st_session"

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// JWTMiddleware rejects requests without a valid session. Without an
// authenticated user the core defers all data loading, so protected routes
// never reach their handlers unauthenticated.
func JWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := utils.ParseSessionToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Next()
	}
}

// OptionalJWTMiddleware populates the user context when a valid session is
// present but lets anonymous requests through.
func OptionalJWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := tokenFromRequest(c); tokenString != "" {
			if claims, err := utils.ParseSessionToken(tokenString); err == nil {
				c.Set("user_id", claims.UserID)
				c.Set("user_email", claims.Email)
			}
		}
		c.Next()
	}
}

func GetUserID(c *gin.Context) (string, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	userID, ok := value.(string)
	return userID, ok && userID != ""
}

func GetUserEmail(c *gin.Context) (string, bool) {
	value, exists := c.Get("user_email")
	if !exists {
		return "", false
	}
	email, ok := value.(string)
	return email, ok
}
