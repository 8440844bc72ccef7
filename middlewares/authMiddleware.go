package middlewares

import (
	"net/http"
	"strings"

	"civictrack/models"
	authUtils "civictrack/utils"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

const (
	userIDKey = "user_id"
	emailKey  = "email"
)

// AuthMiddleware admits requests carrying a valid bearer token and stores the
// caller's user_id and email in the context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c.Request.Header.Get("Authorization"))
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}

		if jwtSecret == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "JWT secret not configured"})
			return
		}

		claims, err := authUtils.ParseToken(tokenString, jwtSecret)
		if err != nil {
			log.WithError(err).WithField("path", c.Request.URL.Path).Debug("Token validation failed")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(emailKey, claims.Email)
		c.Next()
	}
}

// CurrentActor returns the identity stored by AuthMiddleware. Unauthenticated
// requests yield the zero Actor, which is attributed to "System".
func CurrentActor(c *gin.Context) models.Actor {
	return models.Actor{
		UserID: c.GetString(userIDKey),
		Email:  c.GetString(emailKey),
	}
}

// extractToken pulls the token out of a "Bearer <token>" header value.
func extractToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
