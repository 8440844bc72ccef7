package routes

import (
	"civictrack/controllers"

	"github.com/gin-gonic/gin"
)

// AuthRoutes sets up the authentication routes
func AuthRoutes(r *gin.Engine, ac *controllers.AuthController, auth gin.HandlerFunc) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", ac.RegisterAuthority)
		authGroup.POST("/login", ac.LoginAuthority)
		authGroup.GET("/me", auth, ac.GetMe)
	}
}
