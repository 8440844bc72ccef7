package routes

import (
	"net/http"

	"civictrack/controllers"
	"civictrack/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterDeps is everything the router needs to mount the API.
type RouterDeps struct {
	Issues     *controllers.IssueController
	Auth       *controllers.AuthController
	JWTSecret  string
	CORSOrigin string
	// IssueLimiter guards issue creation. Nil disables rate limiting.
	IssueLimiter gin.HandlerFunc
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(cors.New(corsConfig(deps.CORSOrigin)))

	auth := middlewares.AuthMiddleware(deps.JWTSecret)
	limiter := deps.IssueLimiter
	if limiter == nil {
		limiter = func(c *gin.Context) { c.Next() }
	}

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Server is running"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	AuthRoutes(r, deps.Auth, auth)
	IssueRoutes(r, deps.Issues, auth, limiter)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
	return r
}

func corsConfig(origin string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AddAllowHeaders("Authorization")
	if origin == "" || origin == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = []string{origin}
	cfg.AllowCredentials = true
	return cfg
}
