package routes

import (
	"civictrack/controllers"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the issue routes. Every route sits behind auth; limiter
// only guards creation.
func IssueRoutes(r *gin.Engine, ic *controllers.IssueController, auth, limiter gin.HandlerFunc) {
	issues := r.Group("/api/issues", auth)
	{
		issues.GET("", ic.GetAllIssues)
		issues.GET("/analytics", ic.GetAnalytics)
		issues.GET("/:id", ic.GetIssue)
		issues.POST("", limiter, ic.CreateIssue)
		issues.PUT("/:id/status", ic.UpdateIssueStatus)
	}
}
