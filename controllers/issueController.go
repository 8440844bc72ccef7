package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"civictrack/analytics"
	"civictrack/middlewares"
	"civictrack/models"
	"civictrack/services"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

const requestTimeout = 10 * time.Second

// IssueLifecycle is the lifecycle engine as seen by the HTTP layer.
type IssueLifecycle interface {
	CreateIssue(ctx context.Context, input services.CreateIssueInput, actor models.Actor) (*models.IssueView, error)
	UpdateStatus(ctx context.Context, id string, input services.UpdateStatusInput, actor models.Actor) (*models.StatusUpdateResult, error)
	ListIssues(ctx context.Context, filter models.IssueFilter) ([]models.IssueView, error)
	GetIssue(ctx context.Context, id string) (*models.IssueDetail, error)
}

type AnalyticsReporter interface {
	Report(ctx context.Context) (*analytics.Report, error)
}

type IssueController struct {
	issues    IssueLifecycle
	analytics AnalyticsReporter
}

func NewIssueController(issues IssueLifecycle, reporter AnalyticsReporter) *IssueController {
	return &IssueController{issues: issues, analytics: reporter}
}

// GetAllIssues lists issues, optionally filtered by status, category and city
func (ic *IssueController) GetAllIssues(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	filter := models.IssueFilter{
		Status:   models.IssueStatus(c.Query("status")),
		Category: models.IssueCategory(c.Query("category")),
		City:     c.Query("city"),
	}

	issues, err := ic.issues.ListIssues(ctx, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, issues)
}

// GetIssue retrieves an issue by its ID together with its history
func (ic *IssueController) GetIssue(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	issue, err := ic.issues.GetIssue(ctx, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, issue)
}

// CreateIssue handles the creation of a new issue
func (ic *IssueController) CreateIssue(c *gin.Context) {
	var input services.CreateIssueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	issue, err := ic.issues.CreateIssue(ctx, input, middlewares.CurrentActor(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, issue)
}

// UpdateIssueStatus moves an issue to a new status and records it in the history
func (ic *IssueController) UpdateIssueStatus(c *gin.Context) {
	var input services.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	result, err := ic.issues.UpdateStatus(ctx, c.Param("id"), input, middlewares.CurrentActor(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAnalytics returns KPI and department performance figures
func (ic *IssueController) GetAnalytics(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	report, err := ic.analytics.Report(ctx)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func respondWithError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
	default:
		log.WithError(err).WithField("path", c.Request.URL.Path).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
