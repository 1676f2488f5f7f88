package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teylo/teylo-backend/internal/build/domain"
	projectdomain "github.com/teylo/teylo-backend/internal/projects/domain"
)

// StartBuild launches a build for a project
func (h *Handler) StartBuild(c *gin.Context) {
	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project ID is required"})
		return
	}

	job, err := h.orchestrator.StartBuild(c.Request.Context(), projectID)
	if err != nil {
		switch {
		case errors.Is(err, projectdomain.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		case errors.Is(err, domain.ErrBuildInProgress):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrBuildRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start build"})
		}
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"job": job})
}

// GetStatus returns a build job with its derived progress
func (h *Handler) GetStatus(c *gin.Context) {
	jobID := c.Param("id")
	if jobID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "job ID is required"})
		return
	}

	job, err := h.orchestrator.Status(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "build job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get build status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": job})
}

// GetLogs returns the accumulated log lines for a build job
func (h *Handler) GetLogs(c *gin.Context) {
	jobID := c.Param("id")
	if jobID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "job ID is required"})
		return
	}

	logs, err := h.orchestrator.Logs(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "build job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get build logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// DeleteBuild removes a build job and its staging directory
func (h *Handler) DeleteBuild(c *gin.Context) {
	jobID := c.Param("id")
	if jobID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "job ID is required"})
		return
	}

	if err := h.orchestrator.Delete(c.Request.Context(), jobID); err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "build job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete build"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "build deleted"})
}

// GetHistory returns the archived builds for a project, newest first
func (h *Handler) GetHistory(c *gin.Context) {
	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project ID is required"})
		return
	}

	records, err := h.orchestrator.History(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get build history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"builds": records})
}
