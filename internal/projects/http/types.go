package http

import (
	"github.com/teylo/teylo-backend/internal/projects/service"
)

// Handler handles HTTP requests for projects
type Handler struct {
	projectService *service.ProjectService
}

// New creates a new Handler
func New(projectService *service.ProjectService) *Handler {
	return &Handler{projectService: projectService}
}
