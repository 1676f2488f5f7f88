package http

import (
	"github.com/teylo/teylo-backend/internal/build/service"
)

// Handler handles HTTP requests for builds
type Handler struct {
	orchestrator *service.Orchestrator
}

// New creates a new Handler
func New(orchestrator *service.Orchestrator) *Handler {
	return &Handler{orchestrator: orchestrator}
}
