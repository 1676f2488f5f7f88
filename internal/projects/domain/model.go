package domain

import (
	"time"

	"github.com/teylo/teylo-backend/internal/gamedesign"
)

// Project represents a single game project owned by a user. It is
// storage-agnostic and shared across repository, service, and HTTP layers.
type Project struct {
	ID             string                     `json:"id"`
	UserID         string                     `json:"user_id"`
	Name           string                     `json:"name"`
	OriginalPrompt string                     `json:"original_prompt"`
	Category       gamedesign.Category        `json:"category"`
	Status         string                     `json:"status"` // draft, processing, building, preview, complete, failed
	DesignDocument *gamedesign.DesignDocument `json:"design_document,omitempty"`
	BuildInfo      *BuildInfo                 `json:"build_info,omitempty"`
	CreatedAt      time.Time                  `json:"created_at"`
	UpdatedAt      time.Time                  `json:"updated_at"`
}

// BuildInfo records the latest build attempt for a project. Re-running a
// build overwrites BuildID to point at the newest job; log lines accumulate.
type BuildInfo struct {
	BuildID    string     `json:"build_id,omitempty"`
	StartTime  *time.Time `json:"start_time,omitempty"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	Logs       []string   `json:"logs,omitempty"`
	BuildURL   string     `json:"build_url,omitempty"`
	PreviewURL string     `json:"preview_url,omitempty"`
}

// Project status constants
const (
	StatusDraft      = "draft"
	StatusProcessing = "processing"
	StatusBuilding   = "building"
	StatusPreview    = "preview"
	StatusComplete   = "complete"
	StatusFailed     = "failed"
)

// validNext encodes the allowed forward transitions. "failed" is reachable
// from every state; a project never returns to "draft".
var validNext = map[string][]string{
	StatusDraft:      {StatusProcessing, StatusFailed},
	StatusProcessing: {StatusBuilding, StatusFailed},
	StatusBuilding:   {StatusPreview, StatusComplete, StatusFailed},
	StatusPreview:    {StatusBuilding, StatusProcessing, StatusComplete, StatusFailed},
	StatusComplete:   {StatusBuilding, StatusProcessing, StatusFailed},
	StatusFailed:     {StatusProcessing, StatusBuilding},
}

// CanTransition reports whether a status change is allowed by the lifecycle.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	for _, s := range validNext[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsValidStatus checks if a status is one of the lifecycle states.
func IsValidStatus(status string) bool {
	switch status {
	case StatusDraft, StatusProcessing, StatusBuilding, StatusPreview, StatusComplete, StatusFailed:
		return true
	}
	return false
}
