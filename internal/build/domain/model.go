package domain

import (
	"time"

	"github.com/teylo/teylo-backend/internal/gamedesign"
)

// BuildJob represents one build attempt for a project. The ID is generated at
// creation and is the external-facing handle; it is independent of any
// storage-layer identity.
type BuildJob struct {
	ID             string      `json:"id"`
	ProjectID      string      `json:"project_id"`
	Status         string      `json:"status"`   // queued, processing, completed, failed
	Progress       int         `json:"progress"` // stored only at the terminal values; derived while processing
	Config         BuildConfig `json:"config"`
	BuildDirectory string      `json:"build_directory"`
	PublicURL      string      `json:"public_url"`
	BuildURL       string      `json:"build_url,omitempty"`
	EstimatedTime  int         `json:"estimated_time"` // seconds
	Error          string      `json:"error,omitempty"`
	Logs           []string    `json:"logs,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	StartedAt      *time.Time  `json:"started_at,omitempty"`
	CompletedAt    *time.Time  `json:"completed_at,omitempty"`
}

// Job status constants
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Terminal reports whether the job has finished, successfully or not.
func (j *BuildJob) Terminal() bool {
	return j.Status == StatusCompleted || j.Status == StatusFailed
}

// BuildConfig is the full input for one build: the category, a snapshot of
// the design document at build time, and the resolved asset list.
type BuildConfig struct {
	ProjectID string                     `json:"project_id"`
	Category  gamedesign.Category        `json:"category"`
	Design    *gamedesign.DesignDocument `json:"design"`
	Assets    []AssetDescriptor          `json:"assets"`
}

// AssetDescriptor names one piece of content to place into the staged
// project. Exactly one content origin is set: SourcePath for files copied
// from disk, Content for inline bytes.
type AssetDescriptor struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Filename    string `json:"filename"`
	SourcePath  string `json:"source_path,omitempty"`
	Content     []byte `json:"content,omitempty"`
	ProjectPath string `json:"project_path"` // relative to the staged project root
}

// HasOrigin reports whether the descriptor carries any content to stage.
func (a AssetDescriptor) HasOrigin() bool {
	return a.SourcePath != "" || len(a.Content) > 0
}
