package service

import (
	"time"

	"github.com/teylo/teylo-backend/internal/build/domain"
)

// Progress derives a completion percentage for a job from its status and
// elapsed time. Nothing is stored while the job runs; two callers asking at
// the same instant get the same number.
//
// Terminal states are fixed points: completed is 100, failed is 0. A queued
// job is 0. A processing job advances linearly against its estimate and is
// capped at 95 so it never claims completion before the finalize step.
func Progress(job *domain.BuildJob, now time.Time) int {
	switch job.Status {
	case domain.StatusCompleted:
		return 100
	case domain.StatusQueued, domain.StatusFailed:
		return 0
	case domain.StatusProcessing:
		if job.StartedAt == nil || job.EstimatedTime <= 0 {
			return 0
		}
		elapsed := now.Sub(*job.StartedAt).Seconds()
		if elapsed < 0 {
			return 0
		}
		pct := int(elapsed / float64(job.EstimatedTime) * 100)
		if pct > 95 {
			return 95
		}
		return pct
	default:
		return 0
	}
}
