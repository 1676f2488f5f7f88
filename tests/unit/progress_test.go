package unit

import (
	"testing"
	"time"

	"github.com/teylo/teylo-backend/internal/build/domain"
	buildservice "github.com/teylo/teylo-backend/internal/build/service"
	"github.com/stretchr/testify/assert"
)

func TestProgress(t *testing.T) {
	now := time.Now()

	t.Run("completed is always 100", func(t *testing.T) {
		job := &domain.BuildJob{Status: domain.StatusCompleted}
		assert.Equal(t, 100, buildservice.Progress(job, now))
	})

	t.Run("queued is 0", func(t *testing.T) {
		job := &domain.BuildJob{Status: domain.StatusQueued}
		assert.Equal(t, 0, buildservice.Progress(job, now))
	})

	t.Run("failed is 0", func(t *testing.T) {
		job := &domain.BuildJob{Status: domain.StatusFailed}
		assert.Equal(t, 0, buildservice.Progress(job, now))
	})

	t.Run("processing advances with elapsed time", func(t *testing.T) {
		started := now.Add(-30 * time.Second)
		job := &domain.BuildJob{
			Status:        domain.StatusProcessing,
			StartedAt:     &started,
			EstimatedTime: 100,
		}
		assert.Equal(t, 30, buildservice.Progress(job, now))
	})

	t.Run("processing is capped at 95", func(t *testing.T) {
		started := now.Add(-500 * time.Second)
		job := &domain.BuildJob{
			Status:        domain.StatusProcessing,
			StartedAt:     &started,
			EstimatedTime: 100,
		}
		assert.Equal(t, 95, buildservice.Progress(job, now))
	})

	t.Run("processing without start time is 0", func(t *testing.T) {
		job := &domain.BuildJob{
			Status:        domain.StatusProcessing,
			EstimatedTime: 100,
		}
		assert.Equal(t, 0, buildservice.Progress(job, now))
	})

	t.Run("same instant gives same answer", func(t *testing.T) {
		started := now.Add(-42 * time.Second)
		job := &domain.BuildJob{
			Status:        domain.StatusProcessing,
			StartedAt:     &started,
			EstimatedTime: 120,
		}
		first := buildservice.Progress(job, now)
		second := buildservice.Progress(job, now)
		assert.Equal(t, first, second)
	})
}
