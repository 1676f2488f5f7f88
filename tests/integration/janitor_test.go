package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	builddomain "github.com/teylo/teylo-backend/internal/build/domain"
	buildrepo "github.com/teylo/teylo-backend/internal/build/repository"
	"github.com/teylo/teylo-backend/internal/janitor"
)

func TestJanitorSweep(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()
	jobs := buildrepo.NewJobRepository(client)

	t.Run("removes directories without a job record", func(t *testing.T) {
		buildsDir := t.TempDir()
		orphan := filepath.Join(buildsDir, "orphan-job")
		require.NoError(t, os.MkdirAll(filepath.Join(orphan, "project"), 0o755))

		janitor.New(jobs, buildsDir).Sweep(ctx)

		_, err := os.Stat(orphan)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("reclaims staging of old finished jobs but keeps the bundle", func(t *testing.T) {
		buildsDir := t.TempDir()

		old := time.Now().Add(-48 * time.Hour)
		job := &builddomain.BuildJob{
			ProjectID:   "project-1",
			Status:      builddomain.StatusCompleted,
			CompletedAt: &old,
		}
		require.NoError(t, jobs.Save(ctx, job))

		dir := filepath.Join(buildsDir, job.ID)
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "project", "Assets"), 0o755))
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "webgl", "Build"), 0o755))

		janitor.New(jobs, buildsDir).Sweep(ctx)

		_, err := os.Stat(filepath.Join(dir, "project"))
		assert.True(t, os.IsNotExist(err))
		_, err = os.Stat(filepath.Join(dir, "webgl"))
		assert.NoError(t, err)
	})

	t.Run("leaves recent and running jobs alone", func(t *testing.T) {
		buildsDir := t.TempDir()

		recent := time.Now().Add(-time.Hour)
		finished := &builddomain.BuildJob{
			ProjectID:   "project-2",
			Status:      builddomain.StatusCompleted,
			CompletedAt: &recent,
		}
		require.NoError(t, jobs.Save(ctx, finished))

		running := &builddomain.BuildJob{
			ProjectID: "project-2",
			Status:    builddomain.StatusProcessing,
		}
		require.NoError(t, jobs.Save(ctx, running))

		for _, id := range []string{finished.ID, running.ID} {
			require.NoError(t, os.MkdirAll(filepath.Join(buildsDir, id, "project"), 0o755))
		}

		janitor.New(jobs, buildsDir).Sweep(ctx)

		for _, id := range []string{finished.ID, running.ID} {
			_, err := os.Stat(filepath.Join(buildsDir, id, "project"))
			assert.NoError(t, err, "job %s staging should survive", id)
		}
	})

	t.Run("missing builds directory is a no-op", func(t *testing.T) {
		janitor.New(jobs, filepath.Join(t.TempDir(), "nope")).Sweep(ctx)
	})
}
