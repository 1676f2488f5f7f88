package janitor

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/teylo/teylo-backend/internal/build/domain"
	"github.com/teylo/teylo-backend/internal/build/repository"
)

// Retention for staged engine projects of finished builds. The webgl output
// stays; only the staging tree is reclaimed.
const stagingRetention = 24 * time.Hour

// Janitor reclaims disk space under the builds directory on a schedule.
type Janitor struct {
	jobs      *repository.JobRepository
	buildsDir string
	cron      *cron.Cron
}

// New creates a janitor sweeping buildsDir against the job store.
func New(jobs *repository.JobRepository, buildsDir string) *Janitor {
	return &Janitor{
		jobs:      jobs,
		buildsDir: buildsDir,
	}
}

// Start schedules the nightly sweep and runs one immediately in the
// background.
func (j *Janitor) Start() {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 0 3 * * *", func() {
		j.Sweep(context.Background())
	})
	if err != nil {
		log.Printf("Failed to create janitor cron job: %v", err)
		return
	}

	log.Println("Janitor started (sweeping nightly at 3:00AM)")
	c.Start()
	j.cron = c

	go j.Sweep(context.Background())
}

// Stop halts the schedule. A sweep already running finishes.
func (j *Janitor) Stop() {
	if j.cron != nil {
		j.cron.Stop()
	}
}

// Sweep walks the builds directory once. Directories without a job record
// are removed entirely; staging trees of finished jobs past retention are
// removed while the built bundle stays in place.
func (j *Janitor) Sweep(ctx context.Context) {
	entries, err := os.ReadDir(j.buildsDir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[warn] janitor: cannot read builds dir: %v", err)
		}
		return
	}

	removed := 0
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}

		dir := filepath.Join(j.buildsDir, e.Name())
		job, err := j.jobs.FindByID(ctx, e.Name())
		if errors.Is(err, domain.ErrJobNotFound) {
			if err := os.RemoveAll(dir); err != nil {
				log.Printf("[warn] janitor: remove orphan dir %s: %v", dir, err)
				continue
			}
			removed++
			continue
		}
		if err != nil {
			log.Printf("[warn] janitor: lookup job %s: %v", e.Name(), err)
			continue
		}

		if job.Terminal() && job.CompletedAt != nil && time.Since(*job.CompletedAt) > stagingRetention {
			staging := filepath.Join(dir, "project")
			if _, err := os.Stat(staging); err != nil {
				continue
			}
			if err := os.RemoveAll(staging); err != nil {
				log.Printf("[warn] janitor: remove staging %s: %v", staging, err)
				continue
			}
			removed++
		}
	}

	if removed > 0 {
		log.Printf("Janitor sweep reclaimed %d directories", removed)
	}
}
